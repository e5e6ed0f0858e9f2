package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Source is the randomness the sampler and input sources draw from.
type Source interface {
	// Intn returns a value in [0,n); n <= 0 yields 0.
	Intn(n int) int
}

// seedFromString folds an arbitrary seed string into 64 bits using SHA256.
func seedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

// derive returns a child seed for label using HMAC-SHA256 keyed by base.
// Labels are stable strings such as "computer" or "player".
func derive(base uint64, label string) uint64 {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, base)
	m := hmac.New(sha256.New, key)
	_, _ = m.Write([]byte(label))
	return binary.LittleEndian.Uint64(m.Sum(nil)[:8])
}

// SessionSeed is the textual seed of a game session. The same text always
// yields the same streams, so scripted sessions can be replayed.
type SessionSeed struct {
	Text string
	root uint64
}

// NewSessionSeed rejects empty text.
func NewSessionSeed(text string) (SessionSeed, error) {
	if text == "" {
		return SessionSeed{}, errors.New("seed text must not be empty")
	}
	return SessionSeed{Text: text, root: seedFromString(text)}, nil
}

// Stream returns the labelled stream for this session.
func (s SessionSeed) Stream(label string) *Stream {
	return newStream(derive(s.root, label))
}

// splitMix64 backs every Stream.
type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Stream is a deterministic Source with labelled child streams.
type Stream struct {
	base uint64
	sm   splitMix64
}

func newStream(seed uint64) *Stream {
	return &Stream{base: seed, sm: splitMix64{state: seed}}
}

func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.sm.next() % uint64(n))
}

func (s *Stream) Uint64() uint64 { return s.sm.next() }

// Child creates a sub-stream that does not disturb the parent's sequence.
func (s *Stream) Child(label string) *Stream { return newStream(derive(s.base, label)) }
