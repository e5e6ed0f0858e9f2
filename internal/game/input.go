package game

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/DaanHessen/roshambo/internal/engine"
)

// Input supplies the player's move for each round.
type Input interface {
	// Next returns the raw token for the coming round. io.EOF ends the game.
	Next(ctx context.Context) (string, error)
}

// maxLineBytes bounds one interactive line. Longer lines are discarded and
// come back as an empty token, which the game rejects as an invalid hand.
const maxLineBytes = 4096

type line struct {
	text string
	err  error
}

// interactiveInput reads one line per round. The read runs in its own
// goroutine so a cancelled ctx unblocks Next while the player is idle.
type interactiveInput struct {
	r       *bufio.Reader
	pending chan line
}

func NewInteractiveInput(r io.Reader) Input {
	return &interactiveInput{r: bufio.NewReaderSize(r, maxLineBytes)}
}

func (in *interactiveInput) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if in.pending == nil {
		ch := make(chan line, 1)
		go func() {
			text, err := readLine(in.r)
			ch <- line{text: text, err: err}
		}()
		in.pending = ch
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-in.pending:
		in.pending = nil
		if l.err != nil {
			return "", l.err
		}
		return strings.ToLower(strings.TrimSpace(l.text)), nil
	}
}

// readLine returns the next line, or "" for a line over maxLineBytes.
// A final line without a newline is still returned; io.EOF follows it.
func readLine(r *bufio.Reader) (string, error) {
	b, err := r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		for err == bufio.ErrBufferFull {
			_, err = r.ReadSlice('\n')
		}
		if err != nil && err != io.EOF {
			return "", err
		}
		return "", nil
	}
	if err == io.EOF && len(b) > 0 {
		return string(b), nil
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// randomInput throws a uniformly random hand every round.
type randomInput struct {
	hands []engine.Hand
	src   engine.Source
}

func NewRandomInput(rules *engine.Rules, src engine.Source) Input {
	return &randomInput{hands: rules.Hands(), src: src}
}

func (in *randomInput) Next(ctx context.Context) (string, error) {
	h, err := engine.SampleUniform(in.src, in.hands)
	return string(h), err
}

// orderedInput cycles through the hand set in order.
type orderedInput struct {
	hands []engine.Hand
	i     int
}

func NewOrderedInput(rules *engine.Rules) Input {
	return &orderedInput{hands: rules.Hands()}
}

func (in *orderedInput) Next(ctx context.Context) (string, error) {
	h := in.hands[in.i%len(in.hands)]
	in.i++
	return string(h), nil
}

// scriptInput replays fixed tokens, then reports io.EOF.
type scriptInput struct {
	tokens []string
	i      int
}

func NewScriptInput(tokens ...string) Input {
	return &scriptInput{tokens: tokens}
}

func (in *scriptInput) Next(ctx context.Context) (string, error) {
	if in.i >= len(in.tokens) {
		return "", io.EOF
	}
	tok := in.tokens[in.i]
	in.i++
	return tok, nil
}
