package engine

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Rules is an immutable hand set plus its beaten-by relation. It is built once
// at start-up and shared by the resolver, the decision engine and the game.
type Rules struct {
	name     string
	hands    []Hand
	beatenBy map[Hand][]Hand
}

// NewRules validates and freezes a hand set. beatenBy[h] lists the hands that
// defeat h.
func NewRules(name string, hands []Hand, beatenBy map[Hand][]Hand) (*Rules, error) {
	if len(hands) == 0 {
		return nil, errors.Wrapf(ErrEmptyDomain, "rules %q", name)
	}
	seen := make(map[Hand]bool, len(hands))
	for _, h := range hands {
		if seen[h] {
			return nil, errors.Errorf("rules %q: duplicate hand %q", name, h)
		}
		seen[h] = true
	}
	frozen := make(map[Hand][]Hand, len(hands))
	for _, h := range hands {
		counters, ok := beatenBy[h]
		if !ok || len(counters) == 0 {
			return nil, errors.Errorf("rules %q: hand %q has no counter", name, h)
		}
		for _, c := range counters {
			if c == h {
				return nil, errors.Errorf("rules %q: hand %q beats itself", name, h)
			}
			if !seen[c] {
				return nil, errors.Errorf("rules %q: hand %q beaten by unknown hand %q", name, h, c)
			}
		}
		frozen[h] = append([]Hand{}, counters...)
	}
	if len(beatenBy) != len(hands) {
		return nil, errors.Errorf("rules %q: relation covers %d hands, hand set has %d", name, len(beatenBy), len(hands))
	}
	return &Rules{name: name, hands: append([]Hand{}, hands...), beatenBy: frozen}, nil
}

func mustRules(name string, hands []Hand, beatenBy map[Hand][]Hand) *Rules {
	r, err := NewRules(name, hands, beatenBy)
	if err != nil {
		panic(err)
	}
	return r
}

var (
	// Classic is the three-hand cycle.
	Classic = mustRules("classic",
		[]Hand{HandRock, HandPaper, HandScissors},
		map[Hand][]Hand{
			HandRock:     {HandPaper},
			HandPaper:    {HandScissors},
			HandScissors: {HandRock},
		})

	// Extended adds lizard and spock; every hand has two counters.
	Extended = mustRules("extended",
		[]Hand{HandRock, HandPaper, HandScissors, HandLizard, HandSpock},
		map[Hand][]Hand{
			HandRock:     {HandPaper, HandSpock},
			HandPaper:    {HandScissors, HandLizard},
			HandScissors: {HandRock, HandSpock},
			HandLizard:   {HandRock, HandScissors},
			HandSpock:    {HandPaper, HandLizard},
		})
)

var rulesets = map[string]*Rules{
	Classic.name:  Classic,
	Extended.name: Extended,
}

// RulesByName looks up a built-in rule set.
func RulesByName(name string) (*Rules, error) {
	r, ok := rulesets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Errorf("unknown rules %q (want %s)", name, strings.Join(RulesNames(), "|"))
	}
	return r, nil
}

// RulesNames lists the built-in rule sets in sorted order.
func RulesNames() []string {
	names := make([]string, 0, len(rulesets))
	for k := range rulesets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (r *Rules) Name() string { return r.name }

// Hands returns the hand set in its configured order.
func (r *Rules) Hands() []Hand { return append([]Hand{}, r.hands...) }

// BeatenBy returns the hands that defeat h.
func (r *Rules) BeatenBy(h Hand) []Hand { return append([]Hand{}, r.beatenBy[h]...) }

// Index returns the position of h in the hand order, or -1.
func (r *Rules) Index(h Hand) int {
	for i, x := range r.hands {
		if x == h {
			return i
		}
	}
	return -1
}

func (r *Rules) Contains(h Hand) bool { return r.Index(h) >= 0 }

// Parse matches raw player input against the hand set, ignoring case and
// surrounding space.
func (r *Rules) Parse(raw string) (Hand, bool) {
	h := Hand(strings.ToLower(strings.TrimSpace(raw)))
	if !r.Contains(h) {
		return "", false
	}
	return h, true
}
