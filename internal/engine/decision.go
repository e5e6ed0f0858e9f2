package engine

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// RoundState is the context a prediction is keyed on: the player's hand and the
// outcome of the previous round. The zero value is the Start state used before
// the first round.
type RoundState struct {
	Hand    Hand
	Outcome Outcome
}

// StartState is the state before any round was played.
var StartState = RoundState{}

func (s RoundState) IsStart() bool { return s == StartState }

func (s RoundState) String() string {
	if s.IsStart() {
		return "[start]"
	}
	return fmt.Sprintf("[%s, %s]", s.Hand, s.Outcome)
}

// Counts is one row of the frequency table: how often each hand was played,
// in rule-set hand order. Every hand is present, possibly with zero.
type Counts struct {
	hands []Hand
	n     []int
}

func newCounts(hands []Hand) *Counts {
	return &Counts{hands: hands, n: make([]int, len(hands))}
}

func (c Counts) clone() Counts {
	return Counts{hands: c.hands, n: append([]int{}, c.n...)}
}

// Get returns the count for h; unknown hands count zero.
func (c Counts) Get(h Hand) int {
	for i, x := range c.hands {
		if x == h {
			return c.n[i]
		}
	}
	return 0
}

func (c Counts) Hands() []Hand { return append([]Hand{}, c.hands...) }

// Weights returns the counts aligned with Hands.
func (c Counts) Weights() []int { return append([]int{}, c.n...) }

func (c Counts) Total() int {
	t := 0
	for _, v := range c.n {
		t += v
	}
	return t
}

func (c Counts) String() string {
	parts := make([]string, len(c.hands))
	for i, h := range c.hands {
		parts[i] = fmt.Sprintf("%s: %d", h, c.n[i])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FrequencyTable maps round states to the hands the player chose in them.
// Rows are created lazily and remembered in insertion order.
type FrequencyTable struct {
	hands []Hand
	order []RoundState
	rows  map[RoundState]*Counts
}

func NewFrequencyTable(rules *Rules) *FrequencyTable {
	return &FrequencyTable{hands: rules.Hands(), rows: map[RoundState]*Counts{}}
}

// Observe adds one sighting of hand in state. Hands outside the set are dropped.
func (t *FrequencyTable) Observe(state RoundState, hand Hand) {
	idx := -1
	for i, h := range t.hands {
		if h == hand {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	row, ok := t.rows[state]
	if !ok {
		row = newCounts(t.hands)
		t.rows[state] = row
		t.order = append(t.order, state)
	}
	row.n[idx]++
}

// Row returns a copy of the counts for state.
func (t *FrequencyTable) Row(state RoundState) (Counts, bool) {
	row, ok := t.rows[state]
	if !ok {
		return Counts{}, false
	}
	return row.clone(), true
}

func (t *FrequencyTable) Len() int { return len(t.order) }

// All yields every row in insertion order. Rows are copies.
func (t *FrequencyTable) All() iter.Seq2[RoundState, Counts] {
	return func(yield func(RoundState, Counts) bool) {
		for _, s := range t.order {
			if !yield(s, t.rows[s].clone()) {
				return
			}
		}
	}
}

// Decision is the adaptive computer opponent. It learns what the player does
// in each round state and answers with a hand that beats the likely move.
type Decision struct {
	rules *Rules
	src   Source
	table *FrequencyTable
	state RoundState
}

func NewDecision(rules *Rules, src Source) *Decision {
	return &Decision{rules: rules, src: src, table: NewFrequencyTable(rules), state: StartState}
}

// Update credits played to the state that was active before the round, then
// moves the cursor to next.
func (d *Decision) Update(next RoundState, played Hand) {
	if !d.state.IsStart() {
		d.table.Observe(d.state, played)
	}
	d.state = next
}

// Choice returns the computer's hand for the coming round.
func (d *Decision) Choice() (Hand, error) {
	row, ok := d.table.Row(d.state)
	if d.state.IsStart() || !ok {
		return SampleUniform(d.src, d.rules.hands)
	}
	predicted, err := SampleWeighted(d.src, row.hands, row.n)
	if err != nil {
		return "", errors.Wrapf(err, "predict in state %s", d.state)
	}
	return SampleUniform(d.src, d.rules.beatenBy[predicted])
}

// State returns the current cursor.
func (d *Decision) State() RoundState { return d.state }

// Frequencies walks the learned table for diagnostics.
func (d *Decision) Frequencies() iter.Seq2[RoundState, Counts] { return d.table.All() }
