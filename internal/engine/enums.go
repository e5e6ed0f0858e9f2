package engine

import "strings"

// String backed enums so hands and outcomes print and parse as plain words.

type Hand string
type Outcome string

const (
	HandRock     Hand = "rock"
	HandPaper    Hand = "paper"
	HandScissors Hand = "scissors"
	HandLizard   Hand = "lizard"
	HandSpock    Hand = "spock"
)

var AllHands = []Hand{HandRock, HandPaper, HandScissors, HandLizard, HandSpock}

const (
	OutcomePlayer   Outcome = "player"
	OutcomeComputer Outcome = "computer"
	OutcomeDraw     Outcome = "draw"
)

var AllOutcomes = []Outcome{OutcomePlayer, OutcomeComputer, OutcomeDraw}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (h Hand) Validate() bool    { return contains(AllHands, h) }
func (o Outcome) Validate() bool { return contains(AllOutcomes, o) }

// Title returns the display form, e.g. "Scissors".
func (h Hand) Title() string {
	if h == "" {
		return ""
	}
	return strings.ToUpper(string(h[:1])) + string(h[1:])
}

// List helpers
func ListHands() []Hand       { return append([]Hand{}, AllHands...) }
func ListOutcomes() []Outcome { return append([]Outcome{}, AllOutcomes...) }
