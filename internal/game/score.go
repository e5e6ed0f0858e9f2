package game

import (
	"github.com/DaanHessen/roshambo/internal/engine"
	"github.com/DaanHessen/roshambo/internal/text"
)

// Score counts round outcomes for a session. Counts only ever grow.
type Score struct {
	Player   int
	Computer int
	Draw     int
}

func (s *Score) Add(o engine.Outcome) {
	switch o {
	case engine.OutcomePlayer:
		s.Player++
	case engine.OutcomeComputer:
		s.Computer++
	case engine.OutcomeDraw:
		s.Draw++
	}
}

func (s Score) Get(o engine.Outcome) int {
	switch o {
	case engine.OutcomePlayer:
		return s.Player
	case engine.OutcomeComputer:
		return s.Computer
	case engine.OutcomeDraw:
		return s.Draw
	}
	return 0
}

// Total is the number of rounds played.
func (s Score) Total() int { return s.Player + s.Computer + s.Draw }

func (s Score) String() string { return text.ScoreLine(s.Player, s.Computer, s.Draw) }
