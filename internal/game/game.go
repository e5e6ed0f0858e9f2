package game

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DaanHessen/roshambo/internal/engine"
	"github.com/DaanHessen/roshambo/internal/text"
)

// Commands accepted in place of a hand.
const (
	CommandExit        = "exit"
	CommandPrint       = "print"
	CommandDiagnostics = "print-diagnostics"
)

// Kind classifies what a round did.
type Kind int

const (
	KindRound Kind = iota
	KindInvalid
	KindDiagnostics
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindRound:
		return "round"
	case KindInvalid:
		return "invalid"
	case KindDiagnostics:
		return "diagnostics"
	case KindExit:
		return "exit"
	}
	return "unknown"
}

// Report describes one processed input.
type Report struct {
	Kind        Kind
	Input       string
	Player      engine.Hand
	Computer    engine.Hand
	Outcome     engine.Outcome
	Score       Score
	Diagnostics string
}

// Game drives rounds between a player and the adaptive computer and keeps
// the score.
type Game struct {
	id       uuid.UUID
	rules    *engine.Rules
	decision *engine.Decision
	score    Score
}

func New(rules *engine.Rules, decision *engine.Decision) *Game {
	return &Game{id: uuid.New(), rules: rules, decision: decision}
}

func (g *Game) ID() uuid.UUID              { return g.id }
func (g *Game) Rules() *engine.Rules       { return g.rules }
func (g *Game) Decision() *engine.Decision { return g.decision }
func (g *Game) Score() Score               { return g.score }

// Play processes one input token. Only a valid hand changes the score and
// the decision engine.
func (g *Game) Play(token string) (Report, error) {
	computer, err := g.decision.Choice()
	if err != nil {
		return Report{}, errors.Wrap(err, "computer choice")
	}
	token = strings.ToLower(strings.TrimSpace(token))
	rep := Report{Input: token, Score: g.score}
	switch token {
	case CommandExit:
		rep.Kind = KindExit
		return rep, nil
	case CommandPrint, CommandDiagnostics:
		rep.Kind = KindDiagnostics
		rep.Diagnostics = text.Diagnostics(g.decision.Frequencies())
		return rep, nil
	}
	player, ok := g.rules.Parse(token)
	if !ok {
		rep.Kind = KindInvalid
		return rep, nil
	}
	outcome := g.rules.Resolve(player, computer)
	g.decision.Update(engine.RoundState{Hand: player, Outcome: outcome}, player)
	g.score.Add(outcome)
	if glog.V(2) {
		glog.Infof("session %s: %s vs %s -> %s (next state %s)", g.id, player, computer, outcome, g.decision.State())
	}
	rep.Kind = KindRound
	rep.Player = player
	rep.Computer = computer
	rep.Outcome = outcome
	rep.Score = g.score
	return rep, nil
}

// Throw prompts, reads one token from in and reports the result to w. It
// returns false once the game should stop.
func (g *Game) Throw(ctx context.Context, in Input, w io.Writer) (bool, error) {
	fmt.Fprintln(w, text.Prompt(g.rules.Hands()))
	token, err := in.Next(ctx)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "read player input")
	}
	rep, err := g.Play(token)
	if err != nil {
		return false, err
	}
	WriteReport(w, rep)
	return rep.Kind != KindExit, nil
}

// WriteReport prints a report the way the line-based game shows it.
func WriteReport(w io.Writer, rep Report) {
	switch rep.Kind {
	case KindRound:
		fmt.Fprintln(w, text.Throws(rep.Player, rep.Computer))
		fmt.Fprintln(w, text.OutcomeMessage(rep.Outcome))
		fmt.Fprintln(w, "Current score:")
		fmt.Fprintln(w, rep.Score)
	case KindInvalid:
		fmt.Fprintln(w, text.InvalidHand)
	case KindDiagnostics:
		fmt.Fprint(w, rep.Diagnostics)
	}
}
