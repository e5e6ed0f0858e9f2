package game

import (
	"context"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/DaanHessen/roshambo/internal/engine"
)

// DefaultRounds is used by the scripted modes when no count is given.
const DefaultRounds = 1000

// RunInteractive plays until the player exits or input ends.
func (g *Game) RunInteractive(ctx context.Context, in Input, w io.Writer) error {
	glog.V(1).Infof("session %s: interactive game, rules=%s", g.id, g.rules.Name())
	for {
		more, err := g.Throw(ctx, in, w)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	glog.V(1).Infof("session %s: finished after %d rounds (%s)", g.id, g.score.Total(), g.score)
	return nil
}

// RunRandom plays rounds with uniformly random player hands, then prints the
// learned table.
func (g *Game) RunRandom(ctx context.Context, src engine.Source, rounds int, w io.Writer) error {
	glog.V(1).Infof("session %s: random game, %d rounds, rules=%s", g.id, rounds, g.rules.Name())
	return g.runScripted(ctx, NewRandomInput(g.rules, src), rounds, w)
}

// RunOrdered plays rounds+1 rounds cycling through the hand set, then prints
// the learned table.
func (g *Game) RunOrdered(ctx context.Context, rounds int, w io.Writer) error {
	glog.V(1).Infof("session %s: ordered game, %d rounds, rules=%s", g.id, rounds+1, g.rules.Name())
	return g.runScripted(ctx, NewOrderedInput(g.rules), rounds+1, w)
}

func (g *Game) runScripted(ctx context.Context, in Input, rounds int, w io.Writer) error {
	if rounds < 0 {
		return errors.Errorf("round count must not be negative, got %d", rounds)
	}
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		more, err := g.Throw(ctx, in, w)
		if err != nil {
			return errors.Wrapf(err, "round %d", i)
		}
		if !more {
			return nil
		}
	}
	if _, err := g.Throw(ctx, NewScriptInput(CommandPrint), w); err != nil {
		return err
	}
	glog.V(1).Infof("session %s: finished after %d rounds (%s)", g.id, g.score.Total(), g.score)
	return nil
}
