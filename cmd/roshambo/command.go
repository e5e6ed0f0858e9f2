package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/DaanHessen/roshambo/internal/game"
)

const (
	modePlayer  = "player"
	modeRandom  = "random"
	modeOrdered = "ordered"
	modeTUI     = "tui"
	modeHelp    = "help"
	modeVersion = "version"
)

var errInvalidCommand = errors.New("invalid command")

type command struct {
	mode   string
	rounds int
}

// parseCommand turns the positional arguments into a mode. No arguments
// means an interactive game.
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{mode: modePlayer}, nil
	}
	switch mode := strings.ToLower(args[0]); mode {
	case modePlayer, modeTUI, modeHelp, modeVersion:
		return command{mode: mode}, nil
	case modeRandom, modeOrdered:
		rounds := game.DefaultRounds
		if len(args) > 1 {
			n, err := parseRounds(args[1])
			if err != nil {
				return command{}, errors.Wrap(err, mode)
			}
			rounds = n
		}
		return command{mode: mode, rounds: rounds}, nil
	}
	return command{}, errors.Wrapf(errInvalidCommand, "%q", args[0])
}

func parseRounds(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, errors.Errorf("invalid round count %q: want a non-negative integer", raw)
	}
	return n, nil
}
