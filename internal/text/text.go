package text

import (
	"fmt"
	"iter"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/DaanHessen/roshambo/internal/engine"
)

// OutcomeMessage is the line shown after a round.
func OutcomeMessage(o engine.Outcome) string {
	switch o {
	case engine.OutcomePlayer:
		return "You Win!"
	case engine.OutcomeComputer:
		return "Computer Wins"
	case engine.OutcomeDraw:
		return "It's a draw!"
	}
	return ""
}

const InvalidHand = "Please choose a valid option."

// Prompt lists the valid hands, e.g. "Choose Rock, Paper, Scissors, or Exit: ".
func Prompt(hands []engine.Hand) string {
	names := make([]string, len(hands))
	for i, h := range hands {
		names[i] = h.Title()
	}
	return fmt.Sprintf("Choose %s, or Exit: ", strings.Join(names, ", "))
}

func Throws(player, computer engine.Hand) string {
	return fmt.Sprintf("You chose: %s, Computer chose: %s.", player.Title(), computer.Title())
}

func ScoreLine(player, computer, draws int) string {
	return fmt.Sprintf("Player: %d, Computer: %d, Draws: %d", player, computer, draws)
}

// Diagnostics renders one line per learned state.
func Diagnostics(rows iter.Seq2[engine.RoundState, engine.Counts]) string {
	var b strings.Builder
	for s, c := range rows {
		b.WriteString(fmt.Sprintf("%s => %s\n", s, c))
	}
	return b.String()
}

const Usage = `Valid inputs are:
help - lists valid inputs.
random [<number>] - plays a game with random player choices with <number> hands (default 1000).
ordered [<number>] - plays a game with ordered player choices with <number>+1 hands (default 1000).
player - plays a game with player input for hand choice. Runs until exit. No input will also run this version.
tui - plays the player game in a full-screen terminal view.
version - prints the version.
`

const InvalidCommand = `Invalid input. Use input argument "help" for list of valid inputs.`

// HelpMarkdown is the in-game help for the terminal view.
func HelpMarkdown(rules *engine.Rules) string {
	var b strings.Builder
	b.WriteString("# Roshambo\n\n")
	b.WriteString("The computer watches what you play after each result and throws the hand that beats your habit.\n\n")
	b.WriteString("## Hands\n\n")
	for i, h := range rules.Hands() {
		beaten := rules.BeatenBy(h)
		names := make([]string, len(beaten))
		for j, x := range beaten {
			names[j] = x.Title()
		}
		b.WriteString(fmt.Sprintf("%d. **%s** loses to %s\n", i+1, h.Title(), strings.Join(names, ", ")))
	}
	b.WriteString("\n## Keys\n\n")
	b.WriteString("- `1`-`9` throw a hand\n- `d` toggle the learned table\n- `t` cycle theme\n- `?` toggle help\n- `q` quit\n")
	return b.String()
}

// RenderMarkdown renders md for a terminal of the given width, falling back
// to the raw text when glamour cannot.
func RenderMarkdown(md string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
