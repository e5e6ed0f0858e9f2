package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/roshambo/internal/engine"
	"github.com/DaanHessen/roshambo/internal/game"
	"github.com/DaanHessen/roshambo/internal/text"
	"github.com/DaanHessen/roshambo/internal/util"
)

const (
	viewGame = "game"
	viewHelp = "help"
)

type model struct {
	game    *game.Game
	hands   []engine.Hand
	seed    string
	version string
	theme   string
	styles  styles
	view    string
	// last processed round, nil before the first throw
	last      *game.Report
	status    string
	showTable bool
	// rendered help, refreshed when opened or resized
	help   string
	width  int
	height int
	err    error
}

func initialModel(g *game.Game, cfg util.Config, version string) model {
	theme := cfg.Theme
	if _, ok := palettes[theme]; !ok {
		theme = defaultTheme
	}
	return model{
		game:    g,
		hands:   g.Rules().Hands(),
		seed:    cfg.SeedText,
		version: version,
		theme:   theme,
		styles:  newStyles(paletteFor(theme)),
		view:    viewGame,
	}
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.view == viewHelp {
			m.refreshHelp()
		}
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		switch k {
		case "ctrl+c", "q", "esc":
			if m.view == viewHelp && k != "ctrl+c" {
				m.view = viewGame
				return m, nil
			}
			return m.play(game.CommandExit)
		case "?":
			if m.view == viewHelp {
				m.view = viewGame
			} else {
				m.view = viewHelp
				m.refreshHelp()
			}
			return m, nil
		case "t":
			m.theme = nextThemeName(m.theme, 1)
			m.styles = newStyles(paletteFor(m.theme))
			return m, nil
		case "d":
			m.showTable = !m.showTable
			return m, nil
		}
		if m.view == viewGame && len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			idx := int(k[0] - '1')
			if idx < len(m.hands) {
				return m.play(string(m.hands[idx]))
			}
			m.status = text.InvalidHand
		}
	}
	return m, nil
}

func (m model) play(token string) (tea.Model, tea.Cmd) {
	rep, err := m.game.Play(token)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	switch rep.Kind {
	case game.KindExit:
		return m, tea.Quit
	case game.KindInvalid:
		m.status = text.InvalidHand
	case game.KindRound:
		m.last = &rep
		m.status = ""
	}
	return m, nil
}

func (m model) View() string {
	if m.view == viewHelp {
		return m.renderHelp()
	}
	return m.renderGame()
}

// Layout rendering -----------------------------------------------------------
func (m *model) renderGame() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	var parts []string
	parts = append(parts, m.renderTopBar())
	parts = append(parts, m.renderHands())
	parts = append(parts, m.styles.panel.Width(min(w-2, 60)).Render(m.renderLastRound()))
	parts = append(parts, m.renderScore())
	if m.showTable {
		parts = append(parts, m.styles.panel.Width(min(w-2, 76)).Render(m.renderTable()))
	}
	if m.status != "" {
		parts = append(parts, m.styles.draw.Render(m.status))
	}
	parts = append(parts, m.styles.muted.Render("1-9 throw • d table • t theme • ? help • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *model) renderTopBar() string {
	id := m.game.ID().String()
	bar := fmt.Sprintf("ROSHAMBO %s • rules %s • seed %s • session %s • theme %s",
		m.version, m.game.Rules().Name(), m.seed, id[:8], m.theme)
	return m.styles.title.Render(bar)
}

func (m *model) renderHands() string {
	items := make([]string, len(m.hands))
	for i, h := range m.hands {
		items[i] = m.styles.key.Render(fmt.Sprintf("[%d]", i+1)) + " " + h.Title()
	}
	return strings.Join(items, "  ")
}

func (m *model) renderLastRound() string {
	if m.last == nil {
		return m.styles.muted.Render("Throw a hand to start.")
	}
	var msg string
	switch m.last.Outcome {
	case engine.OutcomePlayer:
		msg = m.styles.win.Render(text.OutcomeMessage(m.last.Outcome))
	case engine.OutcomeComputer:
		msg = m.styles.loss.Render(text.OutcomeMessage(m.last.Outcome))
	default:
		msg = m.styles.draw.Render(text.OutcomeMessage(m.last.Outcome))
	}
	return text.Throws(m.last.Player, m.last.Computer) + "\n" + msg
}

func (m *model) renderScore() string {
	s := m.game.Score()
	return s.String() + "\n" + m.scoreBar(s, 40)
}

// scoreBar splits width cells between wins, losses and draws.
func (m *model) scoreBar(s game.Score, width int) string {
	total := s.Total()
	if total == 0 {
		return m.styles.barEmpty.Render(strings.Repeat("░", width))
	}
	win := s.Player * width / total
	loss := s.Computer * width / total
	draw := width - win - loss
	return m.styles.barWin.Render(strings.Repeat("█", win)) +
		m.styles.barLoss.Render(strings.Repeat("█", loss)) +
		m.styles.barDraw.Render(strings.Repeat("█", draw))
}

func (m *model) renderTable() string {
	body := text.Diagnostics(m.game.Decision().Frequencies())
	if body == "" {
		body = "(nothing learned yet)\n"
	}
	return m.styles.title.Render("Learned table") + "\n" +
		m.styles.muted.Render("current state "+m.game.Decision().State().String()) + "\n" +
		strings.TrimRight(body, "\n")
}

func (m *model) refreshHelp() {
	w := m.width
	if w <= 0 {
		w = 80
	}
	m.help = text.RenderMarkdown(text.HelpMarkdown(m.game.Rules()), w-4)
}

func (m *model) renderHelp() string {
	return m.help + m.styles.muted.Render("? or esc to return")
}
