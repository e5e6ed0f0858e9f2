package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/roshambo/internal/engine"
	"github.com/DaanHessen/roshambo/internal/game"
	"github.com/DaanHessen/roshambo/internal/util"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	seed, _ := engine.NewSessionSeed("ui-seed")
	g := game.New(engine.Classic, engine.NewDecision(engine.Classic, seed.Stream("computer")))
	return initialModel(g, util.Config{SeedText: seed.Text, Theme: "dracula"}, "test")
}

func press(m model, key string) (model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(model), cmd
}

func TestNumberKeysThrowHands(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "2")
	if m.last == nil || m.last.Player != engine.HandPaper {
		t.Fatalf("expected paper thrown, got %+v", m.last)
	}
	m, _ = press(m, "3")
	if m.game.Score().Total() != 2 {
		t.Fatalf("score total = %d, want 2", m.game.Score().Total())
	}
	if !strings.Contains(m.View(), "Player: ") {
		t.Fatal("view missing score line")
	}
}

func TestOutOfRangeKeyIsInvalid(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "9")
	if m.game.Score().Total() != 0 {
		t.Fatal("invalid key played a round")
	}
	if m.status == "" {
		t.Fatal("expected invalid status")
	}
}

func TestToggles(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "1")
	m, _ = press(m, "1")
	m, _ = press(m, "d")
	if !m.showTable || !strings.Contains(m.View(), "Learned table") {
		t.Fatal("table pane not shown")
	}
	m, _ = press(m, "t")
	if m.theme != "gruvbox" {
		t.Fatalf("theme = %s, want gruvbox", m.theme)
	}
	m, _ = press(m, "?")
	if m.view != viewHelp {
		t.Fatal("help view not opened")
	}
	if m.help == "" || !strings.Contains(m.View(), m.help) {
		t.Fatal("help not rendered on open")
	}
	m, _ = press(m, "q")
	if m.view != viewGame {
		t.Fatal("q should close help first")
	}
}

func TestQuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestNextThemeNameWraps(t *testing.T) {
	names := ThemeNames()
	if got := nextThemeName(names[len(names)-1], 1); got != names[0] {
		t.Fatalf("wrap forward = %s", got)
	}
	if got := nextThemeName(names[0], -1); got != names[len(names)-1] {
		t.Fatalf("wrap backward = %s", got)
	}
}

func TestHelpRenderedOnceAndOnResize(t *testing.T) {
	m := newTestModel(t)
	if m.help != "" {
		t.Fatal("help rendered before it was opened")
	}
	m, _ = press(m, "?")
	first := m.help
	if first == "" {
		t.Fatal("help not cached on open")
	}
	m.View()
	if m.help != first {
		t.Fatal("View changed the cached help")
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = next.(model)
	if m.help == "" || m.help == first {
		t.Fatal("help not re-rendered for the new width")
	}
}
