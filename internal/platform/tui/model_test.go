package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel() Model {
	return NewModel(NewHost(testRuntime(), HostOptions{}), 80, 24)
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"w", runeKey('w'), core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"h", runeKey('h'), core.ActionLeft},
		{"j", runeKey('j'), core.ActionDown},
		{"k", runeKey('k'), core.ActionUp},
		{"l", runeKey('l'), core.ActionRight},
		{"r", runeKey('r'), core.ActionRestart},
		{"?", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.action {
				t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.action)
			}
		})
	}
}

func TestModelMove(t *testing.T) {
	m := newTestModel()
	m.Host().Game().Restore(t2048.Session{Board: t2048.Board{{2, 2, 0, 0}}})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if cmd != nil {
		t.Error("A move should not return a command")
	}

	s := updated.(Model).Host().Game().Session()
	if s.Score != 4 || s.Moves != 1 {
		t.Errorf("Expected one scoring move, got %+v", s)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit should return tea.Quit")
	}
	if view := updated.(Model).View(); view != "" {
		t.Errorf("View after quit should be empty, got %q", view)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel()
	if m.screen.Height() != 23 {
		t.Errorf("Screen height with short help = %d, want 23", m.screen.Height())
	}

	updated, _ := m.Update(runeKey('?'))
	m = updated.(Model)
	if !m.help.ShowAll {
		t.Error("? should show the full help")
	}
	if m.screen.Height() != 20 {
		t.Errorf("Screen height with full help = %d, want 20", m.screen.Height())
	}
	if !strings.Contains(m.View(), "new game") {
		t.Error("Full help should list the restart binding")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel()
	m.Host().Game().Restore(t2048.Session{Board: t2048.Board{{2, 2, 0, 0}}, Score: 8})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("Screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
	if m.Host().Game().Session().Score != 8 {
		t.Error("Resizing should not restart the game")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	view := m.View()

	for _, want := range []string{"2048", "Score: 0", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, 'c', core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "c", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q", want)
		}
	}
}

func TestGameRows(t *testing.T) {
	rows := GameRows(nil)
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}
