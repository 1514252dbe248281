// Package tui provides the Bubble Tea frontend for 2048, locally and over SSH.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one player's terminal.
// Input is event driven: each key press is one frame, so there is no tick loop.
type Model struct {
	host     *Host
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model around a host sized to the given terminal.
func NewModel(host *Host, width, height int) Model {
	m := Model{
		host:   host,
		screen: core.NewScreen(width, height),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	default:
		m.host.Handle(context.Background(), core.FrameOf(action))
		return m, nil
	}
}

// layout splits the terminal between the board and the help bar.
func (m *Model) layout() {
	boardH := max(m.height-m.keys.helpHeight(m.help.ShowAll), 0)
	m.screen.Resize(m.width, boardH)
	m.host.Resize(m.width, boardH)
	m.help.Width = m.width
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.host.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".t2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("2048_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.host.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Host returns the model's game host.
func (m Model) Host() *Host {
	return m.host
}

// Run starts the Bubble Tea program for a local terminal.
func Run(host *Host, width, height int) error {
	p := tea.NewProgram(
		NewModel(host, width, height),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
