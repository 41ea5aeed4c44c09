package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/examples"
	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/scene"
	"github.com/vovakirdan/scenelab/internal/storage"
)

// Model is the Bubble Tea model for inspecting a running example.
type Model struct {
	exampleID string
	example   registry.Example
	scene     *scene.Scene
	store     *storage.Store
	config    core.RuntimeConfig
	table     table.Model
	help      help.Model
	keys      InspectorKeyMap
	width     int
	height    int
	paused    bool
	quitting  bool
	saved     bool // Whether the current run has been recorded
	err       error
}

// NewModel builds the example and wraps it in an inspector model.
// store may be nil, in which case runs are not recorded.
func NewModel(exampleID string, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	s, ex, err := registry.Build(exampleID, cfg)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		exampleID: exampleID,
		example:   ex,
		scene:     s,
		store:     store,
		config:    cfg,
		help:      h,
		keys:      DefaultInspectorKeyMap(),
		width:     80,
		height:    24,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m, nil
}

// createTable creates the node table sized to the current window.
func (m *Model) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 10},
		{Title: "Kind", Width: 14},
		{Title: "Position", Width: 22},
		{Title: "Rotation", Width: 22},
		{Title: "Color", Width: 9},
		{Title: "Pts", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-9, 3, 40)), // Leave room for header, status and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows refreshes the table from the scene nodes.
func (m *Model) updateTableRows() {
	nodes := m.scene.Nodes()
	rows := make([]table.Row, len(nodes))
	for i, n := range nodes {
		rows[i] = nodeRow(n)
	}
	m.table.SetRows(rows)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.record()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.advance()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.record()
		s, ex, err := registry.Build(m.exampleID, m.config)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.scene, m.example = s, ex
		m.saved = false
		m.updateTableRows()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.example.(examples.Toggler); ok {
			t.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Pass scrolling to the table
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleTick advances the scene by one fixed step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.advance()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) advance() {
	m.scene.Tick(m.config.Delta())
	m.updateTableRows()
}

// record saves a summary of the current run once.
func (m *Model) record() {
	if m.store == nil || m.saved || m.scene.Ticks() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, inspector continues regardless
	m.store.SaveRun(storage.RunRecord{
		ExampleID: m.exampleID,
		Seed:      m.config.Seed,
		TickRate:  m.config.TickRate,
		Ticks:     m.scene.Ticks(),
		Digest:    m.scene.Digest(),
		Nodes:     len(m.scene.Nodes()),
		Points:    m.scene.PointCount(),
	})
	m.saved = true
}

// View renders the inspector.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	title := fmt.Sprintf("%s  (%s)", m.example.Title(), m.exampleID)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		m.statusLine(),
		tableStyle.Render(m.table.View()),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Scene returns the scene being inspected.
func (m Model) Scene() *scene.Scene {
	return m.scene
}

// Paused reports whether the tick loop is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for the given example.
func Run(exampleID string, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewModel(exampleID, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
