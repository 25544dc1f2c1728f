package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-trek/internal/storage"
	"github.com/vovakirdan/tui-trek/internal/trek"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the outcome sidebar
	sidebarWidth       = 20  // Width of outcome sidebar
	maxMissions        = 100 // Max missions to load
)

// MissionSource is the part of the store the mission log reads.
type MissionSource interface {
	TopMissions(outcome string, limit int) ([]storage.MissionRecord, error)
}

// outcomeFilter is one tab of the mission log.
type outcomeFilter struct {
	Outcome string // empty means every outcome
	Title   string
}

var outcomeFilters = []outcomeFilter{
	{"", "All missions"},
	{trek.AllKlingonsDestroyed.String(), "Victories"},
	{trek.ShipDestroyed.String(), "Ship lost"},
	{trek.TimeExpired.String(), "Out of time"},
	{trek.Resigned.String(), "Resigned"},
}

// ScoreboardKeyMap defines the key bindings for the mission log.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next outcome"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev outcome"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the mission log screen.
type ScoreboardModel struct {
	filterCursor int
	source       MissionSource
	missions     []storage.MissionRecord
	loadErr      error
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	showSidebar  bool
}

// NewScoreboardModel creates a new mission log model.
func NewScoreboardModel(source MissionSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source:      source,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadMissions()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Outcome", Width: 15},
		{Title: "Klingons", Width: 9},
		{Title: "Stardates", Width: 10},
		{Title: "Rating", Width: 8},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

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

// loadMissions loads missions for the selected outcome.
func (m *ScoreboardModel) loadMissions() {
	m.missions = nil
	m.loadErr = nil

	if m.source != nil {
		missions, err := m.source.TopMissions(outcomeFilters[m.filterCursor].Outcome, maxMissions)
		if err != nil {
			m.loadErr = err
		} else {
			m.missions = missions
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current missions.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(MissionRows(m.missions))
	m.table.GotoTop()
}

// MissionRows formats mission records as table rows.
func MissionRows(missions []storage.MissionRecord) []table.Row {
	rows := make([]table.Row, len(missions))
	for i, r := range missions {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Outcome,
			fmt.Sprintf("%d/%d", r.KlingonsDestroyed, r.TotalKlingons),
			fmt.Sprintf("%.1f", r.StardatesUsed),
			fmt.Sprintf("%.2f", r.Efficiency),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the mission log model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the mission log.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filterCursor = (m.filterCursor + 1) % len(outcomeFilters)
			m.loadMissions()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filterCursor--
			if m.filterCursor < 0 {
				m.filterCursor = len(outcomeFilters) - 1
			}
			m.loadMissions()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the mission log.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("MISSION LOG - %s", outcomeFilters[m.filterCursor].Title)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the log with an outcome sidebar.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Outcome\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, f := range outcomeFilters {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.filterCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + f.Title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the current outcome with arrows above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabLine := fmt.Sprintf("< %s >", outcomeFilters[m.filterCursor].Title)
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil || len(m.missions) == 0 {
		text := "No missions recorded yet.\nStart one with 'trek play'."
		if m.loadErr != nil {
			text = "Mission log unavailable:\n" + m.loadErr.Error()
		}
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render(text)
	}

	return m.table.View()
}

// RunScoreboard runs the mission log screen.
func RunScoreboard(source MissionSource, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
