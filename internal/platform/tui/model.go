package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// maxTranscript caps the scrollback kept in memory, in bytes.
	maxTranscript = 64 << 10

	// chromeHeight is the number of rows used by title, input and help.
	chromeHeight = 4
)

// Model is the Bubble Tea model that hosts a mission session. Engine
// output scrolls in a viewport; prompts are answered on a single
// command line.
type Model struct {
	bridge     *Bridge
	play       PlayFunc
	viewport   viewport.Model
	input      textinput.Model
	help       help.Model
	keys       KeyMap
	transcript string
	prompt     string
	waiting    bool
	width      int
	height     int
	quitting   bool
	err        error
}

// NewModel creates a model that runs play once started.
func NewModel(play PlayFunc, width, height int) Model {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	in := textinput.New()
	in.CharLimit = 64
	in.Prompt = ""

	h := help.New()
	h.ShowAll = false

	m := Model{
		bridge:   NewBridge(),
		play:     play,
		viewport: viewport.New(width, max(1, height-chromeHeight)),
		input:    in,
		help:     h,
		keys:     DefaultKeyMap(),
	}
	m.resize(width, height)
	return m
}

// Init starts the engine and begins listening for its output.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.bridge.start(m.play), m.bridge.next())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outputMsg:
		m.appendOutput(string(msg))
		return m, m.bridge.next()

	case promptMsg:
		m.prompt = string(msg)
		m.waiting = true
		m.input.Prompt = promptStyle.Render(m.prompt)
		m.input.Reset()
		focus := m.input.Focus()
		return m, tea.Batch(focus, m.bridge.next())

	case engineFailedMsg:
		m.err = msg.err
		return m, m.bridge.next()

	case sessionEndedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.bridge.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		if !m.waiting {
			return m, nil
		}
		answer := m.input.Value()
		m.appendOutput(m.prompt + answer + "\n")
		m.waiting = false
		m.input.Reset()
		m.input.Blur()
		m.bridge.Answer(answer)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	if !m.waiting {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// appendOutput adds engine text to the scrollback and follows it.
func (m *Model) appendOutput(s string) {
	m.transcript += s
	if len(m.transcript) > maxTranscript {
		cut := len(m.transcript) - maxTranscript
		if i := strings.IndexByte(m.transcript[cut:], '\n'); i >= 0 {
			cut += i + 1
		}
		m.transcript = m.transcript[cut:]
	}

	m.viewport.SetContent(Highlight(m.transcript))
	m.viewport.GotoBottom()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-chromeHeight)
	m.input.Width = max(10, width-lenPromptMax)
	m.help.Width = width
	m.viewport.GotoBottom()
}

// lenPromptMax leaves room for the longest prompt beside the input.
const lenPromptMax = 40

// View renders the console.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("U.S.S. ENTERPRISE"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.waiting {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(idleStyle.Render("..."))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Transcript returns the plain scrollback.
func (m Model) Transcript() string {
	return m.transcript
}

// Err returns the engine failure that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts a Bubble Tea program hosting play and blocks until the
// session ends or the player quits.
func Run(play PlayFunc, width, height int) error {
	model := NewModel(play, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok {
		return m.Err()
	}
	return nil
}
