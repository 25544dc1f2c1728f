package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-trek/internal/core"
	"github.com/vovakirdan/tui-trek/internal/platform/console"
)

// PlayFunc runs one or more missions against a console. It returns when
// the session is over.
type PlayFunc func(con core.Console)

// Messages flowing from the engine goroutine to the model.
type (
	outputMsg       string
	promptMsg       string
	sessionEndedMsg struct{}
	engineFailedMsg struct{ err error }
)

// eventBuffer bounds how far engine output may run ahead of rendering.
const eventBuffer = 256

// Bridge is the core.Console the engine sees while a Bubble Tea program
// owns the terminal. The engine runs on its own goroutine and blocks on
// every prompt until the model answers it.
type Bridge struct {
	events  chan tea.Msg
	answers chan string
	done    chan struct{}
	once    sync.Once
}

var _ core.Console = (*Bridge)(nil)

// NewBridge creates an idle bridge.
func NewBridge() *Bridge {
	return &Bridge{
		events:  make(chan tea.Msg, eventBuffer),
		answers: make(chan string, 1),
		done:    make(chan struct{}),
	}
}

// Write forwards engine output to the model.
func (b *Bridge) Write(p []byte) (int, error) {
	b.emit(outputMsg(p))
	return len(p), nil
}

// Command reads a command token. A closed bridge resigns the commission.
func (b *Bridge) Command(prompt string) string {
	answer, ok := b.ask(prompt)
	if !ok {
		return "xxx"
	}
	return core.NormalizeCommand(answer)
}

// Confirm asks a yes/no question.
func (b *Bridge) Confirm(prompt string, def bool) bool {
	answer, ok := b.ask(prompt)
	if !ok {
		return def
	}
	return console.ParseConfirm(answer, def)
}

// Float reads a number clamped to [min, max].
func (b *Bridge) Float(prompt string, min, max float64) float64 {
	answer, ok := b.ask(prompt)
	if !ok {
		return min
	}
	return console.ParseFloat(answer, min, max)
}

// Int reads an integer clamped to [min, max].
func (b *Bridge) Int(prompt string, min, max int) int {
	answer, ok := b.ask(prompt)
	if !ok {
		return min
	}
	return console.ParseInt(answer, min, max)
}

// Answer delivers the player's reply to the engine. One reply is held
// until the engine next asks; replies beyond that are dropped. The model
// only calls Answer while a prompt is showing.
func (b *Bridge) Answer(s string) {
	select {
	case b.answers <- s:
	default:
	}
}

// Close releases the engine: pending and future prompts answer with their
// defaults, so the session winds down on its own.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}

func (b *Bridge) emit(msg tea.Msg) bool {
	select {
	case b.events <- msg:
		return true
	case <-b.done:
		return false
	}
}

func (b *Bridge) ask(prompt string) (string, bool) {
	if !b.emit(promptMsg(prompt)) {
		return "", false
	}

	select {
	case answer := <-b.answers:
		return answer, true
	case <-b.done:
		return "", false
	}
}

// start runs play on the bridge. The events channel closes when play
// returns, after everything it wrote.
func (b *Bridge) start(play PlayFunc) tea.Cmd {
	return func() tea.Msg {
		defer close(b.events)
		defer func() {
			if r := recover(); r != nil {
				b.emit(engineFailedMsg{err: fmt.Errorf("tui: engine stopped: %v", r)})
			}
		}()

		play(b)
		return nil
	}
}

// next waits for the following engine event.
func (b *Bridge) next() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.events
		if !ok {
			return sessionEndedMsg{}
		}
		return msg
	}
}
