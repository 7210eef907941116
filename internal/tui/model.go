// Package tui is an interactive terminal front end. It renders whatever
// snapshot the store publishes and turns key presses into finder calls.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stahnma/gh-devfinder/internal/format"
	"github.com/stahnma/gh-devfinder/internal/state"
)

// Finder is the set of orchestrator operations the browser drives.
type Finder interface {
	Search(ctx context.Context, query string) state.Snapshot
	Retry(ctx context.Context) state.Snapshot
	Open(ctx context.Context, login string) state.Snapshot
	Close() state.Snapshot
	Dismiss() state.Snapshot
	Reset() state.Snapshot
}

// Source publishes snapshots.
type Source interface {
	Snapshot() state.Snapshot
	Subscribe(buffer int) (<-chan state.Snapshot, func())
}

type snapshotMsg state.Snapshot

type doneMsg struct{}

type action int

const (
	actionNone action = iota
	actionSearch
	actionOpen
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c3aed"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// Model is the bubbletea model of the browser.
type Model struct {
	ctx         context.Context
	finder      Finder
	updates     <-chan state.Snapshot
	unsubscribe func()

	snap   state.Snapshot
	input  textinput.Model
	cursor int
	last   action
}

// New creates a browser model subscribed to src. Call Close when the
// program exits.
func New(ctx context.Context, finder Finder, src Source) Model {
	ti := textinput.New()
	ti.Placeholder = "Search developers by name or login"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()

	updates, unsubscribe := src.Subscribe(16)
	return Model{
		ctx:         ctx,
		finder:      finder,
		updates:     updates,
		unsubscribe: unsubscribe,
		snap:        src.Snapshot(),
		input:       ti,
	}
}

// Close stops receiving snapshots.
func (m Model) Close() {
	m.unsubscribe()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForSnapshot())
}

func (m Model) waitForSnapshot() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = state.Snapshot(msg)
		if m.cursor >= len(m.snap.Users) {
			m.cursor = max(len(m.snap.Users)-1, 0)
		}
		return m, m.waitForSnapshot()

	case doneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		m.input.Reset()
		m.cursor = 0
		m.last = actionNone
		m.input.Focus()
		return m, m.run(func(ctx context.Context, f Finder) { f.Reset() })
	case "ctrl+r":
		if m.last != actionSearch || m.snap.Error == "" {
			return m, nil
		}
		return m, m.run(func(ctx context.Context, f Finder) { f.Retry(ctx) })
	case "esc":
		if m.snap.Error != "" && !m.snap.Loading {
			return m, m.run(func(ctx context.Context, f Finder) { f.Dismiss() })
		}
	}

	if m.snap.Selected != nil {
		switch msg.String() {
		case "esc", "backspace", "left", "h":
			m.last = actionNone
			return m, m.run(func(ctx context.Context, f Finder) { f.Close() })
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.input.Focused() {
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.input.Blur()
			m.cursor = 0
			m.last = actionSearch
			return m, m.run(func(ctx context.Context, f Finder) { f.Search(ctx, query) })
		case "esc":
			if len(m.snap.Users) > 0 {
				m.input.Blur()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Users)-1 {
			m.cursor++
		}
	case "enter":
		if m.snap.Loading {
			return m, nil
		}
		if m.cursor < len(m.snap.Users) {
			login := m.snap.Users[m.cursor].Login
			m.last = actionOpen
			return m, m.run(func(ctx context.Context, f Finder) { f.Open(ctx, login) })
		}
	case "/", "esc":
		m.input.Focus()
		return m, textinput.Blink
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// run executes fn off the update loop; its snapshots arrive through the
// subscription.
func (m Model) run(fn func(ctx context.Context, f Finder)) tea.Cmd {
	ctx, f := m.ctx, m.finder
	return func() tea.Msg {
		fn(ctx, f)
		return doneMsg{}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("DevFinder") + helpStyle.Render("  discover GitHub developers") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.body())
	b.WriteString("\n\n" + helpStyle.Render(m.help()))
	return b.String()
}

func (m Model) body() string {
	switch m.snap.Phase() {
	case state.PhaseSearching:
		return "Loading…"
	case state.PhaseErrored:
		msg := format.ErrorMessage(m.snap.Error)
		if m.last == actionSearch {
			msg += "\n" + helpStyle.Render("ctrl+r: retry • esc: dismiss")
		} else {
			msg += "\n" + helpStyle.Render("esc: dismiss")
		}
		return msg
	case state.PhaseDetail:
		return format.ProfileDetails(*m.snap.Selected) + "\n\n" + format.RepositoryList(m.snap.Repositories)
	case state.PhaseResults:
		if len(m.snap.Users) == 0 {
			return format.EmptyState(true, m.snap.Query)
		}
		lines := make([]string, len(m.snap.Users))
		for i, u := range m.snap.Users {
			lines[i] = format.ProfileLine(u, !m.input.Focused() && i == m.cursor)
		}
		return strings.Join(lines, "\n")
	default:
		return format.EmptyState(false, "")
	}
}

func (m Model) help() string {
	switch {
	case m.snap.Selected != nil:
		return "esc: back • ctrl+l: reset • ctrl+c: quit"
	case m.input.Focused():
		return "enter: search • esc: results • ctrl+l: reset • ctrl+c: quit"
	default:
		return "↑/↓: move • enter: open • /: search • ctrl+l: reset • q: quit"
	}
}
