package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stahnma/gh-devfinder/internal/github"
	"github.com/stahnma/gh-devfinder/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFinder struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeFinder) record(call string) state.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return state.Initial()
}

func (f *fakeFinder) Search(_ context.Context, query string) state.Snapshot {
	return f.record("search:" + query)
}
func (f *fakeFinder) Retry(context.Context) state.Snapshot { return f.record("retry") }
func (f *fakeFinder) Open(_ context.Context, login string) state.Snapshot {
	return f.record("open:" + login)
}
func (f *fakeFinder) Close() state.Snapshot { return f.record("close") }
func (f *fakeFinder) Reset() state.Snapshot { return f.record("reset") }
func (f *fakeFinder) Dismiss() state.Snapshot { return f.record("dismiss") }

func newModel(t *testing.T) (Model, *fakeFinder) {
	t.Helper()
	f := &fakeFinder{}
	m := New(context.Background(), f, state.NewStore())
	t.Cleanup(m.Close)
	return m, f
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key(s))
	return next.(Model), cmd
}

func deliver(m Model, snap state.Snapshot) Model {
	next, _ := m.Update(snapshotMsg(snap))
	return next.(Model)
}

func results(logins ...string) state.Snapshot {
	users := make([]github.Profile, len(logins))
	for i, l := range logins {
		users[i] = github.Profile{Login: l}
	}
	return state.Initial().WithResults("q", users)
}

func TestNew_StartsIdle(t *testing.T) {
	m, _ := newModel(t)

	assert.Equal(t, state.PhaseIdle, m.snap.Phase())
	assert.True(t, m.input.Focused())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "DevFinder")
}

func TestEnter_SubmitsSearch(t *testing.T) {
	m, f := newModel(t)
	m.input.SetValue("  torvalds ")

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	assert.IsType(t, doneMsg{}, cmd())

	assert.Equal(t, []string{"search:torvalds"}, f.calls)
	assert.False(t, m.input.Focused())
	assert.Equal(t, actionSearch, m.last)
}

func TestEnter_BlankQueryDoesNothing(t *testing.T) {
	m, f := newModel(t)
	m.input.SetValue("   ")

	m, cmd := press(t, m, "enter")

	assert.Nil(t, cmd)
	assert.Empty(t, f.calls)
	assert.True(t, m.input.Focused())
}

func TestSnapshotMsg_ReplacesSnapshot(t *testing.T) {
	m, _ := newModel(t)

	m = deliver(m, state.Initial().StartLoading())
	assert.Contains(t, m.View(), "Loading")

	m = deliver(m, results("alice", "bob"))
	assert.Equal(t, state.PhaseResults, m.snap.Phase())
	assert.Contains(t, m.View(), "alice")
	assert.Contains(t, m.View(), "bob")
}

func TestNavigationAndOpen(t *testing.T) {
	m, f := newModel(t)
	m = deliver(m, results("alice", "bob", "carol"))
	m.input.Blur()

	m, _ = press(t, m, "down")
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "j")
	assert.Equal(t, 2, m.cursor)

	m, _ = press(t, m, "up")
	m, _ = press(t, m, "k")
	m, _ = press(t, m, "k")
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, "down")
	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"open:bob"}, f.calls)
	assert.Equal(t, actionOpen, m.last)
}

func TestEnter_IgnoredWhileLoading(t *testing.T) {
	m, f := newModel(t)
	m = deliver(m, results("alice", "bob").StartLoading())
	m.input.Blur()

	_, cmd := press(t, m, "enter")

	assert.Nil(t, cmd)
	assert.Empty(t, f.calls)
}

func TestCursorClampedWhenResultsShrink(t *testing.T) {
	m, _ := newModel(t)
	m = deliver(m, results("a", "b", "c"))
	m.cursor = 2

	m = deliver(m, results("a"))

	assert.Equal(t, 0, m.cursor)
}

func TestDetail_EscCloses(t *testing.T) {
	m, f := newModel(t)
	m = deliver(m, results("alice").WithDetail(github.Profile{Login: "alice", Name: "Alice"}, nil))
	assert.Equal(t, state.PhaseDetail, m.snap.Phase())
	assert.Contains(t, m.View(), "Alice")

	_, cmd := press(t, m, "esc")
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"close"}, f.calls)
}

func TestRetry_OnlyAfterFailedSearch(t *testing.T) {
	m, f := newModel(t)

	_, cmd := press(t, m, "ctrl+r")
	assert.Nil(t, cmd)

	m.input.SetValue("x")
	m, cmd = press(t, m, "enter")
	cmd()
	m = deliver(m, state.Initial().Failed("An error occurred while searching", true))
	assert.Contains(t, m.View(), "ctrl+r")

	_, cmd = press(t, m, "ctrl+r")
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"search:x", "retry"}, f.calls)
}

func TestRetry_NotOfferedForDetailFailure(t *testing.T) {
	m, f := newModel(t)
	m.last = actionOpen
	m = deliver(m, state.Initial().Failed("GitHub user not found", true))

	_, cmd := press(t, m, "ctrl+r")

	assert.Nil(t, cmd)
	assert.Empty(t, f.calls)
	assert.NotContains(t, m.View(), "ctrl+r")
}

func TestReset(t *testing.T) {
	m, f := newModel(t)
	m.input.SetValue("abc")
	m.input.Blur()

	m, cmd := press(t, m, "ctrl+l")
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"reset"}, f.calls)
	assert.Empty(t, m.input.Value())
	assert.True(t, m.input.Focused())
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := press(t, m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m.input.Blur()
	_, cmd = press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTypingQDoesNotQuitWhileEditing(t *testing.T) {
	m, _ := newModel(t)

	m, _ = press(t, m, "q")

	assert.Equal(t, "q", m.input.Value())
}

func TestView_EmptyResults(t *testing.T) {
	m, _ := newModel(t)
	m = deliver(m, state.Initial().WithResults("zzz", nil))

	view := m.View()
	assert.True(t, strings.Contains(view, "zzz"), view)
}

func TestSubscription_DeliversStorePublishes(t *testing.T) {
	store := state.NewStore()
	m := New(context.Background(), &fakeFinder{}, store)
	defer m.Close()

	store.Update(func(s state.Snapshot) state.Snapshot { return s.StartLoading() })

	msg := m.waitForSnapshot()()
	snap, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.True(t, snap.Loading)
}

func TestEsc_DismissesError(t *testing.T) {
	m, f := newModel(t)
	m = deliver(m, state.Initial().Failed("GitHub API error: 500", true))
	assert.Contains(t, m.View(), "esc: dismiss")

	_, cmd := press(t, m, "esc")
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"dismiss"}, f.calls)
}
