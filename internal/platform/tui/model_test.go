package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	g := snake.NewWithConfig(snake.Classic, config.DefaultSnakeConfig(), nil)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 31, Seed: 99}, nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModelUsesGameTickRate(t *testing.T) {
	m, _ := newTestModel(t)
	if m.config.TickRate != 20 {
		t.Errorf("TickRate = %d, expected 20", m.config.TickRate)
	}
}

func TestModelTickSteersSnake(t *testing.T) {
	m, g := newTestModel(t)
	before := g.Snake().Direction()

	// Pick a turn that is never a reversal.
	turn := tea.KeyMsg{Type: tea.KeyUp}
	want := core.DirUp
	if before == core.DirUp || before == core.DirDown {
		turn = tea.KeyMsg{Type: tea.KeyLeft}
		want = core.DirLeft
	}

	m, _ = update(t, m, turn)
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if g.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", g.Snapshot().Tick)
	}
	if g.Snake().Direction() != want {
		t.Errorf("Direction() = %v, expected %v", g.Snake().Direction(), want)
	}
	if len(m.inputFrame.Actions) != 0 {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, g := newTestModel(t)

	m, cmd := update(t, m, runeKey("w"))
	if cmd != nil {
		t.Error("steering should not produce a command")
	}
	m, cmd = update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	// A tick already in flight must not advance the game.
	update(t, m, TickMsg{})
	if g.Snapshot().Tick != 0 {
		t.Errorf("Tick = %d after quit, expected 0", g.Snapshot().Tick)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !m.State().TooSmall {
		t.Error("30x10 should be too small for the field")
	}
	if g.Snapshot().Tick != 2 {
		t.Errorf("Tick = %d, resize should not reset the game", g.Snapshot().Tick)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.State().TooSmall {
		t.Error("100x40 should fit the field")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 31 {
		t.Errorf("View() has %d lines, expected 31", len(lines))
	}
	if !strings.Contains(lines[0], "Snake") {
		t.Errorf("first line should show the HUD, got %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("last line should show key help, got %q", lines[len(lines)-1])
	}
}
