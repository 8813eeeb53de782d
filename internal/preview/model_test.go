package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/snake-icons/internal/styles/canvas"
	_ "github.com/vovakirdan/snake-icons/internal/styles/classic"
)

func press(m Model, k tea.KeyMsg) Model {
	next, _ := m.Update(k)
	return next.(Model)
}

func TestModelNavigation(t *testing.T) {
	m := NewModel("classic", []int{16, 48, 128}, 80, 24)
	if m.StyleID() != "classic" || m.Size() != 16 {
		t.Fatalf("initial state = %s/%d", m.StyleID(), m.Size())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Size() != 16 {
		t.Errorf("left at first size should stay, got %d", m.Size())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Size() != 128 {
		t.Errorf("right should stop at last size, got %d", m.Size())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.StyleID() != "canvas" {
		t.Errorf("tab should move to canvas, got %s", m.StyleID())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.StyleID() != "classic" {
		t.Errorf("tab should wrap to classic, got %s", m.StyleID())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel("classic", []int{16}, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel("unknown", []int{16}, 80, 24)
	if m.StyleID() != "canvas" {
		t.Errorf("unknown style should fall back to first registered, got %s", m.StyleID())
	}

	v := m.View()
	if !strings.Contains(v, "16x16") {
		t.Errorf("View() should show the size, got:\n%s", v)
	}
	if !strings.Contains(v, "quit") {
		t.Errorf("View() should include help, got:\n%s", v)
	}
}
