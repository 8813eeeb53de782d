package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-icons/internal/icon"
	"github.com/vovakirdan/snake-icons/internal/registry"
)

// KeyMap defines the key bindings for the icon viewer.
type KeyMap struct {
	PrevSize  key.Binding
	NextSize  key.Binding
	NextStyle key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevSize, k.NextSize, k.NextStyle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevSize, k.NextSize},
		{k.NextStyle, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevSize: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "smaller"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "larger"),
		),
		NextStyle: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab", "next style"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))

// Model is the Bubble Tea model for the interactive icon viewer.
type Model struct {
	styles   []registry.StyleInfo
	styleIdx int
	sizes    []int
	sizeIdx  int
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a viewer starting at styleID and the first of sizes.
// Unknown style IDs start at the first registered style.
func NewModel(styleID string, sizes []int, width, height int) Model {
	styles := registry.List()
	idx := 0
	for i, s := range styles {
		if s.ID == styleID {
			idx = i
			break
		}
	}

	return Model{
		styles:   styles,
		styleIdx: idx,
		sizes:    sizes,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevSize):
			if m.sizeIdx > 0 {
				m.sizeIdx--
			}
		case key.Matches(msg, m.keys.NextSize):
			if m.sizeIdx < len(m.sizes)-1 {
				m.sizeIdx++
			}
		case key.Matches(msg, m.keys.NextStyle):
			if len(m.styles) > 0 {
				m.styleIdx = (m.styleIdx + 1) % len(m.styles)
			}
		}
	}
	return m, nil
}

// StyleID returns the style currently shown.
func (m Model) StyleID() string {
	if len(m.styles) == 0 {
		return ""
	}
	return m.styles[m.styleIdx].ID
}

// Size returns the icon size currently shown, or 0 if there are none.
func (m Model) Size() int {
	if len(m.sizes) == 0 {
		return 0
	}
	return m.sizes[m.sizeIdx]
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	style, err := registry.Create(m.StyleID())
	if err != nil {
		return fmt.Sprintf("%v\n", err)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s  %dx%d", style.Title, m.Size(), m.Size())))
	sb.WriteString("\n\n")
	sb.WriteString(Render(icon.Render(style, m.Size()), m.width))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
