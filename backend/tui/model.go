// Package tui hosts a wrapped.Window inside a Bubble Tea program.
//
// The terminal is a top-left viewport host: one terminal line is one content
// unit, the fixed rect is the terminal minus the status lines, and the moving
// rect is the content shifted up by the scroll offset.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/wrapped"
)

// chromeLines is the status line plus the help line.
const chromeLines = 2

// wheelStep is how many lines one mouse wheel notch scrolls.
const wheelStep = 3

// Model is a scrollable grid of items backed by a wrapped.Window.
type Model[T any] struct {
	window *wrapped.Window[T]
	render func(item T, index int) string
	keys   KeyMap
	styles Styles
	help   help.Model

	width, height int
	scrollY       int
}

// New creates a model over layout. render turns an item and its absolute
// index into a single line of cell text. The window always uses the TopLeft
// convention, since that is how this host reports geometry.
func New[T any](layout *wrapped.Layout[T], render func(item T, index int) string, opts ...wrapped.Option) (*Model[T], error) {
	if render == nil {
		return nil, errors.New("tui: render func is nil")
	}
	opts = append(opts, wrapped.WithConvention(wrapped.TopLeft))
	w, err := wrapped.NewWindow(layout, opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return &Model[T]{
		window: w,
		render: render,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
	}, nil
}

// WithStyles replaces the default styles.
func (m *Model[T]) WithStyles(s Styles) *Model[T] {
	m.styles = s
	return m
}

// WithKeyMap replaces the default key bindings.
func (m *Model[T]) WithKeyMap(k KeyMap) *Model[T] {
	m.keys = k
	return m
}

// Window returns the window the model drives.
func (m *Model[T]) Window() *wrapped.Window[T] {
	return m.window
}

// ScrollY returns the scroll offset in lines.
func (m *Model[T]) ScrollY() int {
	return m.scrollY
}

// SetLayout swaps the items being shown, keeping the scroll offset in range.
func (m *Model[T]) SetLayout(layout *wrapped.Layout[T]) error {
	if _, err := m.window.SetLayout(layout); err != nil {
		return err
	}
	m.ScrollTo(m.scrollY)
	return nil
}

// Resize sets the terminal size and re-observes.
func (m *Model[T]) Resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.ScrollTo(m.scrollY)
}

// ScrollTo moves the viewport to line y, clamped to the content.
func (m *Model[T]) ScrollTo(y int) {
	maxScroll := int(m.window.Layout().MaxScroll(float32(m.viewportHeight())))
	m.scrollY = max(0, min(y, maxScroll))
	m.observe()
}

// ScrollBy moves the viewport by delta lines.
func (m *Model[T]) ScrollBy(delta int) {
	m.ScrollTo(m.scrollY + delta)
}

func (m *Model[T]) viewportHeight() int {
	return max(0, m.height-chromeLines)
}

func (m *Model[T]) observe() {
	if m.width <= 0 || m.viewportHeight() <= 0 {
		return
	}
	fixed := wrapped.Rect{W: float32(m.width), H: float32(m.viewportHeight())}
	moving := wrapped.Rect{
		Y: -float32(m.scrollY),
		W: float32(m.width),
		H: m.window.ContentSize().H,
	}
	m.window.Observe(fixed, moving)
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		page := max(1, m.viewportHeight())
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.ScrollBy(1)
		case key.Matches(msg, m.keys.Up):
			m.ScrollBy(-1)
		case key.Matches(msg, m.keys.PageDown):
			m.ScrollBy(page)
		case key.Matches(msg, m.keys.PageUp):
			m.ScrollBy(-page)
		case key.Matches(msg, m.keys.Top):
			m.ScrollTo(0)
		case key.Matches(msg, m.keys.Bottom):
			m.ScrollTo(int(m.window.ContentSize().H))
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.ScrollBy(-wheelStep)
		case tea.MouseButtonWheelDown:
			m.ScrollBy(wheelStep)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model[T]) View() string {
	vh := m.viewportHeight()
	if m.width <= 0 || vh <= 0 {
		return ""
	}

	lines := make([]string, vh)
	columns := m.window.Layout().Columns()
	cellW := max(1, m.width/columns)

	// Materialized rows include slack above and below the screen; only rows
	// whose first line is on screen draw their cells.
	for _, row := range wrapped.Render(m.window.Rows(), m.render) {
		line := int(row.Frame.Y) - m.scrollY
		if line < 0 || line >= vh {
			continue
		}
		style := m.styles.Cell
		if row.ID%2 == 1 {
			style = m.styles.CellAlt
		}
		style = style.Width(cellW).MaxWidth(cellW)

		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = style.Render(cell)
		}
		lines[line] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model[T]) statusLine() string {
	layout := m.window.Layout()
	rows := m.window.Rows()
	first, last := 0, 0
	if len(rows) > 0 {
		first, last = rows[0].Index, rows[len(rows)-1].Index
	}
	s := m.window.Stats()

	text := m.styles.StatusKey.Render(" wrapped ") +
		m.styles.Status.Render(fmt.Sprintf(" line %d/%d  rows %d-%d of %d  queries %d  updates %d ",
			m.scrollY, int(layout.MaxScroll(float32(m.viewportHeight()))),
			first, last, layout.Len(), s.Queries, s.Updates))
	return m.styles.Status.Width(m.width).MaxWidth(m.width).Render(text)
}
