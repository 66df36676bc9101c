// Package browse provides an interactive terminal browser for a sorted
// shelf list.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/catalog"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/ui"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12"))

	callNumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)

	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Model is the Bubble Tea model for the shelf browser.
type Model struct {
	source  string
	books   []catalog.Book // shelf order, never mutated
	visible []int          // indexes into books matching the filter

	cursor    int
	offset    int
	filtering bool
	filter    textinput.Model

	width  int
	height int
	quit   bool
}

// NewModel creates a browser over books, which must already be sorted.
func NewModel(source string, books []catalog.Book) Model {
	ti := textinput.New()
	ti.Placeholder = "title, author or call number"
	ti.CharLimit = 100
	ti.Width = 40

	m := Model{
		source: source,
		books:  books,
		filter: ti,
		height: 24,
		width:  80,
	}
	m.applyFilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
				return m, nil
			case "enter":
				m.filtering = false
				m.filter.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampCursor()
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			m.clampCursor()
		case "g", "home":
			m.cursor = 0
			m.clampCursor()
		case "G", "end":
			m.cursor = len(m.visible) - 1
			m.clampCursor()
		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// applyFilter recomputes the visible rows from the filter text.
func (m *Model) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, b := range m.books {
		if needle == "" ||
			strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) ||
			strings.Contains(strings.ToLower(b.CallNum), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampCursor()
}

// rowsPerPage returns how many records fit on screen alongside the
// header, filter line and footer.
func (m Model) rowsPerPage() int {
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampCursor() {
	rows := m.rowsPerPage()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	if m.quit {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s — %d of %d records", m.source, len(m.visible), len(m.books))))
	sb.WriteString("\n")

	if m.filtering {
		sb.WriteString("filter: " + m.filter.View() + "\n")
	} else if m.filter.Value() != "" {
		sb.WriteString(dimStyle.Render("filter: "+m.filter.Value()) + "\n")
	} else {
		sb.WriteString("\n")
	}

	rows := m.rowsPerPage()
	end := m.offset + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	if len(m.visible) == 0 {
		sb.WriteString(dimStyle.Render("  no matching records") + "\n")
	}

	for pos := m.offset; pos < end; pos++ {
		b := m.books[m.visible[pos]]
		line := fmt.Sprintf("%s  %s  %s",
			padRight(callNumStyle.Render(b.CallNum), 24),
			b.Title,
			authorStyle.Render(ui.DisplayName(b.Author)))
		if pos == m.cursor {
			line = cursorStyle.Render("▌") + " " + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑/↓ move · / filter · q quit"))
	return sb.String()
}

// padRight pads s with spaces to the given display width. Styled text
// carries ANSI escapes, so the visible width matters, not len(s).
func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Run sorts nothing and assumes books are in shelf order already; it
// blocks until the user quits.
func Run(source string, books []catalog.Book) error {
	p := tea.NewProgram(NewModel(source, books), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
