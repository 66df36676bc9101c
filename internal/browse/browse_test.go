package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/catalog"
)

func testBooks() []catalog.Book {
	return []catalog.Book{
		{CallNum: "PS3515.E37 A24 1925", Title: "An American Tragedy", Author: "Dreiser, Theodore"},
		{CallNum: "QA76.73.P98 L87 2013", Title: "Learning Python", Author: "Lutz, Mark"},
		{CallNum: "QA76.73.P98 M37 2019", Title: "Python Crash Course", Author: "Matthes, Eric"},
	}
}

func keyPress(m Model, key string) Model {
	var msg tea.Msg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModel_Navigation(t *testing.T) {
	m := NewModel("shelf.txt", testBooks())

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}

	m = keyPress(m, "j")
	m = keyPress(m, "j")
	if m.cursor != 2 {
		t.Errorf("cursor after two downs = %d, want 2", m.cursor)
	}

	// Does not run past the end.
	m = keyPress(m, "j")
	if m.cursor != 2 {
		t.Errorf("cursor after down at end = %d, want 2", m.cursor)
	}

	m = keyPress(m, "g")
	if m.cursor != 0 {
		t.Errorf("cursor after g = %d, want 0", m.cursor)
	}

	m = keyPress(m, "G")
	if m.cursor != 2 {
		t.Errorf("cursor after G = %d, want 2", m.cursor)
	}
}

func TestModel_Filter(t *testing.T) {
	m := NewModel("shelf.txt", testBooks())

	m = keyPress(m, "/")
	if !m.filtering {
		t.Fatal("slash should enter filter mode")
	}

	for _, r := range "python" {
		m = keyPress(m, string(r))
	}
	if len(m.visible) != 2 {
		t.Fatalf("visible = %d records after filtering %q, want 2", len(m.visible), "python")
	}

	m = keyPress(m, "enter")
	if m.filtering {
		t.Error("enter should leave filter mode")
	}
	if len(m.visible) != 2 {
		t.Errorf("filter should persist after enter, visible = %d", len(m.visible))
	}

	m = keyPress(m, "/")
	m = keyPress(m, "esc")
	if m.filtering {
		t.Error("esc should leave filter mode")
	}
	if len(m.visible) != 3 {
		t.Errorf("esc should clear filter, visible = %d, want 3", len(m.visible))
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel("shelf.txt", testBooks())
	view := m.View()

	if !strings.Contains(view, "shelf.txt") {
		t.Errorf("view missing source name:\n%s", view)
	}
	if !strings.Contains(view, "Learning Python") {
		t.Errorf("view missing record title:\n%s", view)
	}
	if !strings.Contains(view, "3 of 3") {
		t.Errorf("view missing record count:\n%s", view)
	}
}

// Padding must go by visible width: ANSI color escapes take bytes but
// no columns, so counting them would misalign the call-number column.
func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "plain text", in: "QA76", width: 8, want: "QA76    "},
		{name: "ansi escapes not counted", in: "\x1b[34mQA76\x1b[0m", width: 8, want: "\x1b[34mQA76\x1b[0m    "},
		{name: "already wide enough", in: "QA76.73.P98 L87", width: 8, want: "QA76.73.P98 L87"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.in, tt.width); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestModel_Quit(t *testing.T) {
	m := NewModel("shelf.txt", testBooks())
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if v := updated.(Model).View(); v != "" {
		t.Errorf("view after quit = %q, want empty", v)
	}
}
