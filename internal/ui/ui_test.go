package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "all caps", in: "LUTZ, MARK", want: "Lutz, Mark"},
		{name: "mixed case unchanged", in: "Lutz, Mark", want: "Lutz, Mark"},
		{name: "lowercase unchanged", in: "van der Berg", want: "van der Berg"},
		{name: "no letters", in: "1234", want: "1234"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.in); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTableRender(t *testing.T) {
	tbl := NewTable("CALL NUMBER", "TITLE")
	tbl.AddRow("QA76.73.P98 L87 2013", "Learning Python")
	tbl.AddRow("Z733.U58", "Short")

	var buf bytes.Buffer
	tbl.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "CALL NUMBER") {
		t.Errorf("table output missing header:\n%s", out)
	}
	if !strings.Contains(out, "Learning Python") {
		t.Errorf("table output missing row:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// border, header, separator, two rows, border
	if len(lines) != 6 {
		t.Errorf("table output has %d lines, want 6:\n%s", len(lines), out)
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if len([]rune(line)) != width {
			t.Errorf("line %d width %d, want %d:\n%s", i, len([]rune(line)), width, out)
		}
	}
}
