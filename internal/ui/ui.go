// Package ui provides terminal output helpers: color styles with a
// plain-text fallback, section headers, and an aligned table renderer.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	isTerminal   = isatty.IsTerminal(os.Stdout.Fd())
	colorEnabled = true
)

// DisableColors disables all color output.
func DisableColors() {
	colorEnabled = false
	initStyles()
}

// IsTerminal reports whether styled output should be used.
func IsTerminal() bool {
	return isTerminal && colorEnabled
}

// Section prints a section header.
func Section(title string) {
	fmt.Println()
	if IsTerminal() {
		fmt.Println("━━━ " + strings.ToUpper(title) + " ━━━")
	} else {
		fmt.Println(strings.ToUpper(title))
		fmt.Println(strings.Repeat("=", len(title)+6))
	}
}
