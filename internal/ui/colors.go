package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	dimStyle     lipgloss.Style
	callNumStyle lipgloss.Style
	titleStyle   lipgloss.Style
	authorStyle  lipgloss.Style
)

func init() {
	initStyles()
}

func initStyles() {
	if !IsTerminal() {
		successStyle = lipgloss.NewStyle()
		errorStyle = lipgloss.NewStyle()
		warningStyle = lipgloss.NewStyle()
		dimStyle = lipgloss.NewStyle()
		callNumStyle = lipgloss.NewStyle()
		titleStyle = lipgloss.NewStyle()
		authorStyle = lipgloss.NewStyle()
		return
	}

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	callNumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	authorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
}

// Success renders success text
func Success(text string) string {
	return successStyle.Render(text)
}

// Error renders error text
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning renders warning text
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Dim renders de-emphasized text
func Dim(text string) string {
	return dimStyle.Render(text)
}

// CallNum renders a call number
func CallNum(text string) string {
	return callNumStyle.Render(text)
}

// Title renders a book title
func Title(text string) string {
	return titleStyle.Render(text)
}

// Author renders an author name
func Author(text string) string {
	return authorStyle.Render(text)
}
