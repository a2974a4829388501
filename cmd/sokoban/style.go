package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	solvedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unsolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// symbolStyles colors board symbols.
var symbolStyles = map[rune]lipgloss.Style{
	'#': lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	'$': lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	'*': lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	'.': lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	'@': lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	'+': lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// colorEnabled is true when stdout is a terminal.
var colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))

// paint applies style when writing to a terminal.
func paint(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// paintBoard colors an XSB board, one symbol at a time.
func paintBoard(board string) string {
	if !colorEnabled {
		return board
	}
	var sb strings.Builder
	for _, r := range board {
		if style, ok := symbolStyles[r]; ok {
			sb.WriteString(style.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
