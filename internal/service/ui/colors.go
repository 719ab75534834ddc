// Package ui holds terminal styles shared by the CLI commands.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/sensei/internal/core"
)

// Basic ANSI colors only, so output stays readable on light and dark terminals.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	AgentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	AnswerStyle = lipgloss.NewStyle().PaddingLeft(2)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Answer renders a reply the way the ask command prints it.
func Answer(text string) string {
	return AgentStyle.Render(core.AgentName) + "\n" + AnswerStyle.Render(text)
}
