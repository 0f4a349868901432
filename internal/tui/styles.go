package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	activeTabStyle = lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245"))

	longStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	shortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	holdStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bodyStyle  = lipgloss.NewStyle().Padding(1, 1)
)
