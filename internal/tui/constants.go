package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTickInterval = 120 * time.Millisecond
	defaultWidth        = 100
	defaultViewport     = 15
	minViewport         = 3
	chromeLines         = 9 // header, tabs, input, status, help and spacing
	pathIndent          = 6
	inputCharLimit      = 4096
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧"}

var (
	colorPurple = lipgloss.Color("5")
	colorGray   = lipgloss.Color("8")
	colorRed    = lipgloss.Color("1")
	colorYellow = lipgloss.Color("3")
	colorGreen  = lipgloss.Color("2")
	colorCyan   = lipgloss.Color("6")

	titleStyle     = lipgloss.NewStyle().Foreground(colorPurple).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorGray)
	activeTabStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(colorGray)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Bold(true)
	spinnerStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	countStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	okStyle        = lipgloss.NewStyle().Foreground(colorGreen)
	errStyle       = lipgloss.NewStyle().Foreground(colorRed)
)
