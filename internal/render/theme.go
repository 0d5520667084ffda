// Package render turns game state into styled terminal text for the CLI.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Icons used across views
const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconSword   = "⚔️"
	IconShield  = "🛡️"
	IconCoin    = "🪙"
	IconBox     = "📦"
	IconScroll  = "📜"
	IconTimer   = "⏳"
	IconDone    = "✅"
	IconError   = "🧨"
	IconTrophy  = "🏆"
)

var (
	cPrimary = lipgloss.Color("63")
	cAccent  = lipgloss.Color("205")
	cGood    = lipgloss.Color("42")
	cWarn    = lipgloss.Color("214")
	cBad     = lipgloss.Color("196")
	cMuted   = lipgloss.Color("244")
	cGold    = lipgloss.Color("220")
)

// Shared styles
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeLevelUp = Gold.Render("LEVEL UP")
)

// Heading renders a title with an optional icon
func Heading(icon, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

// LabelValue renders "label: value"
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Error renders an error line for stderr
func Error(err error) string {
	return Bad.Render(IconError + " " + err.Error())
}

// Bar draws a fixed width meter. The fill is colored by how full it is.
func Bar(current, maximum, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if maximum > 0 && current > 0 {
		filled = current * width / maximum
		if filled > width {
			filled = width
		}
	}

	style := Good
	switch {
	case maximum > 0 && current*4 <= maximum:
		style = Bad
	case maximum > 0 && current*2 <= maximum:
		style = Warn
	}

	bar := style.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d/%d", bar, current, maximum)
}
