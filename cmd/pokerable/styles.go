package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerable/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderCards prints cards with suit glyphs, hearts and diamonds in red.
func renderCards(cards []poker.Card) string {
	var s string
	for i, c := range cards {
		if i > 0 {
			s += " "
		}
		switch c.Suit() {
		case poker.Hearts, poker.Diamonds:
			s += redSuitStyle.Render(c.Glyph())
		default:
			s += c.Glyph()
		}
	}
	return s
}
