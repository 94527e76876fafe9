package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/ui/theme"
)

// Toast renders a short notification box aligned to the right of width.
func Toast(text string, width int) string {
	box := theme.Toast.Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
}

// Overlay renders a centered dialog with a title, a message and a single
// close button, filling width x height.
func Overlay(title, message, closeLabel string, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(title),
		"",
		theme.Body.Render(message),
		"",
		NewButton(closeLabel, true).View(),
	)
	dialog := lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 4).
		Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
