package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗ ██╗
 ██╔══██╗██╔══██╗██║
 ██║  ██║██████╔╝██║
 ██║  ██║██╔══██╗██║
 ██████╔╝██████╔╝██║
 ╚═════╝ ╚═════╝ ╚═╝`

const bannerCompact = "Dzień Bezpiecznego Internetu"

// RenderBanner returns the DBI banner in the accent color, with the full
// name underneath. Only the name is shown below 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(bannerArt),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(bannerCompact),
	)
}
