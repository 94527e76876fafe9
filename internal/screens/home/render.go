package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/countdown"
	"github.com/abhisek/dbi/internal/ui/theme"
)

const titleFull = ` ██████╗ ██████╗ ██╗
 ██╔══██╗██╔══██╗██║
 ██║  ██║██████╔╝██║
 ██║  ██║██╔══██╗██║
 ██████╔╝██████╔╝██║
 ╚═════╝ ╚═════╝ ╚═╝`

const titleCompact = "D · B · I"

const subtitle = "Dzień Bezpiecznego Internetu"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	block := lipgloss.JoinVertical(lipgloss.Center,
		theme.Heading.Render(art),
		theme.Subtitle.Render(subtitle),
	)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// cellWidth is the fixed width of one countdown cell.
const cellWidth = 10

// renderCountdown renders the four countdown cells side by side, or the
// elapsed message once the target has been reached.
func renderCountdown(state countdown.DisplayState, cw int, compact bool) string {
	if state.Elapsed() {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(countdown.ElapsedMessage)
	}

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(state.String())
	}

	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	var cells []string
	for i, u := range state.Units() {
		if i > 0 {
			cells = append(cells, " ")
		}
		cells = append(cells, cell.Render(value.Render(u.Value)+"\n"+label.Render(u.Label)))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// renderDate renders the "Data: …" line under the countdown.
func renderDate(d string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Data: " + d)
}

// renderFrame centers content within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
