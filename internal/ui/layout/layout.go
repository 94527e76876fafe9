package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/nav"
	"github.com/abhisek/dbi/internal/themepref"
	"github.com/abhisek/dbi/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 18

	HeaderHeight = 2
	FooterHeight = 2

	CompactWidthThreshold  = 90
	CompactHeightThreshold = 26
)

const (
	brand      = "  DBI"
	brandGap   = 4
	linkSep    = " "
	controlPad = 2
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Okno terminala jest za małe!\n\nPowiększ je do co najmniej\n%d x %d\n\nTeraz: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// linkCell is the fixed-width text of one nav link. Focus is shown with
// brackets so every cell keeps the same width.
func linkCell(l nav.Link, focused bool) string {
	if focused {
		return "[" + l.Label + "]"
	}
	return " " + l.Label + " "
}

func linksStart() int {
	return lipgloss.Width(brand) + brandGap
}

// NavLinkAt maps a click at (x, y) to the index of the nav link under it.
func NavLinkAt(links []nav.Link, x, y int) (int, bool) {
	if y != 0 {
		return 0, false
	}
	col := linksStart()
	for i, l := range links {
		w := lipgloss.Width(linkCell(l, false))
		if x >= col && x < col+w {
			return i, true
		}
		col += w + lipgloss.Width(linkSep)
	}
	return 0, false
}

// ControlAt reports whether a click at (x, y) hits the theme toggle control.
func ControlAt(c themepref.Control, x, y, width int) bool {
	if y != 0 {
		return false
	}
	w := lipgloss.Width(c.Icon)
	start := width - controlPad - w
	return x >= start-1 && x < width-controlPad+1
}

// RenderHeader renders the site header: brand, nav links, theme toggle.
func RenderHeader(bar nav.Bar, control themepref.Control, width int) string {
	bg := theme.BgHeader
	white := lipgloss.Color("#ffffff")

	left := lipgloss.NewStyle().
		Background(bg).
		Foreground(white).
		Bold(true).
		Render(brand + strings.Repeat(" ", brandGap))

	cells := make([]string, 0, len(bar.Links))
	for i, l := range bar.Links {
		style := lipgloss.NewStyle().Background(bg).Foreground(white)
		if l.Active {
			style = style.Bold(true).Underline(true).Foreground(theme.Accent)
			if !theme.IsDark() {
				style = style.Background(white)
			}
		}
		cells = append(cells, style.Render(linkCell(l, bar.Focused && i == bar.Focus)))
	}
	sep := lipgloss.NewStyle().Background(bg).Render(linkSep)
	center := strings.Join(cells, sep)

	right := lipgloss.NewStyle().
		Background(bg).
		Render(control.Icon + strings.Repeat(" ", controlPad))

	gap := width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	fill := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap))

	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width, 0)))

	return left + center + fill + right + "\n" + rule
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width, 0)))

	content := lipgloss.NewStyle().
		Width(width).
		Render("  " + strings.Join(parts, "   "))

	return rule + "\n" + content
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	page := header + "\n" + styledContent + "\n" + footer
	return lipgloss.NewStyle().
		Background(theme.Bg).
		Foreground(theme.Text).
		Render(page)
}
