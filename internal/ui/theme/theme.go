package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors is one complete palette.
type Colors struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	BgHeader  color.Color
	Border    color.Color
}

// Baseline is the light palette every page starts from.
var Baseline = Colors{
	Primary:   lipgloss.Color("#0066cc"), // Blue
	Secondary: lipgloss.Color("#00cc66"), // Green
	Accent:    lipgloss.Color("#0066cc"),
	Success:   lipgloss.Color("#28a745"),
	Error:     lipgloss.Color("#dc3545"),
	Text:      lipgloss.Color("#333333"),
	TextDim:   lipgloss.Color("#6c757d"),
	Bg:        lipgloss.Color("#ffffff"),
	BgCard:    lipgloss.Color("#f5f7fa"),
	BgHeader:  lipgloss.Color("#0066cc"),
	Border:    lipgloss.Color("#d0d7de"),
}

// DarkOverrides is the fixed override set layered on Baseline for the dark
// theme. Only these fields change.
func DarkOverrides(c Colors) Colors {
	c.Bg = lipgloss.Color("#1a1a2e")
	c.Text = lipgloss.Color("#eaeaea")
	c.BgCard = lipgloss.Color("#16213e")
	c.BgHeader = lipgloss.Color("#0f3460")
	c.Accent = lipgloss.Color("#e94560")
	c.Border = lipgloss.Color("#0f3460")
	return c
}

// Active palette colors
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	BgHeader  color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	Toast          lipgloss.Style
)

var dark bool

func init() {
	use(Baseline)
}

// use rebuilds every exported color and style from c.
func use(c Colors) {
	Primary, Secondary, Accent = c.Primary, c.Secondary, c.Accent
	Success, Error = c.Success, c.Error
	Text, TextDim = c.Text, c.TextDim
	Bg, BgCard, BgHeader, Border = c.Bg, c.BgCard, c.BgHeader, c.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgHeader).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgHeader).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	Toast = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 2)
}

// Document is the page-wide styling target the theme preference is applied
// to. It satisfies themepref.Palette.
type Document struct{}

// SetOverrides switches every style to the dark override set.
func (Document) SetOverrides() {
	dark = true
	use(DarkOverrides(Baseline))
}

// ClearOverrides drops the overrides, back to Baseline.
func (Document) ClearOverrides() {
	dark = false
	use(Baseline)
}

// IsDark reports whether the dark overrides are in effect.
func IsDark() bool {
	return dark
}
