// Package render draws a kmap.Map as text for a terminal.
//
// Cells show their value (1, X or 0) followed by a letter for each group
// that contains them; a legend lists every group's indices and bounding
// rectangle. Colours and widths come from a Theme passed in by the caller.
package render

import "github.com/charmbracelet/lipgloss"

// Theme holds every style the renderer uses. It is a plain value: callers
// build one (usually DefaultTheme or PlainTheme) and pass it to Render.
type Theme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	True     lipgloss.Style
	DontCare lipgloss.Style
	False    lipgloss.Style
	// Groups colours group tags, cycling when there are more groups than styles.
	Groups []lipgloss.Style
	// CellWidth is the column width in characters, tags included.
	CellWidth int
}

// Default palette.
var (
	ColorTrue     = lipgloss.Color("#90EE90") // light green
	ColorDontCare = lipgloss.Color("#FFFF00") // yellow
	ColorFalse    = lipgloss.Color("#FFFFFF") // white
	ColorHeader   = lipgloss.Color("#87CEFA")

	GroupColors = []lipgloss.Color{
		lipgloss.Color("#FF0000"), // red
		lipgloss.Color("#0000FF"), // blue
		lipgloss.Color("#008000"), // green
		lipgloss.Color("#800080"), // purple
		lipgloss.Color("#FFA500"), // orange
	}
)

// DefaultCellWidth fits a value plus a few group tags.
const DefaultCellWidth = 5

// DefaultTheme returns the coloured theme.
func DefaultTheme() Theme {
	groups := make([]lipgloss.Style, len(GroupColors))
	for i, c := range GroupColors {
		groups[i] = lipgloss.NewStyle().Bold(true).Foreground(c)
	}

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorHeader),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(ColorHeader),
		True:      lipgloss.NewStyle().Foreground(ColorTrue),
		DontCare:  lipgloss.NewStyle().Foreground(ColorDontCare),
		False:     lipgloss.NewStyle().Foreground(ColorFalse).Faint(true),
		Groups:    groups,
		CellWidth: DefaultCellWidth,
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()

	return Theme{
		Title:     plain,
		Header:    plain,
		True:      plain,
		DontCare:  plain,
		False:     plain,
		Groups:    []lipgloss.Style{plain},
		CellWidth: DefaultCellWidth,
	}
}

// WithColors returns a copy of t with the cell colours replaced. Empty
// strings keep the existing style.
func (t Theme) WithColors(trueColor, dontCareColor, falseColor string) Theme {
	if trueColor != "" {
		t.True = t.True.Foreground(lipgloss.Color(trueColor))
	}
	if dontCareColor != "" {
		t.DontCare = t.DontCare.Foreground(lipgloss.Color(dontCareColor))
	}
	if falseColor != "" {
		t.False = t.False.Foreground(lipgloss.Color(falseColor))
	}

	return t
}

// WithGroupColors returns a copy of t whose group palette uses colors.
// An empty list keeps the existing palette.
func (t Theme) WithGroupColors(colors []string) Theme {
	if len(colors) == 0 {
		return t
	}
	groups := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		groups[i] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
	}
	t.Groups = groups

	return t
}
