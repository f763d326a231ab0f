package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/kmap/kmap"
	"github.com/katalvlaran/kmap/truthtable"
)

// Render draws m using vars as axis names (the first half names the rows).
// If vars does not hold exactly m.Vars names, A, B, C, … are used.
//
//	AB\CD  00   01   11   10
//	00     1a   Xa   Xa   1a
//	01     0    1a   1a   0
//	...
//	a: {0,1,2,3,5,7,8,10,13,15} rows 0-3 cols 0-3
func Render(m *kmap.Map, vars []string, theme Theme) string {
	if m == nil {
		return ""
	}
	if len(vars) != m.Vars {
		vars = letters(m.Vars)
	}
	rowBits := m.Vars / 2
	corner := strings.Join(vars[:rowBits], "") + `\` + strings.Join(vars[rowBits:], "")
	w0 := len(corner) + 2
	cw := theme.CellWidth
	if cw <= 0 {
		cw = DefaultCellWidth
	}

	var b strings.Builder
	cells := []string{theme.Header.Render(pad(corner, w0))}
	for _, c := range m.Grid.Cols {
		cells = append(cells, theme.Header.Render(pad(string(c), cw)))
	}
	writeLine(&b, cells)

	for i, r := range m.Grid.Rows {
		cells = cells[:0]
		cells = append(cells, theme.Header.Render(pad(string(r), w0)))
		for j := range m.Grid.Cols {
			cells = append(cells, renderCell(m, kmap.Cell{Row: i, Col: j}, theme, cw))
		}
		writeLine(&b, cells)
	}

	for gi, gr := range m.Groups {
		idx := m.Indices(gr)
		sort.Ints(idx)
		strs := make([]string, len(idx))
		for k, v := range idx {
			strs[k] = strconv.Itoa(v)
		}
		r := gr.Bounds()
		line := fmt.Sprintf("%s: {%s} rows %d-%d cols %d-%d",
			groupStyle(theme, gi).Render(tag(gi)), strings.Join(strs, ","), r.Top, r.Bottom, r.Left, r.Right)
		writeLine(&b, []string{line})
	}

	return b.String()
}

func renderCell(m *kmap.Map, c kmap.Cell, theme Theme, width int) string {
	v := m.Grid.At(c)
	var style lipgloss.Style
	switch v {
	case truthtable.True:
		style = theme.True
	case truthtable.DontCare:
		style = theme.DontCare
	default:
		style = theme.False
	}
	text := style.Render(v.String())
	used := 1
	for gi, gr := range m.Groups {
		if gr.Contains(c) {
			text += groupStyle(theme, gi).Render(tag(gi))
			used++
		}
	}
	if used < width {
		text += strings.Repeat(" ", width-used)
	}

	return text
}

func groupStyle(theme Theme, i int) lipgloss.Style {
	if len(theme.Groups) == 0 {
		return lipgloss.NewStyle()
	}

	return theme.Groups[i%len(theme.Groups)]
}

// tag names group i: a … z, then aa, ab, ….
func tag(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}

	return tag(i/26-1) + tag(i%26)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}

	return s + strings.Repeat(" ", w-len(s))
}

func writeLine(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, ""), " "))
	b.WriteByte('\n')
}

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}

	return out
}
