package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmap/kmap"
)

func TestRender_TwoVariables(t *testing.T) {
	m, err := kmap.Build(2, []int{3}, nil)
	require.NoError(t, err)

	want := strings.Join([]string{
		`A\B  0    1`,
		`0    0    0`,
		`1    0    1a`,
		`a: {3} rows 1-1 cols 1-1`,
	}, "\n") + "\n"
	assert.Equal(t, want, Render(m, []string{"A", "B"}, PlainTheme()))
}

func TestRender_FourVariables(t *testing.T) {
	m, err := kmap.Build(4, []int{0, 2, 5, 7, 8, 10, 13, 15}, []int{1, 3})
	require.NoError(t, err)

	out := Render(m, []string{"A", "B", "C", "D"}, PlainTheme())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, `AB\CD  00   01   11   10`, lines[0])
	assert.Equal(t, `00     1a   Xa   Xa   1a`, lines[1])
	assert.Equal(t, `01     0    1a   1a   0`, lines[2])
	assert.Equal(t, `11     0    1a   1a   0`, lines[3])
	assert.Equal(t, `10     1a   0    0    1a`, lines[4])
	assert.Equal(t, `a: {0,1,2,3,5,7,8,10,13,15} rows 0-3 cols 0-3`, lines[5])
}

func TestRender_FallbackNamesAndNil(t *testing.T) {
	m, err := kmap.Build(3, []int{0, 7}, nil)
	require.NoError(t, err)
	out := Render(m, nil, PlainTheme())
	assert.True(t, strings.HasPrefix(out, `A\BC`), out)
	assert.Contains(t, out, "b: {7}")
	assert.Empty(t, Render(nil, nil, PlainTheme()))
}

func TestRender_DefaultThemeKeepsText(t *testing.T) {
	m, err := kmap.Build(2, []int{0, 1}, nil)
	require.NoError(t, err)
	out := Render(m, []string{"X", "Y"}, DefaultTheme())
	assert.Contains(t, out, "rows 0-0 cols 0-1")
}

func TestTag(t *testing.T) {
	assert.Equal(t, "a", tag(0))
	assert.Equal(t, "z", tag(25))
	assert.Equal(t, "aa", tag(26))
	assert.Equal(t, "ab", tag(27))
}

func TestTheme_With(t *testing.T) {
	th := PlainTheme().WithGroupColors([]string{"#111111", "#222222"})
	assert.Len(t, th.Groups, 2)
	assert.Len(t, PlainTheme().WithGroupColors(nil).Groups, 1)
	assert.Equal(t, DefaultCellWidth, th.WithColors("#00FF00", "", "").CellWidth)
}
