package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmap/render"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"A", "B", "C", "D"}, cfg.Variables.Names)
	assert.Equal(t, "SOP", cfg.Form)
}

func TestParse_Overlay(t *testing.T) {
	data := []byte(`
variables:
  names: [W, X, Y, Z]
form: pos
checker: BDD
log:
  level: debug
  format: json
theme:
  color: false
  groups: ["#FF0000", "#00ff00"]
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"W", "X", "Y", "Z"}, cfg.Variables.Names)
	assert.Equal(t, "POS", cfg.Form)
	assert.Equal(t, "bdd", cfg.Checker)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.False(t, cfg.Theme.Color)
	assert.Len(t, cfg.Theme.Groups, 2)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"Form":      "form: CNF",
		"Checker":   "checker: z3",
		"FewNames":  "variables:\n  names: [A, B]",
		"DupNames":  "variables:\n  names: [A, B, C, A]",
		"BadName":   "variables:\n  names: [A, B, C, \"D-1\"]",
		"Level":     "log:\n  level: trace",
		"Color":     "theme:\n  true_color: green",
		"CellWidth": "theme:\n  cell_width: 99",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Parse([]byte("form: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "kmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checker: none\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Checker)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf).Info("hidden")
	assert.Empty(t, buf.String())

	LogConfig{Level: "info", Format: "json"}.NewLogger(&buf).Info("shown", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	LogConfig{Level: "error", Format: "text"}.NewLogger(&buf).Error("boom")
	assert.Contains(t, buf.String(), "msg=boom")
}

func TestRenderTheme(t *testing.T) {
	plain := ThemeConfig{CellWidth: 7}.RenderTheme()
	assert.Equal(t, 7, plain.CellWidth)
	assert.Len(t, plain.Groups, 1)

	colored := ThemeConfig{Color: true, Groups: []string{"#111111", "#222222", "#333333"}}.RenderTheme()
	assert.Equal(t, render.DefaultCellWidth, colored.CellWidth)
	assert.Len(t, colored.Groups, 3)
}
