// Package config loads kmap settings from YAML on top of built-in defaults.
//
// Example file:
//
//	variables:
//	  names: [W, X, Y, Z]
//	form: POS
//	checker: bdd
//	log:
//	  level: debug
//	  format: json
//	theme:
//	  color: true
//	  groups: ["#FF0000", "#0000FF"]
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmap/render"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete kmap configuration. Safe to read concurrently;
// not safe to modify after it is handed to other components.
type Config struct {
	// Variables names the function's inputs; the first name is the MSB.
	Variables VariablesConfig `yaml:"variables"`

	// Form is the default simplification form: SOP or POS.
	Form string `yaml:"form" validate:"oneof=SOP POS"`

	// Checker selects the equivalence checker: sat, bdd or none.
	Checker string `yaml:"checker" validate:"oneof=sat bdd none"`

	Log   LogConfig   `yaml:"log"`
	Theme ThemeConfig `yaml:"theme"`
}

// VariablesConfig holds variable naming.
type VariablesConfig struct {
	Names []string `yaml:"names" validate:"min=4,unique,dive,required,alphanum"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ThemeConfig holds renderer colours. Empty colours keep the theme defaults.
type ThemeConfig struct {
	Color     bool     `yaml:"color"`
	True      string   `yaml:"true_color" validate:"omitempty,hexcolor"`
	DontCare  string   `yaml:"dont_care_color" validate:"omitempty,hexcolor"`
	False     string   `yaml:"false_color" validate:"omitempty,hexcolor"`
	Groups    []string `yaml:"groups,omitempty" validate:"dive,hexcolor"`
	CellWidth int      `yaml:"cell_width" validate:"gte=0,lte=16"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Variables: VariablesConfig{Names: []string{"A", "B", "C", "D"}},
		Form:      "SOP",
		Checker:   "sat",
		Log:       LogConfig{Level: "info", Format: "text"},
		Theme:     ThemeConfig{Color: true},
	}
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse overlays YAML data on Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	cfg.Form = strings.ToUpper(cfg.Form)
	cfg.Checker = strings.ToLower(cfg.Checker)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SlogLevel converts Level to a slog.Level; unknown values mean Info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}

// NewLogger builds a text or JSON slog logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// RenderTheme builds the renderer theme described by t.
func (t ThemeConfig) RenderTheme() render.Theme {
	theme := render.PlainTheme()
	if t.Color {
		theme = render.DefaultTheme().
			WithColors(t.True, t.DontCare, t.False).
			WithGroupColors(t.Groups)
	}
	if t.CellWidth > 0 {
		theme.CellWidth = t.CellWidth
	}

	return theme
}
