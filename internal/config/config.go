package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/fluffy/internal/input/key"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Config is the complete editor configuration.
type Config struct {
	Editor  EditorConfig      `toml:"editor"`
	Display DisplayConfig     `toml:"display"`
	Keymap  KeymapConfig      `toml:"keymap"`
	Shift   map[string]string `toml:"shift"`
	Log     LogConfig         `toml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:   4,
			LineEnding: "auto",
		},
		Display: DisplayConfig{
			FontSize:    20,
			MinFontSize: 1,
			FontPath:    "/usr/share/fonts/TTF/CascadiaCode.ttf",
		},
		Keymap: KeymapConfig{
			Save:         "Ctrl+S",
			Paste:        "Ctrl+V",
			InvertColors: "Ctrl+I",
			FontIncrease: "Ctrl+=",
			FontDecrease: "Ctrl+-",
		},
		Shift: map[string]string{},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the user configuration file path, typically
// ~/.config/fluffy/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fluffy", FileName), nil
}

// Load reads the file at path over the defaults, applies FLUFFY_*
// environment overrides and validates the result. A missing file yields
// the defaults together with an error wrapping ErrFileNotFound, so
// callers can treat the file as optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	var missing error
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		missing = fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if cfg, err = Parse(path, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, missing
}

// Parse decodes TOML data over the defaults. Unknown keys are rejected.
// source names the data in errors.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, newParseError(source, err)
	}
	if cfg.Shift == nil {
		cfg.Shift = map[string]string{}
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decErr):
		pe.Line, pe.Column = decErr.Position()
	case errors.As(err, &strictErr) && len(strictErr.Errors) > 0:
		first := strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(first.Key(), ".")
	}
	return pe
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		fail("editor.tab_width", "must be between 1 and 16", c.Editor.TabWidth)
	}
	switch c.Editor.LineEnding {
	case "auto", "lf", "crlf":
	default:
		fail("editor.line_ending", `must be "auto", "lf" or "crlf"`, c.Editor.LineEnding)
	}

	if c.Display.MinFontSize < 1 {
		fail("display.min_font_size", "must be at least 1", c.Display.MinFontSize)
	}
	if c.Display.FontSize < c.Display.MinFontSize {
		fail("display.font_size", "must not be below display.min_font_size", c.Display.FontSize)
	}

	for name, spec := range c.Keymap.Specs() {
		if spec == "" {
			continue
		}
		if _, err := key.Parse(spec); err != nil {
			fail("keymap."+name, err.Error(), spec)
		}
	}

	for from, to := range c.Shift {
		if utf8.RuneCountInString(from) != 1 || utf8.RuneCountInString(to) != 1 {
			fail("shift."+from, "key and value must be single characters", to)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		fail("log.level", "must be debug, info, warn or error", c.Log.Level)
	}

	return errors.Join(errs...)
}

// Specs returns the binding specifications keyed by their TOML names.
func (k KeymapConfig) Specs() map[string]string {
	return map[string]string{
		"save":          k.Save,
		"paste":         k.Paste,
		"invert_colors": k.InvertColors,
		"font_increase": k.FontIncrease,
		"font_decrease": k.FontDecrease,
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Shift = make(map[string]string, len(c.Shift))
	for k, v := range c.Shift {
		out.Shift[k] = v
	}
	return &out
}
