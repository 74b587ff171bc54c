package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment variables that override
// configuration values.
const EnvPrefix = "FLUFFY_"

// LookupFunc retrieves an environment variable, like os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// envMapping maps environment variables to setters.
var envMapping = map[string]func(c *Config, value string) error{
	EnvPrefix + "TAB_WIDTH": func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return &ValidationError{Path: "editor.tab_width", Message: "not an integer", Value: v}
		}
		c.Editor.TabWidth = n
		return nil
	},
	EnvPrefix + "FONT_SIZE": func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return &ValidationError{Path: "display.font_size", Message: "not an integer", Value: v}
		}
		c.Display.FontSize = n
		return nil
	},
	EnvPrefix + "LINE_ENDING": func(c *Config, v string) error {
		c.Editor.LineEnding = strings.ToLower(strings.TrimSpace(v))
		return nil
	},
	EnvPrefix + "LOG_LEVEL": func(c *Config, v string) error {
		c.Log.Level = strings.ToLower(strings.TrimSpace(v))
		return nil
	},
	EnvPrefix + "LOG_FILE": func(c *Config, v string) error {
		c.Log.File = v
		return nil
	},
}

// ApplyEnv applies FLUFFY_* overrides found through lookup. Empty values
// are treated as set.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	for name, set := range envMapping {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(c, v); err != nil {
			return fmt.Errorf("environment %s: %w", name, err)
		}
	}
	return nil
}

// EnvVars returns the names of the supported environment variables.
func EnvVars() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, name)
	}
	return names
}
