package config

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// TabWidth is the number of spaces the Tab key inserts.
	TabWidth int `toml:"tab_width"`

	// PasteJoinLastLine leaves the cursor at the end of the pasted text
	// instead of splitting after the last pasted line.
	PasteJoinLastLine bool `toml:"paste_join_last_line"`

	// LineEnding is the terminator used on save ("auto", "lf", "crlf").
	// "auto" keeps whatever the loaded file used.
	LineEnding string `toml:"line_ending"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	// FontSize is the initial font size.
	FontSize int `toml:"font_size"`

	// MinFontSize is the floor for font shrinking.
	MinFontSize int `toml:"min_font_size"`

	// FontPath is the font file a graphical frontend loads.
	FontPath string `toml:"font_path"`

	// Inverted starts with foreground and background swapped.
	Inverted bool `toml:"inverted"`
}

// KeymapConfig holds the key specifications of the command bindings.
type KeymapConfig struct {
	Save         string `toml:"save"`
	Paste        string `toml:"paste"`
	InvertColors string `toml:"invert_colors"`
	FontIncrease string `toml:"font_increase"`
	FontDecrease string `toml:"font_decrease"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum level logged ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// File is the log destination. Empty discards logs.
	File string `toml:"file"`
}
