// Package config loads the editor configuration.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. The TOML file, by default ~/.config/fluffy/config.toml
//  3. FLUFFY_* environment variables (FLUFFY_TAB_WIDTH, FLUFFY_FONT_SIZE,
//     FLUFFY_LINE_ENDING, FLUFFY_LOG_LEVEL, FLUFFY_LOG_FILE)
//
// The file is decoded strictly: unknown keys are parse errors that carry
// the line and column. After merging, Validate reports every bad value
// as a ValidationError.
//
// # File Format
//
//	[editor]
//	tab_width = 4
//	paste_join_last_line = false
//	line_ending = "auto"
//
//	[display]
//	font_size = 20
//	min_font_size = 1
//	inverted = false
//
//	[keymap]
//	save = "Ctrl+S"
//	paste = "Ctrl+V"
//
//	[shift]
//	"`" = "~"
//
//	[log]
//	level = "info"
//	file = "/tmp/fluffy.log"
//
// # Live Reload
//
// Watcher follows the file with fsnotify and hands each valid reload to
// a callback:
//
//	w := config.NewWatcher(path, session.ApplyConfig)
//	go w.Run(ctx)
package config
