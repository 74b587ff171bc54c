// Package main is the entry point for the fluffy editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/fluffy/internal/app"
	"github.com/dshills/fluffy/internal/clipboard"
	"github.com/dshills/fluffy/internal/config"
	"github.com/dshills/fluffy/internal/renderer"
	"github.com/dshills/fluffy/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	File       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	cfg, cfgPath, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	session, err := app.NewSession(app.Options{
		Config:    cfg,
		Logger:    logger,
		Clipboard: clipboard.Default(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if opts.File != "" {
		// Failures are reported in the status line.
		_ = session.Open(opts.File)
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfgPath != "" {
		watcher := config.NewWatcher(cfgPath, func(c *config.Config) {
			if err := session.ApplyConfig(c); err != nil {
				logger.Warn("config reload rejected: %v", err)
			}
			term.Interrupt()
		}, config.WithErrorHandler(func(err error) {
			logger.Warn("config reload failed: %v", err)
		}))
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	r := renderer.New(term, session.Display(), renderer.DefaultOptions())
	err = session.Run(ctx, term, r)
	if err == nil || errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
		return 0
	}
	logger.Error("editor stopped: %v", err)
	return 1
}

func parseFlags(args []string, stdout, stderr io.Writer) (options, error) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("fluffy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Fluffy - a small plain-text editor\n\n")
		fmt.Fprintf(stderr, "Usage: fluffy [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Ctrl+S save, Ctrl+V paste, Ctrl+I invert colors,\n")
		fmt.Fprintf(stderr, "  Ctrl+= / Ctrl+- font size, Ctrl+Q quit\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fluffy                      Start with an empty document\n")
		fmt.Fprintf(stderr, "  fluffy notes.txt            Open a file\n")
		fmt.Fprintf(stderr, "  fluffy -c ./fluffy.toml     Use a specific config file\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if showVersion {
		fmt.Fprintf(stdout, "Fluffy %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, flag.ErrHelp
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return opts, nil
}

// loadConfig loads the configuration and applies command line overrides.
// The returned path is the file to watch, empty when there is none.
func loadConfig(opts options) (*config.Config, string, error) {
	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}

	var cfg *config.Config
	var err error
	if path == "" {
		cfg = config.Default()
		err = cfg.ApplyEnv(os.LookupEnv)
	} else {
		cfg, err = config.Load(path)
	}
	switch {
	case errors.Is(err, config.ErrFileNotFound):
		if opts.ConfigPath != "" {
			return nil, "", err
		}
	case err != nil:
		return nil, "", err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	return cfg, path, nil
}

func openLogger(lc config.LogConfig) (*app.Logger, func(), error) {
	out := io.Discard
	closeFn := func() {}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	return app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(lc.Level),
		Output: out,
		Prefix: "fluffy",
	}), closeFn, nil
}
