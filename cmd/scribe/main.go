// Package main is the entry point for the scribe editor.
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

	"golang.org/x/term"

	"github.com/dshills/scribe/internal/app"
	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliOptions struct {
	configPath  string
	logLevel    string
	showVersion bool
	showHelp    bool
	path        string
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)
	opts, err := parseFlags(fs, args)
	if err != nil {
		return 1
	}

	if opts.showHelp {
		fs.Usage()
		return 0
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "scribe %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if fs.NArg() == 0 {
		fmt.Fprintf(stderr, "scribe: %v\n", app.ErrNoFile)
		fs.Usage()
		return 1
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "scribe: only one file can be edited")
		fs.Usage()
		return 1
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(stderr, "scribe: stdin is not a terminal")
		return 1
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "scribe: %v\n", err)
		return 1
	}

	logOut, err := app.OpenLogFile(cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(stderr, "scribe: %v\n", err)
		return 1
	}
	defer logOut.Close()

	logger := app.NewSessionLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Logging.Level),
		Output: logOut,
		Prefix: "scribe",
	})
	app.SetLogger(logger)

	source := cfg.Source
	if source == "" {
		source = "defaults"
	}
	logger.Info("starting %s %s (config: %s)", version, opts.path, source)

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "scribe: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Path:    opts.path,
		Config:  cfg,
		Backend: terminal,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "scribe: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run: %v", err)
		fmt.Fprintf(stderr, "scribe: %v\n", err)
		return 1
	}

	logger.Info("shutdown")
	return 0
}

func newFlagSet(stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "scribe - a small terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: scribe [options] <file>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		_ = keymap.Default().Help(stderr)
	}
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) (cliOptions, error) {
	var opts cliOptions

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func loadConfig(opts cliOptions) (*config.Config, error) {
	var loadOpts []config.Option
	if opts.configPath != "" {
		loadOpts = append(loadOpts, config.WithPath(opts.configPath))
	}
	if opts.logLevel != "" {
		loadOpts = append(loadOpts, config.WithOverrides(map[string]any{
			"logging.level": opts.logLevel,
		}))
	}
	return config.Load(loadOpts...)
}
