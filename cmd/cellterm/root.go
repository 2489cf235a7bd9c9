package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellterm/config"
)

// app carries state shared by all subcommands
type app struct {
	cfgFile  string
	logFile  string
	logLevel string
	noMouse  bool

	raw      config.Config
	cfg      config.Resolved
	logger   *log.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{closeLog: func() error { return nil }}

	rootCmd := &cobra.Command{
		Use:   "cellterm",
		Short: "Cell-grid terminal engine demo",
		Long: `cellterm drives the terminal directly: raw input decoding, a double-buffered
cell grid with differential output and a split-pane frame layout.

Examples:
  cellterm               Run the split-pane demo
  cellterm keys          Show decoded key and mouse events
  cellterm config        Print the effective configuration as TOML`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return a.closeLog() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), a)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is "+config.DefaultPath()+")")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to this file (overrides log.file)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")
	flags.BoolVar(&a.noMouse, "no-mouse", false, "disable mouse reporting")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newKeysCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	return rootCmd
}

// setup loads configuration, applies flag overrides and opens the log file
func (a *app) setup(cmd *cobra.Command, args []string) error {
	raw, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logFile != "" {
		raw.Log.File = a.logFile
	}
	if a.logLevel != "" {
		raw.Log.Level = a.logLevel
	}
	if a.noMouse {
		raw.Mouse = false
	}

	cfg, err := raw.Resolve()
	if err != nil {
		return err
	}
	a.raw, a.cfg = raw, cfg

	logger, closeLog, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger, a.closeLog = logger, closeLog
	return nil
}

// openLogger returns a file logger, or a discarding one when path is empty.
// The terminal itself is never a log target while a session owns it.
func openLogger(path string, level log.Level) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "cellterm",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
	})
	return logger, f.Close, nil
}
