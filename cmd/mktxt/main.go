package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mktxt/internal/buffer"
	"mktxt/internal/config"
	"mktxt/internal/editor"
	"mktxt/internal/logger"
	"mktxt/internal/storage"
	"mktxt/internal/term"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string
	logLevel   string
	readonly   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mktxt [file]",
		Short: "A modal terminal text editor",
		Long: `mktxt is a small modal text editor for the terminal.

Normal mode:
  i          enter insert mode
  h/j/k/l    move (arrow keys also work)
  H/L        jump to previous/next blank character
  K/J        jump to previous/next blank line
  d          delete line    x  cut line    c  copy line    v  paste line
  s          save           q  quit

Insert mode:
  Esc        back to normal mode`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.config/mktxt/config.yaml)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&readonly, "readonly", false, "open the file without save support")

	if err := rootCmd.Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log := logger.Init(cfg.Log.Level, cfg.Log.Path)
	defer logger.Close()

	lines, truncated, err := storage.Load(path, cfg.UI.MaxLines)
	if err != nil {
		return err
	}
	if truncated {
		log.Warn("file truncated", "path", path, "max_lines", cfg.UI.MaxLines)
	}
	buf := buffer.FromLines(lines)

	terminal, err := term.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer terminal.Fini()

	opts := editor.Options{
		TabWidth: cfg.UI.TabWidth,
		Logger:   log.With("path", path),
	}
	if !readonly && !truncated {
		opts.Save = func(lines []string) error {
			return storage.Save(path, lines)
		}
	}

	log.Info("session start", "path", path, "lines", buf.Height(), "readonly", opts.Save == nil)
	session := editor.NewSession(buf, terminal, terminal, opts)
	return session.Run()
}
