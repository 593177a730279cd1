package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tw93/dirsweep/internal/config"
	"github.com/tw93/dirsweep/internal/ignore"
	"github.com/tw93/dirsweep/internal/logging"
)

// loadSettings reads the config file and layers flags and positional roots on top.
func loadSettings(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(config.ExpandHome(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var f config.Flags
	roots, _ := flags.GetStringArray("root")
	f.Roots = append(roots, args...)
	f.IgnorePatterns, _ = flags.GetStringArray("ignore")
	if flags.Changed("preset-ignores") {
		v, _ := flags.GetBool("preset-ignores")
		f.UsePresets = &v
	}
	if flags.Changed("unique") {
		v, _ := flags.GetBool("unique")
		f.Dedupe = &v
	}
	if flags.Changed("search-mode") {
		v, _ := flags.GetString("search-mode")
		f.SearchMode = &v
	}
	if flags.Changed("log-file") {
		v, _ := flags.GetString("log-file")
		f.LogFile = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		f.LogLevel = &v
	}
	cfg.MergeWithFlags(f)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	if cfg.UsePresets {
		cfg.IgnorePatterns = ignore.WithPresets(cfg.IgnorePatterns)
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		color.NoColor = true
	}
	return cfg, nil
}

// setupLogging opens the log file. The returned func closes it.
func setupLogging(cfg *config.Config) (func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if err := logging.Init(cfg.LogFile, level); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { _ = logging.Close() }, nil
}
