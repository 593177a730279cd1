package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mordilloSan/go-logger/logger"
	"github.com/spf13/cobra"

	"github.com/tw93/dirsweep/internal/crawler"
	"github.com/tw93/dirsweep/internal/results"
	"github.com/tw93/dirsweep/internal/tui"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// isTerminal reports whether stdout can host the interactive UI.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewRootCommand creates and returns the root cobra command for dirsweep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirsweep [root]...",
		Short: "Collect and search every directory under a set of roots",
		Long: `dirsweep walks one or more root directories, prunes any directory whose
path contains an ignore pattern, and streams every remaining directory into a
searchable list.

Without a terminal on stdout it behaves like "dirsweep list".

Configuration is loaded from $DIRSWEEP_CONFIG, $XDG_CONFIG_HOME/dirsweep/config.yaml
or ~/.config/dirsweep/config.yaml. CLI flags override configuration file settings.`,
		Version:      Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return runList(cmd, args)
			}
			return runInteractive(cmd, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default: ~/.config/dirsweep/config.yaml)")
	flags.StringArrayP("root", "r", nil, "Root directory to crawl (repeatable)")
	flags.StringArrayP("ignore", "i", nil, "Ignore pattern; replaces configured patterns (repeatable)")
	flags.Bool("preset-ignores", false, "Also ignore common dependency, build and cache directories")
	flags.Bool("unique", false, "Drop directories already collected from an earlier root")
	flags.String("search-mode", "", "Search matching: substring or fuzzy")
	flags.String("log-file", "", "Log file path (default: ~/.cache/dirsweep/dirsweep.log)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewPresetsCommand())

	return cmd
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	mode, err := results.ParseMode(cfg.SearchMode)
	if err != nil {
		return err
	}

	c := crawler.New()
	defer c.Shutdown()

	logger.Infof("starting interactive session with %d roots", len(cfg.Roots))
	err = tui.Run(c, tui.Options{
		Roots:          cfg.Roots,
		IgnorePatterns: cfg.IgnorePatterns,
		Dedupe:         cfg.Dedupe,
		SearchMode:     mode,
		TickInterval:   cfg.TickInterval,
		AutoRefresh:    len(cfg.Roots) > 0,
	})
	if err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
