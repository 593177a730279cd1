package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mordilloSan/go-logger/logger"
	"github.com/spf13/cobra"

	"github.com/tw93/dirsweep/internal/crawler"
	"github.com/tw93/dirsweep/internal/results"
)

// errNoRoots is returned when neither flags, arguments nor config name a root.
var errNoRoots = errors.New("no roots to crawl: pass --root or set roots in the config file")

// NewListCommand creates the headless list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]...",
		Short: "Stream every collected directory to stdout",
		Long: `Crawl the roots without the interactive interface. Directories are printed
one per line as they are discovered; a summary goes to stderr.

Examples:
  dirsweep list ~/Repos
  dirsweep list -r ~/Repos -r ~/Work -i .git -i node_modules
  dirsweep list --preset-ignores --unique ~/Repos ~/Repos/app`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runList,
	}
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	if len(cfg.Roots) == 0 {
		return errNoRoots
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var summary crawler.Summary
	c := crawler.New(crawler.WithOnDone(func(_ crawler.SessionID, s crawler.Summary) {
		summary = s
	}))
	defer c.Shutdown()

	start := time.Now()
	c.Start(cfg.Roots, cfg.IgnorePatterns)

	out := bufio.NewWriter(cmd.OutOrStdout())
	var seen *results.Seen
	if cfg.Dedupe {
		seen = results.NewSeen()
	}
	printed, err := drain(c, seen, out)
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	c.Wait()

	printSummary(cmd.ErrOrStderr(), summary, printed, time.Since(start))
	return nil
}

// drain prints directories as they arrive until the session completes and
// returns how many were printed. A nil seen prints every directory.
func drain(c *crawler.Crawler, seen *results.Seen, out *bufio.Writer) (int, error) {
	printed := 0
	for range c.Ready() {
		for _, msg := range c.Poll() {
			switch msg := msg.(type) {
			case crawler.DirectoryDiscovered:
				if seen != nil && !seen.Add(msg.Path) {
					continue
				}
				if _, err := fmt.Fprintln(out, msg.Path); err != nil {
					return printed, fmt.Errorf("failed to write output: %w", err)
				}
				printed++
			case crawler.SessionComplete:
				return printed, nil
			}
		}
		if err := out.Flush(); err != nil {
			return printed, fmt.Errorf("failed to write output: %w", err)
		}
	}
	return printed, nil
}

func printSummary(w io.Writer, s crawler.Summary, printed int, elapsed time.Duration) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	gray := color.New(color.FgHiBlack)

	green.Fprintf(w, "Collected %s directories", humanize.Comma(int64(printed)))
	gray.Fprintf(w, " from %d root(s) in %s\n", s.Roots, elapsed.Round(time.Millisecond))
	if dropped := s.Directories - printed; dropped > 0 {
		yellow.Fprintf(w, "Skipped %s duplicate directories\n", humanize.Comma(int64(dropped)))
	}
	logger.InfoKV("list finished", "roots", s.Roots, "discovered", s.Directories, "printed", printed)
}
