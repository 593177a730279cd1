package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tw93/dirsweep/internal/ignore"
)

// NewPresetsCommand creates the presets command
func NewPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Print the ignore patterns added by --preset-ignores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range ignore.Presets {
				if _, err := fmt.Fprintln(out, p); err != nil {
					return err
				}
			}
			return nil
		},
		SilenceUsage: true,
	}
}
