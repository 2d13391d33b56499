package app

import (
	"github.com/spf13/cobra"
)

func NewCheckCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report files google-java-format would change, without modifying them",
		Long: `check runs the formatter in dry-run mode and exits non-zero when any of
the given files is not already formatted. Nothing is rewritten and the
annotation fixup pass does not run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mgr.Check(cmd.Context(), args)
		},
	}
}
