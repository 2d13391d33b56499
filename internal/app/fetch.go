package app

import (
	"github.com/spf13/cobra"
)

func NewFetchCmd(mgr Manager) *cobra.Command {
	var latest bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the formatter and fixup artifacts ahead of time",
		Long: `fetch resolves both artifacts, downloading whichever is missing from the
cache directories. Useful to warm a CI cache or an offline machine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mgr.Fetch(cmd.Context(), latest)
		},
	}

	cmd.Flags().BoolVarP(&latest, "latest", "l", false,
		"also ask GitHub whether a newer formatter release exists (advisory, never fails)")

	return cmd
}
