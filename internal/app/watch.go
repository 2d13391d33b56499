package app

import (
	"github.com/spf13/cobra"
)

func NewWatchCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>...",
		Short: "Reformat Java files as they change",
		Long: `watch monitors the given files and directories (directories recursively)
and runs the formatting pipeline over whatever changed. It blocks until
interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mgr.Watch(cmd.Context(), args)
		},
	}
}
