package app

import (
	"github.com/spf13/cobra"
)

// Version is the current version of gjf, set at build time.
var Version = "dev"

var LongDescription = `
gjf reformats each Java file supplied on the command line to the Google Java
style by calling out to the google-java-format program, then runs a second
fixup pass that corrects the formatting of annotations in comments, which
the primary formatter handles poorly.

Both collaborators are fetched automatically on first use and cached next to
the gjf executable (or in a sibling lib directory).

Arguments beginning with "--" are passed through to google-java-format
unchanged; everything else is treated as a file to reformat.
`

// NewRootCmd creates the root command and wires up subcommands.
//
// The root command performs no flag parsing of its own: formatter options
// such as --aosp or --help must reach google-java-format verbatim. Driver
// behaviour is controlled through .gjf.yml and GJF_* environment variables
// instead.
func NewRootCmd(mgr Manager) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                "gjf <file>... [formatter options...]",
		Short:              "Format Java sources with google-java-format plus an annotation fixup pass",
		Long:               LongDescription,
		Version:            Version,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mgr.Format(cmd.Context(), args)
		},
	}

	// Subcommands
	rootCmd.AddCommand(NewCheckCmd(mgr))
	rootCmd.AddCommand(NewFetchCmd(mgr))
	rootCmd.AddCommand(NewWatchCmd(mgr))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
