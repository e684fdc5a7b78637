package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/protocollar/names/internal/jsonout"
)

// Build information, set by main via SetVersionInfo.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersionInfo records build information and wires it into --version.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonout.Enabled {
			return jsonout.Write(map[string]string{
				"version": Version,
				"commit":  Commit,
				"date":    Date,
			})
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "names %s (commit %s, built %s)\n", Version, Commit, Date)
		return err
	},
}
