package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/protocollar/names/internal/config"
	"github.com/protocollar/names/internal/exitcode"
	"github.com/protocollar/names/internal/jsonout"
	"github.com/protocollar/names/internal/logging"
)

var (
	configPath string
	verbose    bool
	genFlags   generatorFlags

	// logger is replaced in setup once flags are parsed.
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "names [AMOUNT]",
	Short: "Generate random adjective-noun names",
	Long: `names prints random names built from an adjective and a noun, such as
"rusty-nail" or "pushy-pencil-5602".

Configure via names.yaml (or names.yml, names.json) in the working directory,
~/.config/names/config.yaml, NAMES_* environment variables or flags. Later
sources win.`,
	Example: `  names
  names 5 --number 4
  names --casing pascal --truncate 12
  names --adjectives 'words/adj/*.txt' --seed 42`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	RunE:              runGenerate,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default: names.yaml in the working directory)")
	pf.BoolVar(&jsonout.Enabled, "json", false, "output JSON")
	pf.BoolVar(&jsonout.Concise, "concise", false, "with --json, output minimal JSON")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	genFlags.register(pf)

	rootCmd.MarkFlagsMutuallyExclusive("truncate", "reroll")
}

// RootCommand returns the root command, for tests and doc generation.
func RootCommand() *cobra.Command {
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	jsonout.ConfigureMsgOut()

	// Environment errors are reported when settings are resolved.
	e, _ := config.LoadEnv()
	logger = logging.New(os.Stderr, logging.Options{
		Verbose: verbose || e.Debug,
		JSON:    jsonout.Enabled,
	})
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code, exit := exitcode.ClassifyError(err)
		if jsonout.Enabled {
			jsonout.WriteError(code, err.Error(), exit)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exit)
	}
}
