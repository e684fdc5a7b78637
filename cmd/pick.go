package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/protocollar/names/internal/exitcode"
	"github.com/protocollar/names/internal/jsonout"
	"github.com/protocollar/names/internal/tui"
	"github.com/protocollar/names/pkg/names"
)

var pickBatch int

func init() {
	pickCmd.Flags().IntVar(&pickBatch, "batch", 10, "names per batch")
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick names interactively",
	Long: `Browse batches of generated names and pick one or more.

The picker draws on stderr; picked names are printed to stdout, one per line,
so the command works inside $(...).`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	if jsonout.Enabled {
		return exitcode.New("interactive_only", exitcode.InteractiveOnly, "pick cannot be used with --json")
	}
	if !jsonout.IsTerminal(os.Stdin) || !jsonout.IsTerminal(os.Stderr) {
		return exitcode.New("interactive_only", exitcode.InteractiveOnly, "pick requires a terminal")
	}
	if pickBatch < 1 {
		return exitcode.Errorf("invalid_args", exitcode.InvalidArgs, "--batch must be positive, got %d", pickBatch)
	}

	g, s, err := generatorFromFlags(cmd)
	if err != nil {
		return err
	}

	result, err := tui.RunPicker(g, tui.PickerOptions{
		Batch:   pickBatch,
		Details: pickDetails(s.Path, g),
	})
	if err != nil {
		return err
	}
	if len(result.Picked) == 0 {
		return exitcode.New("cancelled", exitcode.GeneralError, "no name picked")
	}

	for _, name := range result.Picked {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func pickDetails(path string, g *names.Generator) []tui.Detail {
	if path == "" {
		path = "(built-in defaults)"
	}
	return []tui.Detail{
		{Label: "Casing", Value: g.Casing().String()},
		{Label: "Naming", Value: g.Naming().String()},
		{Label: "Length", Value: g.Length().String()},
		{Label: "Words", Value: fmt.Sprintf("%d adjectives, %d nouns", len(g.Adjectives()), len(g.Nouns()))},
		{Label: "Config", Value: path},
	}
}
