package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/protocollar/names/internal/jsonout"
)

func init() {
	rootCmd.AddCommand(wordsCmd)
}

var wordsCmd = &cobra.Command{
	Use:       "words adjectives|nouns",
	Short:     "List the active word list",
	Long:      "List the adjectives or nouns names draws from, after config files, NAMES_ADJECTIVES/NAMES_NOUNS and --adjectives/--nouns are applied.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"adjectives", "nouns"},
	RunE:      runWords,
}

// wordsResult is the --json output of the words command.
type wordsResult struct {
	Kind  string   `json:"kind"`
	Count int      `json:"count"`
	Words []string `json:"words"`
}

func (r wordsResult) Concise() any {
	return r.Words
}

func runWords(cmd *cobra.Command, args []string) error {
	g, _, err := generatorFromFlags(cmd)
	if err != nil {
		return err
	}

	words := g.Adjectives()
	if args[0] == "nouns" {
		words = g.Nouns()
	}

	if jsonout.Enabled {
		return jsonout.Write(wordsResult{Kind: args[0], Count: len(words), Words: words})
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return w.Flush()
}
