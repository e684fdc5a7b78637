package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)

	_ = rootCmd.RegisterFlagCompletionFunc("casing", casingCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("separator", separatorCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("number-separator", separatorCompletion)
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completions for names.

  # Bash
  source <(names completion bash)

  # Zsh
  names completion zsh > "${fpath[1]}/_names"

  # Fish
  names completion fish | source`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		default:
			return cmd.Help()
		}
	},
}

// casingFlagValues are the spellings offered for --casing.
var casingFlagValues = []string{
	"lowercase\tjoin with the separator, all lowercase",
	"uppercase\tjoin with the separator, all uppercase",
	"capitalize\tcapitalize every word",
	"capitalize-first\tcapitalize the first word only",
	"capitalize-last\tcapitalize the last word only",
	"snake\tsnake_case",
	"screaming-snake\tSCREAMING_SNAKE_CASE",
	"camel\tcamelCase",
	"pascal\tPascalCase",
	"kebab\tkebab-case",
	"screaming-kebab\tSCREAMING-KEBAB-CASE",
}

func casingCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, v := range casingFlagValues {
		if strings.HasPrefix(v, toComplete) {
			out = append(out, v)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func separatorCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"-\tdash", "_\tunderscore", "none\tno separator"}, cobra.ShellCompDirectiveNoFileComp
}
