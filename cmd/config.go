package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/protocollar/names/internal/config"
	"github.com/protocollar/names/internal/exitcode"
	"github.com/protocollar/names/internal/jsonout"
	"github.com/protocollar/names/pkg/names"
)

var (
	initForce bool
	initUser  bool
)

func init() {
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&initUser, "user", false, "write ~/.config/names/config.yaml")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a default config file",
	Long: `Write a config file holding the default settings.

PATH defaults to names.yaml in the working directory, or
~/.config/names/config.yaml with --user. A .json extension writes JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

// configView is the resolved configuration as shown by "config show" and
// the show_config MCP tool. Word lists are summarized by size.
type configView struct {
	Path            string       `json:"path" yaml:"path"`
	Naming          names.Naming `json:"naming" yaml:"naming"`
	Casing          names.Casing `json:"casing" yaml:"casing"`
	Length          names.Length `json:"length" yaml:"length"`
	MaxRerolls      int          `json:"max_rerolls" yaml:"max_rerolls"`
	Adjectives      int          `json:"adjectives" yaml:"adjectives"`
	Nouns           int          `json:"nouns" yaml:"nouns"`
	AdjectivesFiles []string     `json:"adjectives_files,omitempty" yaml:"adjectives_files,omitempty"`
	NounsFiles      []string     `json:"nouns_files,omitempty" yaml:"nouns_files,omitempty"`
}

func newConfigView(s *config.Settings, g *names.Generator) configView {
	return configView{
		Path:            s.Path,
		Naming:          g.Naming(),
		Casing:          g.Casing(),
		Length:          g.Length(),
		MaxRerolls:      g.MaxRerolls(),
		Adjectives:      len(g.Adjectives()),
		Nouns:           len(g.Nouns()),
		AdjectivesFiles: s.AdjectivesFiles,
		NounsFiles:      s.NounsFiles,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	g, s, err := generatorFromFlags(cmd)
	if err != nil {
		return err
	}
	view := newConfigView(s, g)

	if jsonout.Enabled {
		return jsonout.Write(view)
	}

	if view.Path == "" {
		view.Path = "(built-in defaults)"
	}
	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "names.yaml"
	switch {
	case len(args) == 1 && initUser:
		return exitcode.New("invalid_args", exitcode.InvalidArgs, "PATH cannot be used with --user")
	case len(args) == 1:
		path = args[0]
	case initUser:
		p, err := config.UserPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := config.Save(path, config.DefaultFile(), initForce); err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(map[string]string{"path": path})
	}
	fmt.Fprintf(jsonout.MsgOut(), "Wrote %s\n", path)
	return nil
}

