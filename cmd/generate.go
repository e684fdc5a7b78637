package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/protocollar/names/internal/exitcode"
	"github.com/protocollar/names/internal/jsonout"
	"github.com/protocollar/names/pkg/names"
)

// generateResult is the --json output of the root command.
type generateResult struct {
	Names  []string     `json:"names"`
	Naming names.Naming `json:"naming"`
	Casing names.Casing `json:"casing"`
	Length names.Length `json:"length"`
}

func (r generateResult) Concise() any {
	return r.Names
}

func parseAmount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, exitcode.Errorf("invalid_args", exitcode.InvalidArgs,
			"invalid argument %q for AMOUNT: want a non-negative integer", args[0])
	}
	return n, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(args)
	if err != nil {
		return err
	}

	g, _, err := generatorFromFlags(cmd)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		result := generateResult{
			Names:  make([]string, 0, amount),
			Naming: g.Naming(),
			Casing: g.Casing(),
			Length: g.Length(),
		}
		for range amount {
			name, err := generateOne(g)
			if err != nil {
				return err
			}
			result.Names = append(result.Names, name)
		}
		return jsonout.Write(result)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	defer func() { _ = w.Flush() }()
	for range amount {
		name, err := generateOne(g)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return w.Flush()
}

func generateOne(g *names.Generator) (string, error) {
	name, err := g.Generate()
	if errors.Is(err, names.ErrRerollExhausted) {
		logger.Warn("reroll exhausted", "length", g.Length().N, "max_rerolls", g.MaxRerolls())
	}
	return name, err
}
