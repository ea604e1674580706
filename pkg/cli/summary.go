package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/cookbook"
)

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "summary",
		EnableShellCompletion: true,
		Usage:                 "Resolve a recipe into its base ingredients and total cook time",
		Description: `Load a catalogue and resolve the named recipe, expanding every nested
recipe into base ingredients. Quantities multiply down each level and are
summed across branches.

Examples:
  cookbook summary --name "Skibidi Spaghetti"
  cookbook summary -c catalogue.yaml -n Sandwich -t yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "recipe name",
				Required: true,
			},
			catalogueFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			store, err := loadStore(ctx, cmd)
			if err != nil {
				return err
			}

			summary, err := cookbook.NewResolver(store).SummarizeContext(ctx, cmd.String("name"))
			if err != nil {
				return fmt.Errorf("failed to summarize %q: %w", cmd.String("name"), err)
			}

			return writeOutput(ctx, cmd, format, summary)
		},
	}
}
