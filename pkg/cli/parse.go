package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/naming"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Normalize a display string into a canonical entry name",
		ArgsUsage: "INPUT",
		Description: `Replace '-' and '_' with spaces, drop anything that is not a letter or
whitespace and title-case each word.

Example:
  cookbook parse "meatball_-_sub"   # Meatball Sub`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one INPUT argument, got %d", cmd.NArg())
			}

			input := cmd.Args().First()
			name, ok := naming.Normalize(input)
			if !ok {
				return fmt.Errorf("input %q contains no words", input)
			}

			_, err := fmt.Fprintln(cmd.Root().Writer, name)
			return err
		},
	}
}
