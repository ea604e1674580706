/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/cookbook"
	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/header"
)

// ValidationResult reports the outcome of resolving every recipe in a
// catalogue.
type ValidationResult struct {
	header.Header `yaml:",inline"`

	Catalogue   string              `json:"catalogue" yaml:"catalogue"`
	Ingredients int                 `json:"ingredients" yaml:"ingredients"`
	Recipes     int                 `json:"recipes" yaml:"recipes"`
	Resolved    int                 `json:"resolved" yaml:"resolved"`
	Failures    []ValidationFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// ValidationFailure describes one recipe that did not resolve.
type ValidationFailure struct {
	Recipe string `json:"recipe" yaml:"recipe"`
	Reason string `json:"reason" yaml:"reason"`
	// Missing is the unknown entry name for a ReferenceNotFound failure.
	Missing string `json:"missing,omitempty" yaml:"missing,omitempty"`
	// Cycle lists the recipes of a CyclicReference, first and last equal.
	Cycle []string `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	Error string   `json:"error" yaml:"error"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check that a catalogue loads and every recipe resolves",
		Description: `Load a catalogue into an empty store, then resolve every recipe in it.
The report lists each recipe that references a missing entry or requires
itself. The command fails when the catalogue does not load or any recipe
does not resolve.

Examples:
  cookbook validate --catalogue catalogue.yaml
  cookbook validate -c https://example.com/catalogue.json -t table`,
		Flags: []cli.Flag{
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

			result, err := validateStore(ctx, store)
			if err != nil {
				return err
			}
			result.Catalogue = cmd.String("catalogue")
			if result.Catalogue == "" {
				result.Catalogue = "sample"
			}

			if err := writeOutput(ctx, cmd, format, result); err != nil {
				return err
			}

			if n := len(result.Failures); n > 0 {
				return fmt.Errorf("%d of %d recipes did not resolve", n, result.Recipes)
			}
			return nil
		},
	}
}

// validateStore resolves every recipe in store. Domain failures are
// collected in the result; a TIMEOUT means ctx ended and aborts the run.
func validateStore(ctx context.Context, store *cookbook.Store) (*ValidationResult, error) {
	result := &ValidationResult{}
	result.Init(header.KindValidationResult, version)

	r := cookbook.NewResolver(store)
	for _, e := range store.Entries() {
		if e.GetType() == cookbook.EntryTypeIngredient {
			result.Ingredients++
			continue
		}

		result.Recipes++
		_, err := r.ResolveContext(ctx, e.GetName(), 1)
		if err == nil {
			result.Resolved++
			continue
		}
		if cberrors.CodeOf(err) == cberrors.ErrCodeTimeout {
			return nil, fmt.Errorf("validation of %q did not complete: %w", e.GetName(), err)
		}
		result.Failures = append(result.Failures, newValidationFailure(e.GetName(), err))
	}
	return result, nil
}

func newValidationFailure(recipe string, err error) ValidationFailure {
	f := ValidationFailure{
		Recipe: recipe,
		Reason: cookbook.ReasonOf(err),
		Error:  err.Error(),
	}
	switch {
	case errors.Is(err, cookbook.ErrReferenceNotFound):
		if v, ok := cberrors.ContextValue(err, "name"); ok {
			f.Missing, _ = v.(string)
		}
	case errors.Is(err, cookbook.ErrCyclicReference):
		if v, ok := cberrors.ContextValue(err, "path"); ok {
			f.Cycle, _ = v.([]string)
		}
	}
	return f
}
