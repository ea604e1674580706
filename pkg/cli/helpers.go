package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/cookbook"
	"github.com/mchmarny/cookbook/pkg/defaults"
	"github.com/mchmarny/cookbook/pkg/serializer"
)

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// loadStore seeds a store from the --catalogue flag.
func loadStore(ctx context.Context, cmd *cli.Command) (*cookbook.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogueLoadTimeout)
	defer cancel()

	path := cmd.String("catalogue")
	store, err := cookbook.NewStoreFromCatalogue(ctx, path)
	if err != nil {
		if path == "" {
			path = "sample"
		}
		return nil, fmt.Errorf("failed to load catalogue %q: %w", path, err)
	}
	return store, nil
}

// writeOutput serializes v to --output (or stdout) in the given format.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()
	return w.Serialize(ctx, v)
}
