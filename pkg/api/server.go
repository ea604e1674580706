package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mchmarny/cookbook/pkg/config"
	"github.com/mchmarny/cookbook/pkg/cookbook"
	"github.com/mchmarny/cookbook/pkg/defaults"
	"github.com/mchmarny/cookbook/pkg/logging"
	"github.com/mchmarny/cookbook/pkg/naming"
	"github.com/mchmarny/cookbook/pkg/server"
)

const (
	name           = "cookbookd"
	versionDefault = "dev"

	// EnvConfigPath names the config file read by Serve.
	EnvConfigPath = "COOKBOOK_CONFIG"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/cookbook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options override settings loaded from the config file and environment.
type Options struct {
	// ConfigPath is an explicit config file; empty looks for ./cookbook.yaml.
	ConfigPath string
	// Catalogue replaces the configured seed catalogue when set.
	Catalogue string
	// Port replaces the configured port when non-zero.
	Port int
	// Version is reported by the server; defaults to the build version.
	Version string
}

// Serve starts the API server using COOKBOOK_CONFIG and the environment,
// and blocks until shutdown.
func Serve() error {
	return ServeWithOptions(context.Background(), Options{
		ConfigPath: os.Getenv(EnvConfigPath),
	})
}

// ServeWithOptions loads configuration, seeds the store and runs the server
// until ctx is canceled or a termination signal arrives.
func ServeWithOptions(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Catalogue != "" {
		cfg.Catalogue = opts.Catalogue
	}
	if opts.Port != 0 {
		cfg.Port = opts.Port
	}

	v := version
	if opts.Version != "" {
		v = opts.Version
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, v, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", v,
		"commit", commit,
		"date", date,
	)

	loadCtx, cancel := context.WithTimeout(ctx, defaults.CatalogueLoadTimeout)
	store, err := cookbook.NewStoreFromCatalogue(loadCtx, cfg.Catalogue)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}
	slog.Info("store seeded",
		"catalogue", catalogueSource(cfg.Catalogue),
		"entries", store.Len(),
	)

	s := newServer(cfg, store, v)
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func newServer(cfg *config.Config, store *cookbook.Store, v string) *server.Server {
	return server.New(
		server.WithConfig(cfg.ServerConfig()),
		server.WithName(name),
		server.WithVersion(v),
		server.WithHandler(Routes(store, v)),
	)
}

// Routes returns the API routes backed by store.
func Routes(store *cookbook.Store, v string) map[string]http.HandlerFunc {
	routes := cookbook.NewHandler(store, v).Routes()
	routes["/parse"] = naming.HandleParse
	return routes
}

func catalogueSource(path string) string {
	if path == "" {
		return "sample"
	}
	return path
}
