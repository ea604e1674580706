// Package logging configures log/slog for the cookbook binaries.
//
// Both cookbook and cookbookd log JSON to stderr. Every record carries the
// binary name as "module" and its build version as "version". Records at
// debug level also carry their source location.
//
// # Levels
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any
// case. Anything else, including the empty string, is treated as info.
// The level normally comes from the LOG_LEVEL environment variable
// (EnvLogLevel), the --log-level CLI flag or the log_level config key:
//
//	LOG_LEVEL=debug cookbook summary --catalogue catalogue.yaml --name Omelette
//
// # Usage
//
// Install the process-wide logger once, early in main or in a CLI Before hook:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cookbookd", version, cfg.LogLevel)
//	slog.Info("store seeded", "entries", store.Len())
//
// Build a standalone logger without touching the default:
//
//	logger := logging.NewStructuredLogger("cookbook", "v1.0.0", "debug")
//
// Adapt the default handler to a *log.Logger for APIs that still take one,
// such as http.Server.ErrorLog:
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelWarn, false)
//
// A typical record:
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"store seeded","module":"cookbookd","version":"v1.0.0","entries":24}
package logging
