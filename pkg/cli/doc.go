// Package cli implements the cookbook command-line interface.
//
// # Commands
//
// summary - Resolve a recipe:
//
//	cookbook summary --name "Skibidi Spaghetti" [--catalogue FILE|URL] [--format json|yaml|table]
//
// Expands every nested recipe into base ingredients and prints the summed
// quantities (sorted by name) with the total cook time.
//
// validate - Check a catalogue:
//
//	cookbook validate --catalogue catalogue.yaml
//
// Loads the catalogue and resolves each recipe in it. Recipes that
// reference a missing entry or require themselves are listed in the report
// and the command exits non-zero.
//
// parse - Normalize a name:
//
//	cookbook parse "meatball_-_sub"
//
// serve - Run the HTTP API:
//
//	cookbook serve [--config FILE] [--port N] [--catalogue FILE|URL]
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL           Default for --log-level
//	COOKBOOK_CATALOGUE  Default for --catalogue
//	COOKBOOK_CONFIG     Default for serve --config
//
// When no catalogue is given the bundled sample catalogue is used.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/cookbook/pkg/cli.version=1.0.0'"
package cli
