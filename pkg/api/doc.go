// Package api wires the cookbook store and handlers into the HTTP server.
//
// This package is a thin layer over pkg/server: it loads configuration,
// configures structured logging, seeds a store from a catalogue document and
// registers the cookbook routes.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/mchmarny/cookbook/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /entry    - Add an ingredient or recipe (JSON entry descriptor)
//   - GET  /summary  - Resolve a recipe: /summary?name=Skibidi%20Spaghetti
//   - GET  /entries  - Export the store as a Catalogue document
//   - POST /parse    - Normalize a display name: {"input": "meatball_sub"}
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/entry \
//	  -d '{"type":"ingredient","name":"Egg","cookTime":5}'
//
//	curl 'http://localhost:8080/summary?name=Omelette'
//
// # Configuration
//
// Settings come from pkg/config: an optional cookbook.yaml (or the file named
// by COOKBOOK_CONFIG) and COOKBOOK_* environment variables. Without a
// catalogue the store is seeded with the bundled sample catalogue.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/cookbook/pkg/api.version=1.0.0'"
package api
