// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP server shared by the cookbook API.
//
// # Architecture
//
// The server hosts caller-supplied handlers behind a fixed middleware chain:
//
//   - Prometheus request metrics, labelled by route
//   - API version negotiation (Accept: application/vnd.cookbook.v1+json)
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request logging (log/slog)
//
// System endpoints are registered without middleware:
//
//	GET /health   liveness probe (GET and HEAD)
//	GET /ready    readiness probe, 503 until Start is called
//	GET /metrics  Prometheus metrics
//
// When no "/" handler is supplied a default one lists the registered routes
// and answers 404 for unknown paths.
//
// # Usage
//
//	import (
//	    "github.com/mchmarny/cookbook/pkg/server"
//	)
//
//	func main() {
//	    s := server.New(
//	        server.WithName("cookbookd"),
//	        server.WithVersion(version),
//	        server.WithHandler(map[string]http.HandlerFunc{
//	            "/entry":   h.HandleEntry,
//	            "/summary": h.HandleSummary,
//	        }),
//	    )
//	    if err := s.Run(ctx); err != nil {
//	        slog.Error("server exited", "error", err)
//	    }
//	}
//
// # Errors
//
// All error responses share one JSON shape:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "entry name already exists",
//	  "details": {"reason": "DuplicateName", "name": "Skibidi"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// Handlers return structured errors from pkg/errors and call WriteErrorFromErr;
// the error code selects the HTTP status through HTTPStatusFromCode.
//
// # Configuration
//
// Defaults come from pkg/defaults and may be overridden with:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown window (default 30)
//
// Run installs SIGINT and SIGTERM handlers and drains in-flight requests
// before returning.
package server
