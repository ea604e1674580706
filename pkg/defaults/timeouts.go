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

package defaults

import "time"

// Request handling in pkg/cookbook and pkg/naming.
const (
	// SummaryHandlerTimeout bounds one GET /summary resolution. It stays
	// below ServerWriteTimeout so the error response can still be written.
	SummaryHandlerTimeout = 30 * time.Second

	// MaxRequestBodyBytes is the largest accepted POST /entry or /parse body.
	MaxRequestBodyBytes = 1 << 20

	// MaxRemoteDocumentBytes is the largest catalogue accepted from a URL.
	MaxRemoteDocumentBytes = 8 << 20
)

// http.Server settings used by pkg/server.
const (
	ServerReadTimeout       = 10 * time.Second
	ServerReadHeaderTimeout = 5 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	// ServerShutdownTimeout is how long in-flight requests get to drain
	// after SIGINT or SIGTERM. SHUTDOWN_TIMEOUT_SECONDS overrides it.
	ServerShutdownTimeout = 30 * time.Second
)

// Transport settings for serializer.HTTPReader when fetching catalogues.
const (
	HTTPClientTimeout         = 30 * time.Second
	HTTPConnectTimeout        = 5 * time.Second
	HTTPKeepAlive             = 30 * time.Second
	HTTPTLSHandshakeTimeout   = 5 * time.Second
	HTTPResponseHeaderTimeout = 10 * time.Second
	HTTPIdleConnTimeout       = 90 * time.Second
)

// CatalogueLoadTimeout bounds reading and applying a catalogue, from
// disk or URL, in the CLI and when the daemon seeds its store.
const CatalogueLoadTimeout = time.Minute
