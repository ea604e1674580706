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

// Package serializer reads and writes cookbook documents.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Writing a summary:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, summary); err != nil {
//		return err
//	}
//
// Reading a catalogue from a file or an HTTP(S) URL, with the format picked
// from the extension:
//
//	cat, err := serializer.FromFile[cookbook.Catalogue](ctx, "catalogue.yaml")
//
// Remote documents are fetched by HTTPReader with the client timeouts in
// pkg/defaults and are rejected above defaults.MaxRemoteDocumentBytes.
//
// For HTTP handlers:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//	err := serializer.DecodeJSONBody(r.Body, &descriptor)
//
// JSON input is decoded with UseNumber so integral values survive intact
// until the caller validates them.
package serializer
