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

package header

import (
	"fmt"
	"time"
)

// Kind names the type of a cookbook document.
type Kind string

const (
	KindCatalogue        Kind = "Catalogue"
	KindValidationResult Kind = "ValidationResult"
)

// APIVersion is the schema version stamped on every cookbook document.
const APIVersion = "cookbook.mchmarny.dev/v1"

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known document kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindCatalogue, KindValidationResult:
		return true
	default:
		return false
	}
}

// Header is embedded inline at the top of every cookbook document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init stamps kind and the current APIVersion, and resets Metadata to the
// generation timestamp plus the producing tool version when non-empty.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Validate checks that the header names want at the supported API version.
// An empty APIVersion is accepted for hand-written documents.
func (h *Header) Validate(want Kind) error {
	if !want.IsValid() {
		return fmt.Errorf("unknown kind %q", want)
	}
	if h.Kind != want {
		return fmt.Errorf("unexpected kind %q, want %q", h.Kind, want)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion)
	}
	return nil
}
