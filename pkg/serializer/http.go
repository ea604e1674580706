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

package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/mchmarny/cookbook/pkg/defaults"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// ErrEmptyBody is returned by DecodeJSONBody when the request has no payload.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSONBody decodes a single JSON document from body into v, reading at
// most defaults.MaxRequestBodyBytes. Numbers decode as json.Number.
func DecodeJSONBody(body io.Reader, v any) error {
	if body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(body, defaults.MaxRequestBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("failed to decode JSON body: %w", err)
	}
	return nil
}

// DefaultUserAgent identifies cookbook when fetching remote documents.
const DefaultUserAgent = "cookbook/1.0"

const acceptDocuments = "application/yaml, application/json;q=0.9, */*;q=0.1"

// HTTPReader fetches remote catalogue documents.
type HTTPReader struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// HTTPReaderOption configures an HTTPReader.
type HTTPReaderOption func(*HTTPReader)

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(userAgent string) HTTPReaderOption {
	return func(r *HTTPReader) {
		r.userAgent = userAgent
	}
}

// WithClient replaces the default client. A nil client is ignored.
func WithClient(client *http.Client) HTTPReaderOption {
	return func(r *HTTPReader) {
		if client != nil {
			r.client = client
		}
	}
}

// WithMaxBytes caps the accepted response size. Non-positive values are ignored.
func WithMaxBytes(n int64) HTTPReaderOption {
	return func(r *HTTPReader) {
		if n > 0 {
			r.maxBytes = n
		}
	}
}

// NewHTTPReader returns a reader with conservative client timeouts from
// pkg/defaults and a defaults.MaxRemoteDocumentBytes size cap.
func NewHTTPReader(opts ...HTTPReaderOption) *HTTPReader {
	r := &HTTPReader{
		client: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newTransport(),
		},
		userAgent: DefaultUserAgent,
		maxBytes:  defaults.MaxRemoteDocumentBytes,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// Fetch GETs url and returns the body. Any non-2xx status and any body
// larger than the configured cap is an error.
func (r *HTTPReader) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("Accept", acceptDocuments)
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	if int64(len(data)) > r.maxBytes {
		return nil, fmt.Errorf("document at %s exceeds %d bytes", url, r.maxBytes)
	}
	return data, nil
}
