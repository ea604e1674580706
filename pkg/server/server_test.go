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

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// serve sends one request through the full mux of s.
func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNew(t *testing.T) {
	t.Setenv(EnvPort, "")

	s := New(
		WithName("cookbookd"),
		WithVersion("v1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"/summary": okHandler}),
	)

	if s.config.Name != "cookbookd" || s.config.Version != "v1.2.3" {
		t.Errorf("name/version = %q/%q", s.config.Name, s.config.Version)
	}
	if s.httpServer == nil || s.rateLimiter == nil {
		t.Fatal("expected http server and rate limiter to be initialized")
	}
	if s.httpServer.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", s.httpServer.Addr)
	}
	if _, ok := s.config.Handlers["/"]; !ok {
		t.Error("expected default root handler")
	}
}

func TestDefaults(t *testing.T) {
	s := New()
	if s.config.Name != "server" {
		t.Errorf("default name = %q, want server", s.config.Name)
	}
	if s.isReady() {
		t.Error("new server must not report ready before Start")
	}
}

func TestWithHandlerMerges(t *testing.T) {
	s := New(
		WithHandler(map[string]http.HandlerFunc{"/entry": okHandler}),
		WithHandler(map[string]http.HandlerFunc{"/summary": okHandler}),
	)

	want := []string{"/entry", "/summary"}
	if got := s.routes(); !reflect.DeepEqual(got, want) {
		t.Errorf("routes() = %v, want %v", got, want)
	}
}

func TestWithConfig(t *testing.T) {
	t.Setenv(EnvPort, "")

	cfg := NewConfig()
	cfg.Name = "test-server"
	cfg.Port = 9090
	cfg.RateLimit = 500

	s := New(WithConfig(cfg), WithConfig(nil))

	if s.config != cfg {
		t.Fatal("expected config to be replaced, and nil config to be ignored")
	}
	if s.httpServer.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", s.httpServer.Addr)
	}
}

func TestProbes(t *testing.T) {
	s := New()

	tests := []struct {
		name       string
		method     string
		path       string
		ready      bool
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/health", false, http.StatusOK, `"healthy"`},
		{"health head", http.MethodHead, "/health", false, http.StatusOK, ""},
		{"health post", http.MethodPost, "/health", false, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"not ready", http.MethodGet, "/ready", false, http.StatusServiceUnavailable, "catalogue is not loaded"},
		{"ready", http.MethodGet, "/ready", true, http.StatusOK, `"ready"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetReady(tt.ready)
			w := serve(s, tt.method, tt.path)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestProbesBypassMiddleware(t *testing.T) {
	w := serve(New(), http.MethodGet, "/health")
	if w.Header().Get("X-Request-Id") != "" {
		t.Error("probes should not pass through the API middleware")
	}
}

func TestDefaultRootHandler(t *testing.T) {
	s := New(WithVersion("v0.1.0"), WithHandler(map[string]http.HandlerFunc{
		"/summary": okHandler,
		"/entry":   okHandler,
	}))
	s.SetReady(true)

	t.Run("index", func(t *testing.T) {
		w := serve(s, http.MethodGet, "/")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var body struct {
			Name    string   `json:"name"`
			Version string   `json:"version"`
			Ready   bool     `json:"ready"`
			Routes  []string `json:"routes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Version != "v0.1.0" || !body.Ready {
			t.Errorf("unexpected index %+v", body)
		}
		if want := []string{"/entry", "/summary"}; !reflect.DeepEqual(body.Routes, want) {
			t.Errorf("routes = %v, want %v", body.Routes, want)
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		w := serve(s, http.MethodGet, "/nope")
		if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "NOT_FOUND") {
			t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := serve(s, http.MethodDelete, "/")
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", w.Code)
		}
		if w.Header().Get("Allow") == "" {
			t.Error("expected Allow header")
		}
	})
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	called := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
		},
	}))

	if w := serve(s, http.MethodGet, "/"); w.Code != http.StatusTeapot || !called {
		t.Errorf("custom root handler not used: status %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/summary": okHandler}))
	serve(s, http.MethodGet, "/summary?name=Omelette")

	w := serve(s, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `cookbook_http_requests_total{method="GET",route="/summary",status="200"}`) {
		t.Error("expected request counter labelled by route")
	}
}

func TestStartAndShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = 100 * time.Millisecond

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	if !s.isReady() {
		t.Error("expected server to be ready after Start")
	}

	cancel()

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("shutdown timed out")
	}

	if s.isReady() {
		t.Error("expected server to be not ready after shutdown")
	}
}
