package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/cookbook/pkg/config"
	"github.com/mchmarny/cookbook/pkg/cookbook"
)

// Serve blocks until shutdown, so these tests exercise the route table and
// the handlers it wires rather than the listener.

func TestConstants(t *testing.T) {
	if name != "cookbookd" {
		t.Errorf("name = %q, want %q", name, "cookbookd")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func TestRoutes(t *testing.T) {
	routes := Routes(cookbook.NewStore(), "test")

	for _, path := range []string{"/entry", "/summary", "/entries", "/parse"} {
		h, ok := routes[path]
		if assert.True(t, ok, "missing route %s", path) {
			assert.NotNil(t, h)
		}
	}
}

func newTestAPI(t *testing.T, store *cookbook.Store) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range Routes(store, "test") {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestAPIScenario(t *testing.T) {
	srv := newTestAPI(t, cookbook.NewStore())

	code, _ := do(t, http.MethodPost, srv.URL+"/entry",
		`{"type":"recipe","name":"Omelette","requiredItems":[{"name":"Egg","quantity":3}]}`)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, http.MethodGet, srv.URL+"/summary?name=Omelette", "")
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, http.MethodPost, srv.URL+"/entry", `{"type":"ingredient","name":"Egg","cookTime":5}`)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, http.MethodPost, srv.URL+"/entry", `{"type":"ingredient","name":"Egg","cookTime":5}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, body := do(t, http.MethodGet, srv.URL+"/summary?name=Omelette", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"name":"Omelette","cookTime":15,"ingredients":[{"name":"Egg","quantity":3}]}`, body)

	code, body = do(t, http.MethodPost, srv.URL+"/parse", `{"input":"omelette_du-fromage"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"msg":"Omelette Du Fromage"}`, body)
}

func TestAPIConcurrentRequests(t *testing.T) {
	store, err := cookbook.NewStoreFromCatalogue(t.Context(), "")
	require.NoError(t, err)
	srv := newTestAPI(t, store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(srv.URL + "/summary?name=Sandwich")
			if err != nil {
				t.Errorf("request failed: %v", err)
				return
			}
			resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}()
	}
	wg.Wait()
}

func TestNewServer(t *testing.T) {
	cfg := &config.Config{Port: 18081, RateLimit: 10, RateLimitBurst: 10}
	s := newServer(cfg, cookbook.NewStore(), "test")
	require.NotNil(t, s)
}

func TestCatalogueSource(t *testing.T) {
	assert.Equal(t, "sample", catalogueSource(""))
	assert.Equal(t, "/tmp/c.yaml", catalogueSource("/tmp/c.yaml"))
}
