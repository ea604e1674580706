package cookbook

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mchmarny/cookbook/pkg/defaults"
	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/serializer"
	"github.com/mchmarny/cookbook/pkg/server"
)

// Handler exposes a Store over HTTP.
type Handler struct {
	store    *Store
	resolver *Resolver
	version  string
}

// NewHandler returns HTTP handlers backed by store. version is stamped on
// exported catalogue documents.
func NewHandler(store *Store, version string) *Handler {
	return &Handler{
		store:    store,
		resolver: NewResolver(store),
		version:  version,
	}
}

// Routes returns the API routes served by h.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/entry":   h.HandleEntry,
		"/summary": h.HandleSummary,
		"/entries": h.HandleEntries,
	}
}

// HandleEntry processes POST /entry. The JSON body is an EntryDescriptor.
// An accepted entry is acknowledged with 200 and an empty body; a rejected
// one with 400 and the rejection reason in the error details.
func (h *Handler) HandleEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	var desc EntryDescriptor
	if err := serializer.DecodeJSONBody(r.Body, &desc); err != nil {
		details := map[string]any{"error": err.Error()}
		if errors.Is(err, serializer.ErrEmptyBody) {
			details["reason"] = "EmptyBody"
		}
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Invalid entry descriptor", false, details)
		return
	}

	if _, err := h.store.AddEntry(desc); err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to add entry", nil)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleSummary processes GET /summary?name=<recipe>.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SummaryHandlerTimeout)
	defer cancel()

	name := r.URL.Query().Get("name")
	slog.Debug("summary requested",
		"name", name,
		"requestID", server.RequestIDFromContext(r.Context()),
		"apiVersion", server.APIVersionFromContext(r.Context()))

	summary, err := h.resolver.SummarizeContext(ctx, name)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to summarize recipe", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, summary)
}

// HandleEntries processes GET /entries and returns the store as a
// Catalogue document.
func (h *Handler) HandleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, NewCatalogue(h.store, h.version))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	server.WriteError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{allowed},
		})
}
