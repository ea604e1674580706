package naming

import (
	"net/http"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/serializer"
	"github.com/mchmarny/cookbook/pkg/server"
)

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Input string `json:"input"`
}

// ParseResponse is returned by POST /parse.
type ParseResponse struct {
	Msg string `json:"msg"`
}

// HandleParse processes POST /parse and returns the normalized form of the
// input. Input without any letters is rejected with 400.
func HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}
	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	var req ParseRequest
	if err := serializer.DecodeJSONBody(r.Body, &req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Invalid parse request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	name, ok := Normalize(req.Input)
	if !ok {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Input contains no words", false, map[string]any{
				"input": req.Input,
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ParseResponse{Msg: name})
}
