package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.NOTFOUND:
		statusCode = http.StatusNotFound
	case gen.SERVICEUNAVAILABLE:
		statusCode = http.StatusServiceUnavailable
	}
	respondJSON(w, statusCode, err)
}

// decodeBody decodes the JSON request body into v, answering 400 when it is malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return false
	}
	return true
}

// paramErrorHandler reports path and query binding failures in the API error envelope.
func paramErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, badRequest(err.Error()))
}
