package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ytblog-backend/internal/models"
	"ytblog-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(detail string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Detail:    detail,
		RequestID: r.Header.Get("X-Request-ID"),
	}
}

// handleServiceError maps the two pipeline error kinds onto HTTP. The
// upstream message is embedded verbatim.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var transcriptErr *services.TranscriptError
	var generationErr *services.GenerationError

	switch {
	case errors.As(err, &transcriptErr):
		writeJSON(w, http.StatusBadRequest, errorResp("Transcript fetch failed: "+transcriptErr.Message, r))
	case errors.As(err, &generationErr):
		writeJSON(w, http.StatusInternalServerError, errorResp("Gemini error: "+generationErr.Message, r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("Internal server error", r))
	}
}
