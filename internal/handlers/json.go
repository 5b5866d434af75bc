package handlers

import (
	"encoding/json"
	"net/http"

	"prepwise-backend/internal/models"
	"prepwise-backend/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// handleServiceError maps typed service errors to HTTP statuses. This is
// the only place provider failures become responses.
func handleServiceError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorResp(e.Message))
	case *services.AuthError:
		writeJSON(w, http.StatusUnauthorized, errorResp(e.Message))
	case *services.RateLimitError:
		writeJSON(w, http.StatusTooManyRequests, errorResp(e.Message))
	case *services.QuotaError:
		writeJSON(w, http.StatusTooManyRequests, models.ErrorResponse{Error: e.Message, Details: e.Hint})
	case *services.UpstreamFormatError:
		writeJSON(w, http.StatusInternalServerError, errorResp(e.Message))
	case *services.InternalError:
		writeJSON(w, http.StatusInternalServerError, errorResp(e.Message))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("Internal server error"))
	}
}
