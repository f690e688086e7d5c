package handler

import (
	"encoding/json"
	"net/http"

	"hedonic/internal/model"

	"github.com/rs/zerolog"
)

// MessageResponse is the standard envelope for API messages and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse carries field-level problems with a rejected payload.
type ValidationResponse struct {
	Message string                 `json:"message"`
	Errors  model.ValidationErrors `json:"errors"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeMessage writes a message-envelope response with the given status code.
func writeMessage(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	if status >= http.StatusInternalServerError {
		logger.Error().Str("message", message).Int("status", status).Msg("handler error")
	}
	writeJSON(w, status, MessageResponse{Message: message})
}
