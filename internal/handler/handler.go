package handler

import (
	"encoding/json"
	"net/http"

	"dinehub/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already gone; nothing to do for the client.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:   codeForStatus(status),
		Message: message,
	})
}

// writeDomainError writes an error response carrying the domain error's
// stable code.
func writeDomainError(w http.ResponseWriter, status int, err *model.DomainError, logger zerolog.Logger) {
	logger.Warn().Str("code", err.Code).Int("status", status).Msg(err.Message)
	writeJSON(w, status, model.ErrorResponse{
		Error:   err.Code,
		Message: err.Message,
	})
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return model.ErrCodeNotFound
	case status == http.StatusUnauthorized:
		return model.ErrCodeUnauthorised
	case status >= 500:
		return model.ErrCodeInternalError
	default:
		return model.ErrCodeBadRequest
	}
}
