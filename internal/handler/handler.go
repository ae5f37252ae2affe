package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"befach-store/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a domain error to its HTTP status; anything that
// is not a DomainError becomes a generic 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeInvalidFileType,
		model.ErrCodeEmptyFile,
		model.ErrCodeImageRequired,
		model.ErrCodeInvalidJSON,
		model.ErrCodeMissingField:
		status = http.StatusBadRequest
	case model.ErrCodeProductNotFound,
		model.ErrCodeSlideNotFound,
		model.ErrCodeNothingDeleted:
		status = http.StatusNotFound
	case model.ErrCodeInvalidCredentials,
		model.ErrCodeUnauthorised:
		status = http.StatusUnauthorized
	case model.ErrCodeStorageUnavailable:
		status = http.StatusInternalServerError
	}

	logger.Error().
		Str("code", domainErr.Code).
		Int("status", status).
		Msg("domain error")

	writeJSON(w, status, model.ErrorResponse{Error: domainErr.Message})
}
