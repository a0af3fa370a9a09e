package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/hypernum/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encode failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgInvalidNumberError   = "Not a number. Try forms like 1e500, eee5 or 10^^5."
	ErrMsgTierNotFoundError    = "Tier not found"
	ErrMsgInvalidTierError     = "Tier table is misconfigured"
	ErrMsgInvalidOverflowError = "Overflow power must be positive and meta between 1 and 10"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to a status code and a
// message safe to show to the caller
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidNumber):
		return http.StatusBadRequest, ErrMsgInvalidNumberError
	case errors.Is(err, domain.ErrTierNotFound):
		return http.StatusNotFound, ErrMsgTierNotFoundError
	case errors.Is(err, domain.ErrInvalidOverflow):
		return http.StatusBadRequest, ErrMsgInvalidOverflowError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidTier):
		return http.StatusInternalServerError, ErrMsgInvalidTierError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
