package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/format"
	"github.com/osse101/hypernum/internal/logger"
	"github.com/osse101/hypernum/internal/metrics"
	"github.com/osse101/hypernum/internal/validation"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates its tags.
// If it returns an error, the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req FormatRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Format"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := validation.Struct().Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validation.FieldErrors(err),
		})
		return err
	}

	return nil
}

// tierParam reads the {tier} path parameter. If ok is false the response has
// already been written.
func tierParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "tier"))
	if err != nil || id < 1 {
		logger.FromContext(r.Context()).Warn("Invalid tier path parameter", "tier", chi.URLParam(r, "tier"))
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTierID)
		return 0, false
	}
	return id, true
}

// number converts a validated request field. Fields carrying the number tag
// always parse.
func number(s string) bignum.Number {
	return bignum.FromString(s)
}

// display renders a computed value, logging and counting NaN results.
func display(r *http.Request, f *format.Formatter, source string, x bignum.Number, o format.Options) string {
	if x.IsNaN() {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidValue, "source", source)
		metrics.RecordInvalidValue(source)
	}
	return f.Format(x, o)
}
