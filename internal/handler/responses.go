package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondServiceError logs err and maps it to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "error", err, "code", code)
	}
	respondError(w, status, code, message)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP responses.
// Caller errors carry their full message since it only describes the
// submitted payload; anything else gets a generic message.
func mapServiceErrorToUserMessage(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrCodeInternal, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrCodeInternal, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrCodeNotFound, ErrMsgRecipeNotFound
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusNotFound, ErrCodeNotFound, ErrMsgIngredientNotFound
	case errors.Is(err, domain.ErrUnsupportedUnit):
		return http.StatusBadRequest, ErrCodeUnsupportedUnit, err.Error()
	case errors.Is(err, domain.ErrIncompatibleUnitGroup):
		return http.StatusBadRequest, ErrCodeIncompatibleUnitGroup, err.Error()
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, ErrCodeInvalidPrice, err.Error()
	case errors.Is(err, domain.ErrInvalidYield):
		return http.StatusBadRequest, ErrCodeInvalidYield, err.Error()
	case errors.Is(err, domain.ErrInvalidPortions):
		return http.StatusBadRequest, ErrCodeInvalidPortions, err.Error()
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrCodeInvalidQuantity, err.Error()
	case errors.Is(err, domain.ErrMalformedPayload):
		return http.StatusBadRequest, ErrCodeMalformedPayload, err.Error()
	}

	return http.StatusInternalServerError, ErrCodeInternal, ErrMsgGenericServerError
}
