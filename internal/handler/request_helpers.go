package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
//
// Example usage:
//
//	var req SaveIngredientRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Save ingredient"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrCodeMalformedPayload, decodeErrorMessage(err))
		return fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Code:   ErrCodeMalformedPayload,
			Fields: FormatValidationError(err),
		})
		return fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}

	return nil
}

// decodeErrorMessage names the offending field for type mismatches
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s: %s must be a %s", ErrMsgInvalidRequest, typeErr.Field, typeErr.Type.Kind())
	}
	var priceErr *PriceTypeError
	if errors.As(err, &priceErr) {
		return fmt.Sprintf("%s: %s", ErrMsgInvalidRequest, priceErr.Error())
	}
	if errors.Is(err, io.EOF) {
		return fmt.Sprintf("%s: empty body", ErrMsgInvalidRequest)
	}
	return ErrMsgInvalidRequest
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetIDParam parses a positive integer route parameter. On failure it writes
// a 400 response and returns false.
func GetIDParam(r *http.Request, w http.ResponseWriter, paramName string) (int64, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid id parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, ErrCodeMalformedPayload, ErrMsgInvalidRecipeID)
		return 0, false
	}
	return id, true
}
