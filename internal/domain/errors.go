package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Unit conversion errors
	ErrMsgUnsupportedUnit       = "unsupported unit"
	ErrMsgIncompatibleUnitGroup = "incompatible unit group"

	// Costing errors
	ErrMsgInvalidPrice    = "invalid price"
	ErrMsgInvalidYield    = "invalid yield percent"
	ErrMsgInvalidPortions = "invalid portions"
	ErrMsgInvalidQuantity = "invalid quantity"

	// Payload errors
	ErrMsgMalformedPayload = "malformed payload"

	// Lookup errors
	ErrMsgIngredientNotFound = "ingredient not found"
	ErrMsgRecipeNotFound     = "recipe not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Unit conversion errors
	ErrUnsupportedUnit       = errors.New(ErrMsgUnsupportedUnit)
	ErrIncompatibleUnitGroup = errors.New(ErrMsgIncompatibleUnitGroup)

	// Costing errors
	ErrInvalidPrice    = errors.New(ErrMsgInvalidPrice)
	ErrInvalidYield    = errors.New(ErrMsgInvalidYield)
	ErrInvalidPortions = errors.New(ErrMsgInvalidPortions)
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)

	// Payload errors
	ErrMalformedPayload = errors.New(ErrMsgMalformedPayload)

	// Lookup errors
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
