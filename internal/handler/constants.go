package handler

// Generic HTTP error messages for client responses.
// Store and system failures never expose internal details.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRecipeID       = "Invalid recipe id"
	ErrMsgRecipeNotFound        = "Recipe not found"
	ErrMsgIngredientNotFound    = "Ingredient not found"
	ErrMsgStoreUnavailable      = "database connection failed"
)

// Error codes returned alongside the message so clients can branch on them
const (
	ErrCodeUnsupportedUnit       = "unsupported_unit"
	ErrCodeIncompatibleUnitGroup = "incompatible_unit_group"
	ErrCodeInvalidPrice          = "invalid_price"
	ErrCodeInvalidYield          = "invalid_yield"
	ErrCodeInvalidPortions       = "invalid_portions"
	ErrCodeInvalidQuantity       = "invalid_quantity"
	ErrCodeMalformedPayload      = "malformed_payload"
	ErrCodeNotFound              = "not_found"
	ErrCodeInternal              = "internal"
)

// Success messages for API responses
const (
	MsgIngredientSaved = "Ingredient saved."
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Query parameters
const (
	QueryParamQuery = "query"
	URLParamID      = "id"
)
