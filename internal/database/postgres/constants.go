package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Ingredient Operations
const (
	ErrMsgFailedToFindIngredient    = "failed to find ingredient"
	ErrMsgFailedToUpsertIngredient  = "failed to upsert ingredient"
	ErrMsgFailedToInsertIngredient  = "failed to insert ingredient"
	ErrMsgFailedToSearchIngredients = "failed to search ingredients"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToInsertRecipe     = "failed to insert recipe"
	ErrMsgFailedToInsertRecipeItem = "failed to insert recipe item"
	ErrMsgFailedToGetRecipe        = "failed to get recipe"
	ErrMsgFailedToGetRecipeItems   = "failed to get recipe items"
)
