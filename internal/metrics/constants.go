package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this service exports
const Namespace = "foodcost"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameIngredientsSaved   = "ingredients_saved_total"
	MetricNameIngredientSearches = "ingredient_searches_total"
	MetricNameRecipesSaved       = "recipes_saved_total"
	MetricNameRecipeItems        = "recipe_items_total"
	MetricNameCostingErrors      = "costing_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextIngredientsSaved   = "Total number of ingredient saves (inserts and updates)"
	HelpTextIngredientSearches = "Total number of ingredient searches that reached the store"
	HelpTextRecipesSaved       = "Total number of recipes saved"
	HelpTextRecipeItems        = "Total number of recipe line items saved"
	HelpTextCostingErrors      = "Total number of rejected costing requests by reason"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
)

// Costing error reasons
const (
	ReasonUnsupportedUnit  = "unsupported_unit"
	ReasonIncompatibleUnit = "incompatible_unit_group"
	ReasonInvalidPrice     = "invalid_price"
	ReasonInvalidYield     = "invalid_yield"
	ReasonInvalidPortions  = "invalid_portions"
	ReasonInvalidQuantity  = "invalid_quantity"
	ReasonMalformedPayload = "malformed_payload"
	ReasonStore            = "store"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
