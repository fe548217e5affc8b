package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/FoodCost_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	IngredientsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameIngredientsSaved,
			Help:      HelpTextIngredientsSaved,
		},
	)

	IngredientSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameIngredientSearches,
			Help:      HelpTextIngredientSearches,
		},
	)

	RecipesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRecipesSaved,
			Help:      HelpTextRecipesSaved,
		},
	)

	RecipeItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRecipeItems,
			Help:      HelpTextRecipeItems,
		},
	)

	CostingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCostingErrors,
			Help:      HelpTextCostingErrors,
		},
		[]string{LabelReason},
	)
)

// ReasonFor maps an error to its costing_errors_total reason label
func ReasonFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedUnit):
		return ReasonUnsupportedUnit
	case errors.Is(err, domain.ErrIncompatibleUnitGroup):
		return ReasonIncompatibleUnit
	case errors.Is(err, domain.ErrInvalidPrice):
		return ReasonInvalidPrice
	case errors.Is(err, domain.ErrInvalidYield):
		return ReasonInvalidYield
	case errors.Is(err, domain.ErrInvalidPortions):
		return ReasonInvalidPortions
	case errors.Is(err, domain.ErrInvalidQuantity):
		return ReasonInvalidQuantity
	case errors.Is(err, domain.ErrMalformedPayload):
		return ReasonMalformedPayload
	default:
		return ReasonStore
	}
}

// RecordCostingError increments CostingErrors for err
func RecordCostingError(err error) {
	CostingErrors.WithLabelValues(ReasonFor(err)).Inc()
}
