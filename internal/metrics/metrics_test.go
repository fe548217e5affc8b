package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/FoodCost_Go/internal/domain"
)

// value reads the current value of a counter or gauge
func value(c prometheus.Metric) float64 {
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		return -1
	}
	if m.Counter != nil {
		return m.GetCounter().GetValue()
	}
	return m.GetGauge().GetValue()
}

func TestReasonFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: cups", domain.ErrUnsupportedUnit), ReasonUnsupportedUnit},
		{domain.ErrIncompatibleUnitGroup, ReasonIncompatibleUnit},
		{domain.ErrInvalidPrice, ReasonInvalidPrice},
		{domain.ErrInvalidYield, ReasonInvalidYield},
		{domain.ErrInvalidPortions, ReasonInvalidPortions},
		{domain.ErrInvalidQuantity, ReasonInvalidQuantity},
		{domain.ErrMalformedPayload, ReasonMalformedPayload},
		{fmt.Errorf("connection refused"), ReasonStore},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ReasonFor(tt.err))
		})
	}
}

func TestRecordCostingError(t *testing.T) {
	before := value(CostingErrors.WithLabelValues(ReasonInvalidYield))
	RecordCostingError(domain.ErrInvalidYield)
	assert.Equal(t, before+1, value(CostingErrors.WithLabelValues(ReasonInvalidYield)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/recipes/{id}", "404")
	before := value(counter)

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, before+2, value(counter))
	assert.Zero(t, value(HTTPRequestsInFlight))
}
