package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FoodCost_Go/internal/units"
	"github.com/osse101/FoodCost_Go/mocks"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Store reachable", func(t *testing.T) {
		store := mocks.NewMockPinger(t)
		store.EXPECT().Ping(mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("Store unreachable", func(t *testing.T) {
		store := mocks.NewMockPinger(t)
		store.EXPECT().Ping(mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), StatusUnavailable)
		assert.Contains(t, w.Body.String(), ErrMsgStoreUnavailable)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("foodcost", "1.2.3").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "foodcost", info.Service)
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestHandleListUnits(t *testing.T) {
	w := httptest.NewRecorder()
	HandleListUnits().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/units", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp UnitsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, units.All(), resp.Units)
	assert.Equal(t, []units.Unit{units.Pounds, units.Ounces}, resp.Groups[units.GroupWeight])
	assert.Equal(t, units.Milliliters, resp.Base[units.GroupVolume])
}
