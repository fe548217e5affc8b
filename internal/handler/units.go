package handler

import (
	"net/http"

	"github.com/osse101/FoodCost_Go/internal/units"
)

// UnitsResponse lists the supported units in display order and by group
type UnitsResponse struct {
	Units  []units.Unit                 `json:"units"`
	Groups map[units.Group][]units.Unit `json:"groups"`
	Base   map[units.Group]units.Unit   `json:"base_units"`
}

// HandleListUnits returns the supported units
// @Summary List units
// @Description Units accepted by ep_unit and ap_unit. Conversion only works within a group.
// @Tags units
// @Produce json
// @Success 200 {object} UnitsResponse
// @Router /api/units [get]
func HandleListUnits() http.HandlerFunc {
	groups := units.ByGroup()
	base := make(map[units.Group]units.Unit, len(groups))
	for g := range groups {
		if u, ok := units.BaseUnit(g); ok {
			base[g] = u
		}
	}
	resp := UnitsResponse{Units: units.All(), Groups: groups, Base: base}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resp)
	}
}
