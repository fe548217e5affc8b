// Package units converts quantities between the fixed set of kitchen units.
//
// Every unit belongs to a measurement group (weight, volume or count) and
// carries a factor to the group's base unit. Conversion is only defined
// inside a group.
package units

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/FoodCost_Go/internal/domain"
)

// Unit names a unit of measure as it appears in payloads and storage.
type Unit string

// Group is the measurement type a unit belongs to.
type Group string

const (
	Pounds      Unit = "pounds"
	Ounces      Unit = "ounces"
	FluidOunces Unit = "fluid ounces"
	Milliliters Unit = "milliliters"
	Liters      Unit = "liters"
	Quarts      Unit = "quarts"
	Gallons     Unit = "gallons"
	Each        Unit = "each"
)

const (
	GroupWeight Group = "weight"
	GroupVolume Group = "volume"
	GroupCount  Group = "count"
)

// Default is used when a payload omits a unit.
const Default = Each

// Info describes a unit's group and its factor to the group base unit.
type Info struct {
	Unit   Unit    `json:"unit"`
	Group  Group   `json:"group"`
	Factor float64 `json:"factor"`
}

var table = map[Unit]Info{
	Pounds:      {Unit: Pounds, Group: GroupWeight, Factor: 16.0},
	Ounces:      {Unit: Ounces, Group: GroupWeight, Factor: 1.0},
	FluidOunces: {Unit: FluidOunces, Group: GroupVolume, Factor: 29.5735},
	Milliliters: {Unit: Milliliters, Group: GroupVolume, Factor: 1.0},
	Liters:      {Unit: Liters, Group: GroupVolume, Factor: 1000.0},
	Quarts:      {Unit: Quarts, Group: GroupVolume, Factor: 946.353},
	Gallons:     {Unit: Gallons, Group: GroupVolume, Factor: 3785.41},
	Each:        {Unit: Each, Group: GroupCount, Factor: 1.0},
}

// display order used by pickers
var ordered = []Unit{Pounds, FluidOunces, Ounces, Milliliters, Liters, Quarts, Gallons, Each}

var baseUnits = map[Group]Unit{
	GroupWeight: Ounces,
	GroupVolume: Milliliters,
	GroupCount:  Each,
}

// All returns every supported unit in display order.
func All() []Unit {
	out := make([]Unit, len(ordered))
	copy(out, ordered)
	return out
}

// Lookup returns the table entry for u.
func Lookup(u Unit) (Info, bool) {
	info, ok := table[u]
	return info, ok
}

// GroupOf returns the measurement group of u.
func GroupOf(u Unit) (Group, error) {
	info, ok := table[u]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedUnit, u)
	}
	return info.Group, nil
}

// BaseUnit returns the unit every member of g normalizes to.
func BaseUnit(g Group) (Unit, bool) {
	u, ok := baseUnits[g]
	return u, ok
}

// ByGroup lists the units of each group in display order.
func ByGroup() map[Group][]Unit {
	groups := make(map[Group][]Unit, len(baseUnits))
	for _, u := range ordered {
		g := table[u].Group
		groups[g] = append(groups[g], u)
	}
	return groups
}

// Parse matches raw against the supported units, ignoring case and
// surrounding whitespace.
func Parse(raw string) (Unit, error) {
	// a Caser is stateful, so each call gets its own
	candidate := Unit(cases.Fold().String(strings.TrimSpace(raw)))
	if _, ok := table[candidate]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedUnit, raw)
	}
	return candidate, nil
}

// ParseOrDefault is Parse with an empty input treated as Default.
func ParseOrDefault(raw string) (Unit, error) {
	if strings.TrimSpace(raw) == "" {
		return Default, nil
	}
	return Parse(raw)
}

// Convert expresses quantity, measured in from, in the unit to.
// The value is normalized to the group base unit and divided by the target
// factor; no rounding is applied.
func Convert(quantity float64, from, to Unit) (float64, error) {
	fromInfo, ok := table[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedUnit, from)
	}
	toInfo, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedUnit, to)
	}

	if fromInfo.Group != toInfo.Group {
		return 0, fmt.Errorf("%w: cannot convert %s to %s, units must be from the same measurement type",
			domain.ErrIncompatibleUnitGroup, from, to)
	}

	base := quantity * fromInfo.Factor
	return base / toInfo.Factor, nil
}
