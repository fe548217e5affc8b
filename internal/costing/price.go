package costing

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/osse101/FoodCost_Go/internal/domain"
)

// DefaultCurrency is used when no currency code is configured.
const DefaultCurrency = money.USD

var currencySymbols = []string{"$", "€", "£"}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// PriceFromString parses a purchase price such as "12.50" or "$12.50".
// One leading currency symbol and surrounding whitespace are ignored; anything
// else that is not a plain non-negative number is rejected.
func PriceFromString(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	for _, sym := range currencySymbols {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimSpace(strings.TrimPrefix(s, sym))
			break
		}
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", domain.ErrInvalidPrice)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPrice, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", domain.ErrInvalidPrice, raw)
	}

	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is out of range", domain.ErrInvalidPrice, raw)
	}
	return f, nil
}

// IsKnownCurrency reports whether code is an ISO currency code go-money knows.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// FormatCurrency renders value for display with the currency symbol and the
// currency's minor-unit precision, e.g. "$1.56" or "$1234.50". No thousands
// separator is written. The result is never parsed back.
func FormatCurrency(value float64, currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("%s%v", cur.Grapheme, value)
	}

	places := int32(cur.Fraction)
	d := decimal.NewFromFloat(value).Round(places)
	minor := d.Shift(places)
	if minor.Abs().LessThanOrEqual(maxMinorUnits) {
		return money.NewFormatter(cur.Fraction, cur.Decimal, "", cur.Grapheme, cur.Template).Format(minor.IntPart())
	}

	// Beyond int64 minor units: same layout, built from the decimal.
	amount := d.Abs().StringFixed(places)
	if cur.Decimal != "." {
		amount = strings.Replace(amount, ".", cur.Decimal, 1)
	}
	result := strings.Replace(cur.Template, "1", amount, 1)
	result = strings.Replace(result, "$", cur.Grapheme, 1)
	if d.IsNegative() {
		result = "-" + result
	}
	return result
}
