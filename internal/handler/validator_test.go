package handler

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_NotBlank(t *testing.T) {
	type input struct {
		Name string `json:"name" validate:"notblank"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain", "Onion", false},
		{"padded", "  Onion ", false},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"tabs and newlines", "\t\n", true},
	}

	v := GetValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(input{Name: tt.value})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Must not be blank", FormatValidationError(err)["name"])
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("Not a validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", errs["error"])
	})

	t.Run("Nested fields use JSON paths", func(t *testing.T) {
		req := SaveRecipeRequest{
			RecipeName: "Soup",
			Items:      []RecipeItemRequest{{Ingredient: "Onion"}},
		}
		errs := FormatValidationError(GetValidator().ValidateStruct(req))

		assert.Equal(t, "This field is required", errs["portions"])
		assert.Equal(t, "This field is required", errs["items[0].ep_quantity"])
		assert.Equal(t, "This field is required", errs["items[0].ap_price"])
		assert.NotContains(t, errs, "recipe_name")
	})
}

func TestPriceValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    PriceValue
		wantErr bool
	}{
		{"number", `12.5`, "12.5", false},
		{"integer", `3`, "3", false},
		{"string", `"$12.50"`, "$12.50", false},
		{"null", `null`, "", false},
		{"bool", `true`, "", true},
		{"object", `{"amount":1}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Price PriceValue `json:"ap_price"`
			}
			err := json.Unmarshal([]byte(`{"ap_price":`+tt.raw+`}`), &body)
			if tt.wantErr {
				var priceErr *PriceTypeError
				assert.ErrorAs(t, err, &priceErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, body.Price)
		})
	}
}
