package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PriceValue is a price field that accepts either a JSON number (12.5) or a
// string ("$12.50"). It keeps the raw text; parsing happens in the services.
type PriceValue string

// PriceTypeError reports a price that is neither a number nor a string
type PriceTypeError struct {
	Raw string
}

func (e *PriceTypeError) Error() string {
	return fmt.Sprintf("ap_price must be a number or a string, got %s", e.Raw)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *PriceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return &PriceTypeError{Raw: string(data)}
	}
	*p = PriceValue(n.String())
	return nil
}
