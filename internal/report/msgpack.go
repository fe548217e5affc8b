package report

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack writes the sheet to w in MessagePack.
func EncodeMsgpack(w io.Writer, sheet *CostSheet) error {
	if err := msgpack.NewEncoder(w).Encode(sheet); err != nil {
		return fmt.Errorf("encode cost sheet: %w", err)
	}
	return nil
}

// DecodeMsgpack reads a sheet written by EncodeMsgpack.
func DecodeMsgpack(r io.Reader) (*CostSheet, error) {
	var sheet CostSheet
	if err := msgpack.NewDecoder(r).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("decode cost sheet: %w", err)
	}
	return &sheet, nil
}
