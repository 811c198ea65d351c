// Package models defines data structures for sheet inspection.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CellKind identifies the variant held by a CellValue.
type CellKind int

const (
	// KindEmpty marks a cell with no value. Host empty strings and
	// missing cells both normalize to this kind.
	KindEmpty CellKind = iota
	// KindText marks a text cell.
	KindText
	// KindNumber marks a numeric cell.
	KindNumber
	// KindBool marks a boolean cell. A false value is still a value;
	// it never counts as empty.
	KindBool
)

// CellValue is a tagged variant holding one of: empty, text, number,
// or boolean. Only the field matching Kind is meaningful.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

// Empty returns the empty cell value.
func Empty() CellValue {
	return CellValue{Kind: KindEmpty}
}

// Text returns a text cell value.
func Text(s string) CellValue {
	return CellValue{Kind: KindText, Text: s}
}

// Number returns a numeric cell value.
func Number(f float64) CellValue {
	return CellValue{Kind: KindNumber, Number: f}
}

// Bool returns a boolean cell value.
func Bool(b bool) CellValue {
	return CellValue{Kind: KindBool, Bool: b}
}

// IsEmpty reports whether the cell holds no value. Numeric zero and
// boolean false are values, not empty.
func (v CellValue) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// Native returns the value as the corresponding Go type: nil, string,
// float64, or bool.
func (v CellValue) Native() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number
	case KindBool:
		return v.Bool
	default:
		return nil
	}
}

// String renders the value for human-facing output. Empty cells render
// as the empty string.
func (v CellValue) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// cellJSON is the wire form of a CellValue. The tag preserves the
// kind so decoding reconstructs the exact variant.
type cellJSON struct {
	T string          `json:"t"`
	V json.RawMessage `json:"v,omitempty"`
}

const (
	tagEmpty  = "empty"
	tagText   = "text"
	tagNumber = "number"
	tagBool   = "bool"
)

// MarshalJSON encodes the cell as a tagged object, e.g.
// {"t":"number","v":3} or {"t":"empty"}.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindEmpty:
		return json.Marshal(cellJSON{T: tagEmpty})
	case KindText:
		raw, err := json.Marshal(v.Text)
		if err != nil {
			return nil, err
		}
		return json.Marshal(cellJSON{T: tagText, V: raw})
	case KindNumber:
		raw, err := json.Marshal(v.Number)
		if err != nil {
			return nil, err
		}
		return json.Marshal(cellJSON{T: tagNumber, V: raw})
	case KindBool:
		raw, err := json.Marshal(v.Bool)
		if err != nil {
			return nil, err
		}
		return json.Marshal(cellJSON{T: tagBool, V: raw})
	default:
		return nil, fmt.Errorf("unknown cell kind %d", v.Kind)
	}
}

// UnmarshalJSON decodes a tagged cell object back into its variant.
func (v *CellValue) UnmarshalJSON(data []byte) error {
	var c cellJSON
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	switch c.T {
	case tagEmpty:
		*v = Empty()
		return nil
	case tagText:
		var s string
		if err := json.Unmarshal(c.V, &s); err != nil {
			return fmt.Errorf("text cell: %w", err)
		}
		*v = Text(s)
		return nil
	case tagNumber:
		var f float64
		if err := json.Unmarshal(c.V, &f); err != nil {
			return fmt.Errorf("number cell: %w", err)
		}
		*v = Number(f)
		return nil
	case tagBool:
		var b bool
		if err := json.Unmarshal(c.V, &b); err != nil {
			return fmt.Errorf("bool cell: %w", err)
		}
		*v = Bool(b)
		return nil
	default:
		return fmt.Errorf("unknown cell tag %q", c.T)
	}
}
