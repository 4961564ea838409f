package table

import (
	"strings"

	"stock-sync/core/utils"
)

// Kind identifies the scalar type held by a Value.
type Kind uint8

const (
	// KindMissing marks an empty cell.
	KindMissing Kind = iota
	// KindString marks a text cell.
	KindString
	// KindNumber marks a numeric cell.
	KindNumber
)

// Value is a typed spreadsheet cell.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Missing returns the empty-cell marker.
func Missing() Value {
	return Value{}
}

// String returns a text value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Of converts a Go scalar into a Value. nil becomes Missing, numeric types
// become Number and everything else is rendered as a String.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Missing()
	case Value:
		return x
	case string:
		return String(x)
	case int, int64, int32, uint, uint64, uint32, float32, float64:
		if f, ok := utils.ToFloat(x); ok {
			return Number(f)
		}
		return Missing()
	default:
		return String(utils.ToString(x))
	}
}

// Kind returns the scalar type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether v is the empty-cell marker.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Float returns the numeric payload. Strings holding a number are parsed.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		return utils.ToFloat(v.str)
	default:
		return 0, false
	}
}

// Text renders the value as text: strings verbatim, numbers in shortest
// decimal form, Missing as "".
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return utils.FormatFloat(v.num)
	default:
		return ""
	}
}

// Trimmed is Text with surrounding whitespace removed.
func (v Value) Trimmed() string {
	return strings.TrimSpace(v.Text())
}

// IsBlank reports whether v is Missing or renders to whitespace only.
func (v Value) IsBlank() bool {
	return v.kind == KindMissing || utils.IsBlank(v.Text())
}

// Equal reports whether both values have the same kind and payload.
// Missing equals Missing.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	default:
		return true
	}
}

// Interface returns the value as a Go scalar suitable for spreadsheet
// writers and JSON encoding: nil, string or float64.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	default:
		return nil
	}
}

// key is an unambiguous encoding used for hashing rows and join keys.
func (v Value) key() string {
	switch v.kind {
	case KindString:
		return "s" + v.str
	case KindNumber:
		return "n" + utils.FormatFloat(v.num)
	default:
		return "m"
	}
}

// Key returns an encoding of v that is equal for two values iff Equal
// holds between them.
func (v Value) Key() string {
	return v.key()
}

// MarshalJSON encodes the value as null, a string or a number.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return jsonString(v.str), nil
	case KindNumber:
		return []byte(utils.FormatFloat(v.num)), nil
	default:
		return []byte("null"), nil
	}
}
