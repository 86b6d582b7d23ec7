// Package models defines data structures for worksheet comparison.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CellKind identifies which variant a CellValue holds.
type CellKind uint8

const (
	// KindEmpty marks a blank or absent cell. It is the zero value.
	KindEmpty CellKind = iota
	// KindString holds UTF-8 text.
	KindString
	// KindFloat holds a 64-bit float.
	KindFloat
	// KindInt holds a 64-bit signed integer.
	KindInt
	// KindBool holds a boolean.
	KindBool
	// KindDateTime holds a date-time as the workbook's float day-count serial.
	KindDateTime
)

var kindNames = [...]string{
	KindEmpty:    "empty",
	KindString:   "string",
	KindFloat:    "float",
	KindInt:      "int",
	KindBool:     "bool",
	KindDateTime: "datetime",
}

func (k CellKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "CellKind(" + strconv.Itoa(int(k)) + ")"
}

// CellValue is a typed scalar cell value. Only the payload field matching
// Kind is meaningful; the others stay zero so that == compares variants.
type CellValue struct {
	Kind CellKind
	Str  string
	Num  float64 // Float and DateTime payload
	Int  int64
	Bool bool
}

// Empty returns the empty cell value.
func Empty() CellValue { return CellValue{} }

// StringValue returns a text cell value.
func StringValue(s string) CellValue { return CellValue{Kind: KindString, Str: s} }

// FloatValue returns a float cell value.
func FloatValue(f float64) CellValue { return CellValue{Kind: KindFloat, Num: f} }

// IntValue returns an integer cell value.
func IntValue(i int64) CellValue { return CellValue{Kind: KindInt, Int: i} }

// BoolValue returns a boolean cell value.
func BoolValue(b bool) CellValue { return CellValue{Kind: KindBool, Bool: b} }

// DateTimeValue returns a date-time cell value from a day-count serial.
func DateTimeValue(serial float64) CellValue { return CellValue{Kind: KindDateTime, Num: serial} }

// IsEmpty reports whether v is the empty variant.
func (v CellValue) IsEmpty() bool { return v.Kind == KindEmpty }

// Normalize returns the comparison form of v.
// Floats and date-times are rounded to 10 decimal places; strings have
// whitespace runs collapsed to a single space (and trimmed) when
// ignoreWhitespace is set. Other variants keep their value. The result
// only carries the payload field of its kind, so values built by hand with
// stray fields compare like their constructor-built equivalents.
func (v CellValue) Normalize(ignoreWhitespace bool) CellValue {
	switch v.Kind {
	case KindFloat, KindDateTime:
		return CellValue{Kind: v.Kind, Num: roundPrecision(v.Num)}
	case KindString:
		if ignoreWhitespace {
			return StringValue(strings.Join(strings.Fields(v.Str), " "))
		}
		return StringValue(v.Str)
	case KindInt:
		return IntValue(v.Int)
	case KindBool:
		return BoolValue(v.Bool)
	case KindEmpty:
		return Empty()
	}
	return v
}

func roundPrecision(f float64) float64 {
	return math.Round(f*1e10) / 1e10
}

// Equal reports whether v and other hold the same variant and payload.
func (v CellValue) Equal(other CellValue) bool {
	return v == other
}

// String returns the display form of v. Numbers use their shortest
// decimal representation without an exponent.
func (v CellValue) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindFloat, KindDateTime:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// MarshalJSON encodes v as its natural JSON scalar; Empty becomes null.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindFloat, KindDateTime:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return json.Marshal(v.String())
		}
		return json.Marshal(v.Num)
	case KindInt:
		return json.Marshal(v.Int)
	case KindBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar. Integral number literals become Int,
// other numbers Float; date-times cannot be told apart from floats and
// decode as Float.
func (v *CellValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Empty()
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*v = BoolValue(data[0] == 't')
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	default:
		if i, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			*v = IntValue(i)
			return nil
		}
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid cell value %s", data)
		}
		*v = FloatValue(f)
	}
	return nil
}
