package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name             string
		input            CellValue
		ignoreWhitespace bool
		expected         CellValue
	}{
		{"float noise", FloatValue(0.1 + 0.2), false, FloatValue(0.3)},
		{"float distinct", FloatValue(1.5), false, FloatValue(1.5)},
		{"datetime noise", DateTimeValue(45000.50000000001), false, DateTimeValue(45000.5)},
		{"string kept", StringValue("  a \t b\n"), false, StringValue("  a \t b\n")},
		{"string collapsed", StringValue("  a \t b\n"), true, StringValue("a b")},
		{"blank string collapsed", StringValue(" \t "), true, StringValue("")},
		{"int", IntValue(42), true, IntValue(42)},
		{"bool", BoolValue(true), true, BoolValue(true)},
		{"empty", Empty(), true, Empty()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Normalize(tt.ignoreWhitespace))
		})
	}
}

func TestNormalizeDropsStrayFields(t *testing.T) {
	tests := []struct {
		input    CellValue
		expected CellValue
	}{
		{CellValue{Kind: KindInt, Int: 1, Str: "x"}, IntValue(1)},
		{CellValue{Kind: KindBool, Bool: true, Num: 2}, BoolValue(true)},
		{CellValue{Kind: KindString, Str: "a", Int: 7}, StringValue("a")},
		{CellValue{Kind: KindFloat, Num: 1.5, Bool: true}, FloatValue(1.5)},
		{CellValue{Kind: KindDateTime, Num: 2, Str: "d"}, DateTimeValue(2)},
		{CellValue{Str: "ghost"}, Empty()},
	}

	for _, tt := range tests {
		t.Run(tt.input.Kind.String(), func(t *testing.T) {
			got := tt.input.Normalize(false)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.Equal(tt.expected.Normalize(false)))
			assert.Equal(t, tt.expected.String(), got.String())
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	values := []CellValue{
		FloatValue(0.1 + 0.2),
		FloatValue(-123456.789012345678),
		FloatValue(1e-12),
		DateTimeValue(44927.999999999985),
		StringValue(" x  y\t\tz "),
		StringValue("a  b"),
		IntValue(-7),
		BoolValue(false),
		Empty(),
	}

	for _, v := range values {
		for _, w := range []bool{false, true} {
			once := v.Normalize(w)
			assert.Equal(t, once, once.Normalize(w), "value %#v ignoreWhitespace=%v", v, w)
		}
	}
}

func TestCellValueString(t *testing.T) {
	tests := []struct {
		input    CellValue
		expected string
	}{
		{StringValue("  hello "), "  hello "},
		{FloatValue(1), "1"},
		{FloatValue(0.1), "0.1"},
		{FloatValue(-2.5), "-2.5"},
		{FloatValue(1e21), "1000000000000000000000"},
		{IntValue(-100), "-100"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{DateTimeValue(45292.25), "45292.25"},
		{Empty(), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.input.String(), "kind %s", tt.input.Kind)
	}
}

func TestEqualDistinguishesVariants(t *testing.T) {
	assert.True(t, FloatValue(1).Equal(FloatValue(1)))
	assert.False(t, FloatValue(1).Equal(IntValue(1)))
	assert.False(t, FloatValue(1).Equal(DateTimeValue(1)))
	assert.False(t, StringValue("").Equal(Empty()))
	assert.True(t, CellValue{}.Equal(Empty()))
}

func TestCellValueMarshalJSON(t *testing.T) {
	row := Row{StringValue("a"), FloatValue(1.5), IntValue(2), BoolValue(true), DateTimeValue(45000), Empty()}

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `["a", 1.5, 2, true, 45000, null]`, string(data))
}

func TestCellValueUnmarshalJSON(t *testing.T) {
	var row Row
	require.NoError(t, json.Unmarshal([]byte(`["a", 1.5, 2, true, null, "4"]`), &row))
	assert.Equal(t, Row{StringValue("a"), FloatValue(1.5), IntValue(2), BoolValue(true), Empty(), StringValue("4")}, row)

	var v CellValue
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &v))
}

func TestRowPad(t *testing.T) {
	row := Row{IntValue(1), IntValue(2)}

	padded := row.Pad(4)
	assert.Equal(t, Row{IntValue(1), IntValue(2), Empty(), Empty()}, padded)

	truncated := row.Pad(1)
	assert.Equal(t, Row{IntValue(1)}, truncated)

	padded[0] = IntValue(9)
	assert.Equal(t, IntValue(1), row[0], "Pad must copy")
}

func TestWorksheetMaxCols(t *testing.T) {
	assert.Equal(t, 0, Worksheet{}.MaxCols())
	assert.Equal(t, 3, Worksheet{{Empty()}, {Empty(), Empty(), Empty()}, {}}.MaxCols())
}
