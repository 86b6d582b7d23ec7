package parser

import "testing"

func TestIsDateNumFmt(t *testing.T) {
	tests := []struct {
		id       int
		expected bool
	}{
		{0, false},
		{2, false},
		{14, true},
		{22, true},
		{45, true},
		{49, false},
		{57, true},
		{164, false},
	}

	for _, tt := range tests {
		if result := isDateNumFmt(tt.id); result != tt.expected {
			t.Errorf("isDateNumFmt(%d) = %v, expected %v", tt.id, result, tt.expected)
		}
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"hh:mm:ss", true},
		{"[h]:mm", true},
		{"[ss]", true},
		{"d-mmm", true},
		{"General", false},
		{"0.00", false},
		{"#,##0.00;[Red]-#,##0.00", false},
		{"0.00E+00", false},
		{`"days"0`, false},
		{`0\d`, false},
		{"[$-409]0.00", false},
		{"[$-409]mmmm d, yyyy", true},
		{"@", false},
	}

	for _, tt := range tests {
		if result := isDateFormatCode(tt.code); result != tt.expected {
			t.Errorf("isDateFormatCode(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}
