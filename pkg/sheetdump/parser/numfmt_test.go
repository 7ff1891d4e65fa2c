package parser

import "testing"

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"dd/mm/yyyy hh:mm", true},
		{"[h]:mm:ss", true},
		{"[$-409]mmmm d, yyyy", true},
		{"0.00", false},
		{"#,##0", false},
		{"0.00E+00", false},
		{`0 "days"`, false},
		{"[Red]0.00", false},
		{`#,##0\s`, false},
		{"@", false},
		{"0.00;[Red]-0.00", false},
	}

	for _, tt := range tests {
		if got := isDateFormatCode(tt.code); got != tt.expected {
			t.Errorf("isDateFormatCode(%q) = %v, expected %v", tt.code, got, tt.expected)
		}
	}
}
