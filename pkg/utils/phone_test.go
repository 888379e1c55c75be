package utils

import (
	"testing"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		shouldError bool
	}{
		{
			name:     "formatted mobile",
			input:    "(92) 99999-0000",
			expected: "92999990000",
		},
		{
			name:     "unformatted mobile",
			input:    "92999990000",
			expected: "92999990000",
		},
		{
			name:     "landline",
			input:    "(92) 3622-0000",
			expected: "9236220000",
		},
		{
			name:     "international format +55",
			input:    "+55 92 99999-0000",
			expected: "92999990000",
		},
		{
			name:     "with dots",
			input:    "92.99999.0000",
			expected: "92999990000",
		},
		{
			name:        "too short",
			input:       "999990000",
			shouldError: true,
		},
		{
			name:        "too long",
			input:       "929999900001",
			shouldError: true,
		},
		{
			name:        "empty",
			input:       "",
			shouldError: true,
		},
		{
			name:        "ddd starting with zero",
			input:       "02999990000",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tt.input)

			if tt.shouldError {
				if err == nil {
					t.Errorf("NormalizePhoneNumber(%q) expected error, got %q", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Errorf("NormalizePhoneNumber(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.expected {
				t.Errorf("NormalizePhoneNumber(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatPhoneNumberForDisplay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"92999990000", "(92) 99999-0000"},
		{"9236220000", "(92) 3622-0000"},
		{"12345", "12345"},
	}

	for _, tt := range tests {
		if got := FormatPhoneNumberForDisplay(tt.input); got != tt.expected {
			t.Errorf("FormatPhoneNumberForDisplay(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
