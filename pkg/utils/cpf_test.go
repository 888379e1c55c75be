package utils

import (
	"errors"
	"strings"
	"testing"

	"promo-api/internal/domain"
)

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  error
	}{
		{
			name:     "valid unformatted CPF",
			input:    "52998224725",
			expected: "52998224725",
		},
		{
			name:     "valid formatted CPF",
			input:    "529.982.247-25",
			expected: "52998224725",
		},
		{
			name:     "valid CPF with spaces",
			input:    " 529 982 247 25 ",
			expected: "52998224725",
		},
		{
			name:    "nine digits only",
			input:   "123456789",
			wantErr: domain.ErrCPFInvalidFormat,
		},
		{
			name:    "twelve digits",
			input:   "529982247251",
			wantErr: domain.ErrCPFInvalidFormat,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: domain.ErrCPFInvalidFormat,
		},
		{
			name:    "letters only",
			input:   "abcdefghijk",
			wantErr: domain.ErrCPFInvalidFormat,
		},
		{
			name:    "all zeros",
			input:   "00000000000",
			wantErr: domain.ErrCPFInvalidChecksum,
		},
		{
			name:    "all ones",
			input:   "11111111111",
			wantErr: domain.ErrCPFInvalidChecksum,
		},
		{
			name:    "all nines",
			input:   "99999999999",
			wantErr: domain.ErrCPFInvalidChecksum,
		},
		{
			name:    "wrong first check digit",
			input:   "52998224715",
			wantErr: domain.ErrCPFInvalidChecksum,
		},
		{
			name:    "wrong second check digit",
			input:   "52998224724",
			wantErr: domain.ErrCPFInvalidChecksum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCPF(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NormalizeCPF(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("NormalizeCPF(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.expected {
				t.Errorf("NormalizeCPF(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAllRepeatedDigitsAreInvalid(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), 11)
		if _, err := NormalizeCPF(cpf); !errors.Is(err, domain.ErrCPFInvalidChecksum) {
			t.Errorf("NormalizeCPF(%q) error = %v, want ErrCPFInvalidChecksum", cpf, err)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	if !IsValidCPF("529.982.247-25") {
		t.Error("expected formatted valid CPF to be accepted")
	}
	if IsValidCPF("11111111111") {
		t.Error("expected repeated-digit CPF to be rejected")
	}
}
