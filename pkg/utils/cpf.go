package utils

import (
	"regexp"

	"promo-api/internal/domain"
)

var (
	// Regex to remove non-digit characters
	digitsOnlyRegex = regexp.MustCompile(`[^0-9]`)
)

// StripNonDigits removes every non-digit character from the string
func StripNonDigits(s string) string {
	return digitsOnlyRegex.ReplaceAllString(s, "")
}

// NormalizeCPF validates a Brazilian CPF and returns it as 11 bare digits.
// Formatting characters (dots, hyphen, spaces) are stripped before
// validation. The two check digits are verified with the standard
// weighted-sum modulo-11 algorithm.
func NormalizeCPF(cpf string) (string, error) {
	normalized := digitsOnlyRegex.ReplaceAllString(cpf, "")

	if len(normalized) != 11 {
		return "", domain.ErrCPFInvalidFormat
	}

	// CPFs made of a single repeated digit pass the checksum but are
	// reserved as invalid.
	if allSameDigit(normalized) {
		return "", domain.ErrCPFInvalidChecksum
	}

	if checkDigit(normalized[:9]) != int(normalized[9]-'0') {
		return "", domain.ErrCPFInvalidChecksum
	}
	if checkDigit(normalized[:10]) != int(normalized[10]-'0') {
		return "", domain.ErrCPFInvalidChecksum
	}

	return normalized, nil
}

// IsValidCPF reports whether the given string is a valid CPF
func IsValidCPF(cpf string) bool {
	_, err := NormalizeCPF(cpf)
	return err == nil
}

// checkDigit computes a CPF check digit over a 9 or 10 digit prefix.
// Each digit is weighted descending from len+1 down to 2; the digit is
// 0 when the sum modulo 11 is below 2, otherwise 11 minus the remainder.
func checkDigit(prefix string) int {
	sum := 0
	for i, c := range prefix {
		sum += int(c-'0') * (len(prefix) + 1 - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
