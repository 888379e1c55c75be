package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// DDD (two digits) followed by an 8 or 9 digit subscriber number
	brPhoneRegex = regexp.MustCompile(`^[1-9][0-9][0-9]{8,9}$`)
)

// NormalizePhoneNumber normalizes a Brazilian phone number by removing all
// formatting characters and the optional +55 country code. The result is
// DDD plus subscriber number, 10 or 11 digits.
func NormalizePhoneNumber(phone string) (string, error) {
	if phone == "" {
		return "", errors.New("phone number cannot be empty")
	}

	normalized := digitsOnlyRegex.ReplaceAllString(phone, "")

	// Handle international format (+55)
	if strings.HasPrefix(normalized, "55") && len(normalized) >= 12 {
		normalized = normalized[2:]
	}

	if !brPhoneRegex.MatchString(normalized) {
		return "", errors.New("invalid Brazilian phone number format")
	}

	return normalized, nil
}

// FormatPhoneNumberForDisplay formats a normalized phone number for display
// Example: "92999990000" -> "(92) 99999-0000"
func FormatPhoneNumberForDisplay(phone string) string {
	switch len(phone) {
	case 11:
		return "(" + phone[:2] + ") " + phone[2:7] + "-" + phone[7:]
	case 10:
		return "(" + phone[:2] + ") " + phone[2:6] + "-" + phone[6:]
	default:
		return phone
	}
}
