package utils

import (
	"regexp"
	"strings"
)

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// NormalizeMobile strips spaces, dashes, dots and parentheses from a phone number
func NormalizeMobile(mobile string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
	return replacer.Replace(strings.TrimSpace(mobile))
}

// ValidateMobile normalizes mobile and reports whether it is a valid E.164 number
func ValidateMobile(mobile string) (string, bool) {
	normalized := NormalizeMobile(mobile)
	return normalized, e164Pattern.MatchString(normalized)
}
