package utils

import "strings"

// NormalizeStopName trims and collapses inner whitespace so "City  Center"
// and "City Center " address the same stop row.
func NormalizeStopName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EmailsEqual compares addresses the way the login flow does.
func EmailsEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
