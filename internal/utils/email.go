package utils

import "strings"

// NormalizeEmail lowercases and trims an email address. Emails are the
// identity key for booking lookups and are compared case-insensitively, so
// they are normalized once at write time.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
