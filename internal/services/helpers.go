package services

import "strings"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
