// Package validation provides input validation for user-supplied text
// before it reaches the conversation router or the remote resolver.
package validation

import (
	"fmt"
	"strings"
)

// Limits for free-text chat input and medicine-name queries.
const (
	maxMessageLength = 500
	maxNameLength    = 100
)

// dangerousPatterns are substrings that have no business in a medicine
// query. Substring matching is well faster than regex for these.
var dangerousPatterns = []string{
	"<script", "</script>", "javascript:", "onerror=", "onload=",
	"eval(", "expression(",
	"' or ", "\" or ", "union select", "drop table", "delete from",
	"../", "..\\", "file://",
	"${", "$(",
}

// ValidateMessage checks a free-text chat message.
func ValidateMessage(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fmt.Errorf("message cannot be empty")
	}
	if len(trimmed) > maxMessageLength {
		return fmt.Errorf("message too long: maximum %d characters", maxMessageLength)
	}
	return checkDangerous(trimmed)
}

// ValidateMedicineName checks a medicine-name query.
func ValidateMedicineName(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fmt.Errorf("medicine name cannot be empty")
	}
	if len(trimmed) > maxNameLength {
		return fmt.Errorf("medicine name too long: maximum %d characters", maxNameLength)
	}
	return checkDangerous(trimmed)
}

func checkDangerous(input string) error {
	lowered := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}
	return nil
}
