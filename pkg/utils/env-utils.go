package utils

import (
	"regexp"
	"strings"
)

// GenerateEnvVarName generates a standardized environment variable name from a given string.
// It converts the input to uppercase and replaces any non-alphanumeric characters with underscores.
// Leading and trailing underscores are removed.
func GenerateEnvVarName(input string) string {
	normalized := strings.ToUpper(input)

	reg := regexp.MustCompile(`[^A-Z0-9]+`)
	normalized = reg.ReplaceAllString(normalized, "_")

	return strings.Trim(normalized, "_")
}

// GenerateNotificationRecipientsEnvVarName generates the environment variable name
// that overrides the notification recipient list for a role.
// Format: NOTIFICATION_RECIPIENTS_FOR_{NORMALIZED_ROLE}
func GenerateNotificationRecipientsEnvVarName(role string) string {
	return "NOTIFICATION_RECIPIENTS_FOR_" + GenerateEnvVarName(role)
}
