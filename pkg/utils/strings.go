package utils

import "strings"

// RemoveEmptyStrings trims every element and drops the blank ones.
func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}

	return result
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
