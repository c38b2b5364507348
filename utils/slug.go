package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify converts a title to a URL-friendly slug:
// "Test #1: Special Characters!" -> "test-1-special-characters".
func Slugify(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "-")
}

// SlugSuffix returns a short random suffix for slug collision fallback.
func SlugSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
}
