package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GeneratePlanID creates a human-readable, globally unique plan ID.
// Format: {slug}-{8charHexUUID}
//
// Example:
//   - Input: name="Iron Plates (early game)"
//   - Output: "iron-plates-early-game-a3f8e2b1"
//
// Names without any letters or digits produce "plan-{8charHexUUID}".
func GeneratePlanID(name string) string {
	slug := Slugify(name)
	if slug == "" {
		slug = "plan"
	}
	return slug + "-" + generateShortUUID()
}

// Slugify lower-cases a name and joins its alphanumeric runs with hyphens.
//   - "Iron Plates (early game)" -> "iron-plates-early-game"
//   - "  Motor__Line 2 " -> "motor-line-2"
func Slugify(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
