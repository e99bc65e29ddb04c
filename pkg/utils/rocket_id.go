package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateRocketID creates a human-readable rocket identifier.
// Format: rocket-{planetID}-{8charHexUUID}
//
// Example:
//   - Input: planetID=3
//   - Output: "rocket-3-a3f8e2b1"
func GenerateRocketID(planetID uint32) string {
	return fmt.Sprintf("rocket-%d-%s", planetID, generateShortUUID())
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
