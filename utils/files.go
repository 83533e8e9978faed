package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredFilename builds a collision-free on-disk name for an upload while
// keeping the original extension.
func StoredFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s%s", uuid.NewString(), ext)
}

// ApplicationNumber generates a human-readable submission reference,
// e.g. "NOC-2026-1a2b3c4d".
func ApplicationNumber(year int) string {
	return fmt.Sprintf("NOC-%d-%s", year, uuid.NewString()[:8])
}
