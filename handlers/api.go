package handlers

import (
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// apiError responds with a JSON error body. Handlers log the underlying
// cause themselves; the message here is the user-facing one.
func apiError(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
