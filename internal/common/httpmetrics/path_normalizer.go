package httpmetrics

import (
	"regexp"
	"strings"
)

var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// NormalizePath collapses identifiers so label cardinality stays bounded.
// Anything below /api/notes/ is an id regardless of format, since malformed
// ids reach the handler too.
func NormalizePath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}

	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if uuidRegex.MatchString(part) || isNumeric(part) {
			parts[i] = "{id}"
			continue
		}
		if i == 3 && parts[1] == "api" && parts[2] == "notes" {
			parts[i] = "{id}"
		}
	}

	return strings.Join(parts, "/")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
