package pathutil

import "regexp"

// idSegment matches one numeric path segment.
var idSegment = regexp.MustCompile(`/\d+(/|$)`)

// NormalizePath collapses numeric path segments to ":id" so metric labels stay
// bounded. "/api/tasks/123" becomes "/api/tasks/:id"; static paths are
// returned unchanged.
func NormalizePath(path string) string {
	return idSegment.ReplaceAllString(path, "/:id$1")
}
