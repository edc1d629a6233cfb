package vtkgo

import "strings"

const (
	// untitledPlaceholder stands in for titles that are empty after trimming.
	untitledPlaceholder = "untitled"

	// maxTitleLength is the VTK legacy limit for the title line.
	maxTitleLength = 254

	// truncatedTitleLength is how much of an over-long title survives before
	// the ellipsis marker.
	truncatedTitleLength = 250

	ellipsisMarker = "..."
)

// SanitizeTitle normalizes a document title for the second line of a VTK
// legacy file: surrounding whitespace is trimmed, an empty result is replaced
// with a placeholder, and a title longer than 254 characters is truncated to
// 250 characters plus an ellipsis marker.
//
// The format is ASCII by declaration, so length is counted in bytes.
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return untitledPlaceholder
	}
	if len(title) > maxTitleLength {
		return title[:truncatedTitleLength] + ellipsisMarker
	}
	return title
}

// sanitizeFieldName normalizes an attribute field name: surrounding
// whitespace is trimmed and internal spaces become underscores, since field
// names are single tokens on the SCALARS/VECTORS declaration line.
func sanitizeFieldName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
