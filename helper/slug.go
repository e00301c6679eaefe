package helper

import "regexp"

var (
	slugStripPattern      = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	slugWhitespacePattern = regexp.MustCompile(`\s+`)
)

// CreateSlug derives the URL identifier for a post title. Characters outside
// ASCII letters, digits, whitespace and hyphens are removed, then each run of
// whitespace becomes a single hyphen. Case is preserved. A title made up
// entirely of stripped characters yields an empty slug.
func CreateSlug(title string) string {
	filtered := slugStripPattern.ReplaceAllString(title, "")
	return slugWhitespacePattern.ReplaceAllString(filtered, "-")
}
