package helper

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// tagNamePattern is unanchored: a name passes if any substring matches, so
// "abc!!!" counts as valid while "123" and "" do not.
var tagNamePattern = regexp.MustCompile(`[a-z]+(-[a-z0-9]+)*`)

// TagStatus partitions candidate tag names into valid and invalid,
// preserving the relative order of the input.
type TagStatus struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}

// NormalizeTagNames splits every entry on whitespace, lowercases and trims
// the pieces, and drops duplicates keeping the first appearance.
func NormalizeTagNames(raw []string) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, entry := range raw {
		for _, name := range strings.Fields(strings.ToLower(strings.TrimSpace(entry))) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// ValidateTags classifies tag names against the canonical pattern. It is
// total over all inputs and has no side effects.
func ValidateTags(names []string) TagStatus {
	status := TagStatus{Valid: []string{}, Invalid: []string{}}
	for _, name := range names {
		err := validation.Validate(name,
			validation.Required,
			validation.Match(tagNamePattern),
		)
		if err != nil {
			status.Invalid = append(status.Invalid, name)
		} else {
			status.Valid = append(status.Valid, name)
		}
	}
	return status
}
