// Package expertise derives the tag universe and the filtered member subset
// for the directory.
//
// Tags are freeform strings compared by exact match. No case folding or
// whitespace trimming is applied, so "Web" and "web" are distinct tags.
package expertise

import (
	"slices"
	"sort"

	"github.com/dalemusser/freelancehub/internal/domain/models"
)

// All is the sentinel filter value that selects every member.
const All = "All"

// Universe returns All followed by every distinct tag across members,
// sorted ascending. Each tag appears exactly once.
func Universe(members []models.Member) []string {
	seen := make(map[string]struct{})
	for _, m := range members {
		for _, tag := range m.Expertise {
			if tag == All {
				continue // already listed as the sentinel
			}
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return append([]string{All}, tags...)
}

// Filter returns the members visible under tag, in source order.
// All (or an empty tag) selects everyone.
func Filter(members []models.Member, tag string) []models.Member {
	if Normalize(tag) == All {
		out := make([]models.Member, len(members))
		copy(out, members)
		return out
	}
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if slices.Contains(m.Expertise, tag) {
			out = append(out, m)
		}
	}
	return out
}

// Normalize maps an absent filter value to All and leaves anything else as is.
func Normalize(tag string) string {
	if tag == "" {
		return All
	}
	return tag
}
