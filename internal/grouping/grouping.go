// Package grouping arranges already-fetched bookmarks by tag for display.
package grouping

import (
	"sort"
	"strings"
)

// Tagged is any record that carries its tags as one whitespace-separated string
type Tagged interface {
	TagString() string
}

// GroupByTag files each item under the first tag of its tag string only.
// Items keep their input order within a group; items without tags are left out.
func GroupByTag[T Tagged](items []T) map[string][]T {
	groups := make(map[string][]T)
	for _, item := range items {
		tags := strings.Fields(item.TagString())
		if len(tags) == 0 {
			continue
		}
		groups[tags[0]] = append(groups[tags[0]], item)
	}
	return groups
}

// DistinctTags returns every tag found on any item, sorted and without repeats
func DistinctTags[T Tagged](items []T) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, item := range items {
		for _, tag := range strings.Fields(item.TagString()) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}
