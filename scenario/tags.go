package scenario

import "strings"

// HasTag returns true if the tag list contains the given tag.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesTagFilter checks a tag list against a tag filter. Each filter entry is a comma-separated group of tags
// of which at least one must match; a tag prefixed with ~ matches when the tag is absent. All groups must match.
// An empty filter matches everything.
//
// For example, the filter ["@fast,@smoke", "~@wip"] matches scenarios tagged @fast or @smoke that are not
// tagged @wip.
func MatchesTagFilter(tags []string, filter []string) bool {
	for _, group := range filter {
		if !matchesTagGroup(tags, group) {
			return false
		}
	}
	return true
}

func matchesTagGroup(tags []string, group string) bool {
	empty := true
	for _, expression := range strings.Split(group, ",") {
		expression = strings.TrimSpace(expression)
		if expression == "" {
			continue
		}
		empty = false
		if negated, ok := strings.CutPrefix(expression, "~"); ok {
			if !HasTag(tags, negated) {
				return true
			}
			continue
		}
		if HasTag(tags, expression) {
			return true
		}
	}
	return empty
}
