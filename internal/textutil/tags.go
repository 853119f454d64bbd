package textutil

import "strings"

// ParseTagSet splits a comma-separated tag field into lowercase, trimmed
// tokens. Empty tokens are dropped and duplicates removed while preserving
// first-seen order. A blank or comma-only field yields an empty set.
func ParseTagSet(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	seen := make(map[string]struct{}, len(parts))
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
