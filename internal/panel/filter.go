package panel

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter returns the descriptors whose label or ID match query. An empty
// query returns every descriptor.
func Filter(descs []Descriptor, query string) []Descriptor {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneDescriptors(descs)
	}
	labels := make([]string, len(descs))
	for i, d := range descs {
		labels[i] = d.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Descriptor, 0, len(matches))
		for idx, d := range descs {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, d)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Descriptor, 0, len(descs))
	for _, d := range descs {
		if strings.Contains(strings.ToLower(d.ID), lower) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// BestMatch returns the index of the descriptor that best matches query, or
// -1 when descs is empty.
func BestMatch(descs []Descriptor, query string) int {
	if len(descs) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, d := range descs {
		if strings.EqualFold(d.Label, trimmed) || strings.EqualFold(d.ID, trimmed) {
			return i
		}
	}
	for i, d := range descs {
		if strings.HasPrefix(strings.ToLower(d.Label), lower) || strings.HasPrefix(strings.ToLower(d.ID), lower) {
			return i
		}
	}
	for i, d := range descs {
		if strings.Contains(strings.ToLower(d.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(descs))
	for i, d := range descs {
		labels[i] = d.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func cloneDescriptors(descs []Descriptor) []Descriptor {
	dup := make([]Descriptor, len(descs))
	copy(dup, descs)
	return dup
}
