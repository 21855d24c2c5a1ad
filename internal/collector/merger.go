package collector

import (
	"sort"

	"github.com/vkaratov/matchreel/internal/pkg/models"
)

// Merge combines trusted-source videos already attached to a fixture with
// scored search candidates. Duplicate video IDs are dropped (trusted copy
// wins), the result is sorted by relevance descending with a stable sort so
// equal scores keep their original relative order, and the list is truncated
// to limit entries.
func Merge(trusted, search []models.Video, limit int) []models.Video {
	merged := make([]models.Video, 0, len(trusted)+len(search))
	seen := make(map[string]struct{}, len(trusted)+len(search))

	for _, v := range trusted {
		if _, dup := seen[v.ID]; dup {
			continue
		}
		seen[v.ID] = struct{}{}
		merged = append(merged, v)
	}
	for _, v := range search {
		if _, dup := seen[v.ID]; dup {
			continue
		}
		seen[v.ID] = struct{}{}
		merged = append(merged, v)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Relevance > merged[j].Relevance
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
