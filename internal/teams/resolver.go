// Package teams resolves free-text team mentions to canonical team names.
package teams

import (
	"sort"
	"strings"
)

// Resolver maps lowercase text fragments to canonical team names. Aliases
// are tried longest first so a specific fragment ("nottingham forest") claims
// its canonical name before a shorter one ("forest") can mis-resolve.
type Resolver struct {
	aliases map[string]string
	ordered []string // alias keys, longest first
}

// NewResolver builds a resolver from an alias table. The table is copied;
// the resolver is read-only and safe for concurrent use.
func NewResolver(aliases map[string]string) *Resolver {
	r := &Resolver{
		aliases: make(map[string]string, len(aliases)),
		ordered: make([]string, 0, len(aliases)),
	}
	for alias, canonical := range aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" || canonical == "" {
			continue
		}
		r.aliases[alias] = canonical
		r.ordered = append(r.ordered, alias)
	}
	sort.Slice(r.ordered, func(i, j int) bool {
		if len(r.ordered[i]) != len(r.ordered[j]) {
			return len(r.ordered[i]) > len(r.ordered[j])
		}
		return r.ordered[i] < r.ordered[j]
	})
	return r
}

// Resolve scans text for up to n distinct canonical team names and returns
// them in order of first appearance. A short result means "no confident
// match" and is up to the caller to handle; it is never an error.
func (r *Resolver) Resolve(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	lower := strings.ToLower(text)

	type hit struct {
		canonical string
		pos       int
	}
	var hits []hit
	seen := make(map[string]bool, n)

	for _, alias := range r.ordered {
		canonical := r.aliases[alias]
		if seen[canonical] {
			continue
		}
		pos := strings.Index(lower, alias)
		if pos < 0 {
			continue
		}
		seen[canonical] = true
		hits = append(hits, hit{canonical: canonical, pos: pos})
		if len(hits) == n {
			break
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	found := make([]string, len(hits))
	for i, h := range hits {
		found[i] = h.canonical
	}
	return found
}

// ExtractPair pulls the two teams mentioned in a video title.
// ok is false when fewer than two distinct teams are found.
func (r *Resolver) ExtractPair(title string) (teamA, teamB string, ok bool) {
	found := r.Resolve(title, 2)
	if len(found) < 2 {
		return "", "", false
	}
	return found[0], found[1], true
}
