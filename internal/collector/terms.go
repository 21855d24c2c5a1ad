package collector

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// termSet answers "does the text contain any of these fragments"
// case-insensitively. Matching is Aho-Corasick over the lowercased input,
// so a set of any size costs one pass.
type termSet struct {
	matcher *ahocorasick.Matcher
	terms   []string
}

func newTermSet(terms []string) *termSet {
	cleaned := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return &termSet{
		matcher: ahocorasick.NewStringMatcher(cleaned),
		terms:   cleaned,
	}
}

func (ts *termSet) matchesAny(text string) bool {
	if len(ts.terms) == 0 || text == "" {
		return false
	}
	return ts.matcher.Contains([]byte(strings.ToLower(text)))
}
