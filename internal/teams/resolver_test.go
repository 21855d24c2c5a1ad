package teams

import (
	"reflect"
	"testing"

	"github.com/vkaratov/matchreel/internal/pkg/config"
)

func defaultResolver() *Resolver {
	return NewResolver(config.Default().Matching.Aliases)
}

func TestResolve_LongAliasWinsOverSubstring(t *testing.T) {
	r := defaultResolver()

	// "forest" alone must not upstage "nottingham forest": the longer
	// alias is tried first and claims the canonical name.
	got := r.Resolve("Nottingham Forest vs Forest reserves", 2)
	want := []string{"Nottingham Forest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolve_OrderOfAppearance(t *testing.T) {
	r := defaultResolver()

	tests := []struct {
		title string
		want  []string
	}{
		{"Chelsea v Arsenal | Premier League Highlights", []string{"Chelsea", "Arsenal"}},
		{"Arsenal v Chelsea | Premier League Highlights", []string{"Arsenal", "Chelsea"}},
		{"Spurs 2-2 Man City | EXTENDED Highlights", []string{"Tottenham", "Manchester City"}},
		{"Wolves fight back against Nott'm Forest", []string{"Wolves", "Nottingham Forest"}},
	}
	for _, tt := range tests {
		got := r.Resolve(tt.title, 2)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestResolve_DistinctCanonicalNames(t *testing.T) {
	r := defaultResolver()

	// "manchester united" and "man utd" both resolve to the same team;
	// the second mention must not count as a second distinct name.
	got := r.Resolve("Manchester United (Man Utd) season review", 2)
	want := []string{"Manchester United"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestExtractPair(t *testing.T) {
	r := defaultResolver()

	teamA, teamB, ok := r.ExtractPair("Liverpool 4-0 Everton | Merseyside derby highlights")
	if !ok {
		t.Fatalf("ExtractPair() ok = false, want true")
	}
	if teamA != "Liverpool" || teamB != "Everton" {
		t.Errorf("ExtractPair() = %q, %q, want Liverpool, Everton", teamA, teamB)
	}

	if _, _, ok := r.ExtractPair("Premier League season preview"); ok {
		t.Errorf("ExtractPair() ok = true for a title with no teams, want false")
	}
	if _, _, ok := r.ExtractPair("Arsenal pre-season training"); ok {
		t.Errorf("ExtractPair() ok = true for a single-team title, want false")
	}
}
