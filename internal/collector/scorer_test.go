package collector

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vkaratov/matchreel/internal/pkg/config"
)

func defaultScorer() *Scorer {
	return NewScorer(&config.Default().Scoring)
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAdmit(t *testing.T) {
	s := defaultScorer()

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"broadcaster highlight", "Arsenal v Chelsea | Premier League Highlights", true},
		{"extended cut", "Arsenal vs Chelsea | EXTENDED Highlights", true},
		{"game simulation", "Arsenal 3-1 Chelsea FIFA 24 career mode prediction", false},
		{"no highlight marker", "Arsenal v Chelsea press conference", false},
		{"wrong teams", "Brentford v Fulham | Highlights", false},
	}
	for _, tt := range tests {
		if got := s.Admit(tt.title, "Arsenal", "Chelsea"); got != tt.want {
			t.Errorf("%s: Admit(%q) = %v, want %v", tt.name, tt.title, got, tt.want)
		}
	}
}

func TestChannelTier(t *testing.T) {
	s := defaultScorer()

	tests := []struct {
		channel string
		want    Tier
	}{
		{"Sky Sports Football", TierBroadcaster},
		{"NBC Sports", TierBroadcaster},
		{"Arsenal", TierClub},
		{"Wolves", TierClub},
		{"Random Football Channel", TierUnknown},
	}
	for _, tt := range tests {
		if got := s.ChannelTier(tt.channel); got != tt.want {
			t.Errorf("ChannelTier(%q) = %v, want %v", tt.channel, got, tt.want)
		}
	}
}

func TestScore_BroadcasterOutranksReuploader(t *testing.T) {
	s := defaultScorer()
	title := "Arsenal v Chelsea | Premier League Highlights"

	broadcaster := s.Score(title, "Sky Sports Football", time.Time{}, time.Time{}, "Arsenal", "Chelsea")
	reuploader := s.Score(title, "RandomReuploads123", time.Time{}, time.Time{}, "Arsenal", "Chelsea")

	if !floatEq(broadcaster, 1.0) {
		t.Errorf("broadcaster score = %v, want 1.0", broadcaster)
	}
	// base 0.5 + both teams 0.2 - reupload fragment 0.3
	if !floatEq(reuploader, 0.4) {
		t.Errorf("reuploader score = %v, want 0.4", reuploader)
	}
	if reuploader >= broadcaster {
		t.Errorf("reuploader (%v) outranked broadcaster (%v)", reuploader, broadcaster)
	}
}

func TestScore_UnknownChannelCapped(t *testing.T) {
	s := defaultScorer()
	fixtureDate := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)
	published := fixtureDate.Add(24 * time.Hour)

	// Every bonus at once: both teams, "extended", "full highlights",
	// freshness. An unknown channel still cannot pass the cap.
	got := s.Score("Arsenal vs Chelsea extended full highlights",
		"Match Clips Daily", published, fixtureDate, "Arsenal", "Chelsea")
	if !floatEq(got, unknownChannelCap) {
		t.Errorf("unknown channel score = %v, want cap %v", got, unknownChannelCap)
	}
}

func TestScore_Freshness(t *testing.T) {
	s := defaultScorer()
	fixtureDate := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)
	title := "Arsenal highlights"

	tests := []struct {
		name      string
		published time.Time
		want      float64
	}{
		// base 0.5 + broadcaster 0.3, then the freshness step
		{"two days after", fixtureDate.AddDate(0, 0, 2), 0.9},
		{"ten days after", fixtureDate.AddDate(0, 0, 10), 0.75},
		{"published before", fixtureDate.AddDate(0, 0, -1), 0.8},
		{"unknown publish date", time.Time{}, 0.8},
	}
	for _, tt := range tests {
		got := s.Score(title, "Sky Sports Football", tt.published, fixtureDate, "Arsenal", "Chelsea")
		if !floatEq(got, tt.want) {
			t.Errorf("%s: Score() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScore_ShoutingChannelPenalty(t *testing.T) {
	s := defaultScorer()
	title := "Arsenal v Chelsea goals"

	// base 0.5 + both teams 0.2 - all-caps 0.35
	got := s.Score(title, "PLGOALSHD", time.Time{}, time.Time{}, "Arsenal", "Chelsea")
	if !floatEq(got, 0.35) {
		t.Errorf("all-caps channel score = %v, want 0.35", got)
	}

	// Short acronyms are left alone; only the unknown-channel cap applies.
	got = s.Score(title, "ITV", time.Time{}, time.Time{}, "Arsenal", "Chelsea")
	if !floatEq(got, unknownChannelCap) {
		t.Errorf("acronym channel score = %v, want %v", got, unknownChannelCap)
	}
}

func TestScore_NonEnglishPenalties(t *testing.T) {
	s := defaultScorer()

	// base 0.5 + both teams 0.2 - channel 0.3 - keyword 0.2
	got := s.Score("Arsenal vs Chelsea resumen y goles",
		"ESPN Deportes", time.Time{}, time.Time{}, "Arsenal", "Chelsea")
	if !floatEq(got, 0.2) {
		t.Errorf("non-English score = %v, want 0.2", got)
	}
}

func TestScore_SelfPromoPenalty(t *testing.T) {
	s := defaultScorer()

	plain := s.Score("Arsenal v Chelsea | Highlights", "Arsenal", time.Time{}, time.Time{}, "Arsenal", "Chelsea")
	promo := s.Score("Arsenal v Chelsea | Official Highlights", "Arsenal", time.Time{}, time.Time{}, "Arsenal", "Chelsea")

	if !floatEq(plain, 0.9) {
		t.Errorf("club channel score = %v, want 0.9", plain)
	}
	if !floatEq(promo, 0.85) {
		t.Errorf("self-promo score = %v, want 0.85", promo)
	}
}

func TestScore_NeverNegative(t *testing.T) {
	s := defaultScorer()
	fixtureDate := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)

	// Stack every penalty: all-caps reuploader, non-English keyword, stale.
	got := s.Score("Chelsea clips goles", "REUPLOADSHD",
		fixtureDate.AddDate(0, 0, 10), fixtureDate, "Chelsea", "Arsenal")
	if got != 0 {
		t.Errorf("fully penalised score = %v, want 0", got)
	}
}

func TestGeoBlocked(t *testing.T) {
	s := defaultScorer()

	if got := s.GeoBlocked("Sky Sports Football"); !reflect.DeepEqual(got, []string{"US", "CA"}) {
		t.Errorf("GeoBlocked(Sky Sports Football) = %v, want [US CA]", got)
	}
	if got := s.GeoBlocked("NBC Sports"); !reflect.DeepEqual(got, []string{"GB", "IE"}) {
		t.Errorf("GeoBlocked(NBC Sports) = %v, want [GB IE]", got)
	}
	if got := s.GeoBlocked("Random Channel"); got != nil {
		t.Errorf("GeoBlocked(Random Channel) = %v, want nil", got)
	}
}

func TestIsShoutingName(t *testing.T) {
	tests := []struct {
		channel string
		want    bool
	}{
		{"PLGOALSHD", true},
		{"FOOTBALL HIGHLIGHTS HD", true},
		{"BBC", false},
		{"ITV", false},
		{"Sky Sports Football", false},
		{"RandomReuploads123", false},
	}
	for _, tt := range tests {
		if got := isShoutingName(tt.channel); got != tt.want {
			t.Errorf("isShoutingName(%q) = %v, want %v", tt.channel, got, tt.want)
		}
	}
}
