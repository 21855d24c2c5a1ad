package collector

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/vkaratov/matchreel/internal/pkg/config"
	"github.com/vkaratov/matchreel/internal/pkg/models"
)

// Tier classifies a channel's trust level for scoring.
type Tier int

const (
	TierUnknown Tier = iota
	TierClub
	TierBroadcaster
)

const (
	baseScore = 0.5

	// Unrecognized sources never outrank an official one purely through
	// keyword and freshness bonuses.
	unknownChannelCap = 0.65

	freshWindowDays = 3
	staleAfterDays  = 7
)

// Scorer computes a bounded relevance score for a video candidate and
// applies the hard relevance gate. All methods are pure and deterministic;
// a Scorer is read-only after construction.
type Scorer struct {
	broadcasters       *termSet
	clubChannels       *termSet
	reuploadPatterns   *termSet
	nonEnglishChannels *termSet
	nonEnglishKeywords *termSet
	excludedTerms      *termSet
	highlightTerms     *termSet

	geoFragments []string // sorted for deterministic iteration
	geoRegions   map[string][]string
}

// NewScorer compiles the configured term lists into matchers.
func NewScorer(cfg *config.ScoringConfig) *Scorer {
	s := &Scorer{
		broadcasters:       newTermSet(cfg.Broadcasters),
		clubChannels:       newTermSet(cfg.ClubChannels),
		reuploadPatterns:   newTermSet(cfg.ReuploadPatterns),
		nonEnglishChannels: newTermSet(cfg.NonEnglishChannels),
		nonEnglishKeywords: newTermSet(cfg.NonEnglishKeywords),
		excludedTerms:      newTermSet(cfg.ExcludedTerms),
		highlightTerms:     newTermSet(cfg.HighlightTerms),
		geoRegions:         make(map[string][]string, len(cfg.GeoPatterns)),
	}
	for fragment, regions := range cfg.GeoPatterns {
		fragment = strings.ToLower(strings.TrimSpace(fragment))
		if fragment == "" {
			continue
		}
		s.geoFragments = append(s.geoFragments, fragment)
		s.geoRegions[fragment] = regions
	}
	sort.Strings(s.geoFragments)
	return s
}

// Admit is the hard relevance gate, applied before any scoring. A candidate
// passes only if its title mentions at least one of the fixture's teams,
// contains no excluded term (game/simulation/rumour markers), and contains
// at least one highlight marker.
func (s *Scorer) Admit(title, home, away string) bool {
	titleLower := strings.ToLower(title)
	hasTeam := strings.Contains(titleLower, strings.ToLower(home)) ||
		strings.Contains(titleLower, strings.ToLower(away))
	return hasTeam &&
		!s.excludedTerms.matchesAny(title) &&
		s.highlightTerms.matchesAny(title)
}

// ChannelTier classifies the channel: known broadcaster, known official club
// channel, or unrecognized. Broadcaster wins when both lists match.
func (s *Scorer) ChannelTier(channel string) Tier {
	switch {
	case s.broadcasters.matchesAny(channel):
		return TierBroadcaster
	case s.clubChannels.matchesAny(channel):
		return TierClub
	default:
		return TierUnknown
	}
}

// GeoBlocked guesses the regions where a channel's uploads are blocked,
// based on the channel name. Unknown channels are assumed global.
func (s *Scorer) GeoBlocked(channel string) []string {
	channelLower := strings.ToLower(channel)
	for _, fragment := range s.geoFragments {
		if strings.Contains(channelLower, fragment) {
			return append([]string(nil), s.geoRegions[fragment]...)
		}
	}
	return nil
}

// Score computes the relevance score in [0, 1] for one candidate.
// publishedAt or fixtureDate may be zero (unparsable upstream data); the
// freshness step is then skipped silently.
func (s *Scorer) Score(title, channel string, publishedAt, fixtureDate time.Time, home, away string) float64 {
	score := baseScore

	titleLower := strings.ToLower(title)
	homeLower := strings.ToLower(home)
	awayLower := strings.ToLower(away)

	if strings.Contains(titleLower, homeLower) && strings.Contains(titleLower, awayLower) {
		score += 0.2
	}

	tier := s.ChannelTier(channel)
	switch tier {
	case TierBroadcaster:
		score += 0.3
	case TierClub:
		score += 0.2
	default:
		if isShoutingName(channel) {
			score -= 0.35
		}
		if s.reuploadPatterns.matchesAny(channel) {
			score -= 0.3
		}
	}

	if strings.Contains(titleLower, "extended") {
		score += 0.1
	}
	if strings.Contains(titleLower, "full highlights") {
		score += 0.1
	}

	// "Official" in the title next to a team name usually means a
	// club-produced, one-sided cut rather than neutral coverage.
	if strings.Contains(titleLower, "official") &&
		(strings.Contains(titleLower, homeLower) || strings.Contains(titleLower, awayLower)) {
		score -= 0.05
	}

	if s.nonEnglishChannels.matchesAny(channel) {
		score -= 0.3
	}
	if s.nonEnglishKeywords.matchesAny(title) {
		score -= 0.2
	}

	if !publishedAt.IsZero() && !fixtureDate.IsZero() {
		daysAfter := models.DaysBetween(fixtureDate, publishedAt)
		if daysAfter >= 0 && daysAfter <= freshWindowDays {
			score += 0.1
		} else if daysAfter > staleAfterDays {
			score -= 0.05
		}
	}

	upper := 1.0
	if tier == TierUnknown {
		upper = unknownChannelCap
	}
	return clamp(score, 0.0, upper)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isShoutingName reports whether a channel name's letters are entirely
// uppercase and longer than 5 letters — a reupload/spam account heuristic
// that leaves short real acronyms (BBC, ITV) alone.
func isShoutingName(channel string) bool {
	letters := 0
	for _, r := range channel {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 5
}
