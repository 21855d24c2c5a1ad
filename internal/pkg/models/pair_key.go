package models

import (
	"strings"
	"time"
)

// PairKey builds a stable identity key for the unordered pair of team names.
//
// IMPORTANT: this assumes both callers use the same canonical team names
// (the alias resolver output). The two names are normalized and sorted so
// PairKey("Arsenal", "Chelsea") == PairKey("Chelsea", "Arsenal").
func PairKey(teamA, teamB string) string {
	a := normalizeKeyPart(teamA)
	b := normalizeKeyPart(teamB)
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func normalizeKeyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "|", " ")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// ParseDate parses a fixture date ("2024-08-16"). Malformed or empty input
// yields a zero time; callers treat that as "date unknown", never an error.
func ParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseTimestamp parses an ISO 8601 publish timestamp
// ("2024-08-16T15:30:00Z"). A bare date is accepted too. Malformed input
// yields a zero time.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return ParseDate(s)
}

// DaysBetween returns the whole calendar days from a to b (UTC), negative
// when b is before a.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}
