// Package fixtureindex indexes a season's fixtures by unordered team pair
// for date-windowed lookup.
package fixtureindex

import (
	"errors"
	"time"

	"github.com/vkaratov/matchreel/internal/pkg/models"
)

// ErrNoFixture is returned when no fixture for the team pair falls inside
// the tolerance window. It is a normal outcome, never fatal.
var ErrNoFixture = errors.New("no fixture for team pair within window")

type entry struct {
	date    time.Time
	fixture *models.Fixture
}

// Index is a rebuildable lookup structure over one season's fixture list.
// Build it once per run; it is read-only afterwards and must not be used
// concurrently with a rebuild.
type Index struct {
	byPair map[string][]entry
}

// Build groups fixtures by unordered pair key, keeping fixture-list order
// inside each group. Entries point into the season, so lookups hand back
// fixtures that can be enriched in place.
func Build(season *models.Season) *Index {
	ix := &Index{byPair: make(map[string][]entry)}
	for g := range season.Gameweeks {
		gw := &season.Gameweeks[g]
		for f := range gw.Fixtures {
			fx := &gw.Fixtures[f]
			key := models.PairKey(fx.Home, fx.Away)
			ix.byPair[key] = append(ix.byPair[key], entry{
				date:    models.ParseDate(fx.Date),
				fixture: fx,
			})
		}
	}
	return ix
}

// Lookup finds the fixture between teamA and teamB whose date is within
// windowDays of ref. A pair can meet more than once a season (home and away
// legs), so the date window decides which leg a video belongs to. When
// either date is unknown the first candidate is returned as a best-effort
// fallback.
func (ix *Index) Lookup(teamA, teamB string, ref time.Time, windowDays int) (*models.Fixture, error) {
	candidates, ok := ix.byPair[models.PairKey(teamA, teamB)]
	if !ok {
		return nil, ErrNoFixture
	}
	for _, c := range candidates {
		if ref.IsZero() || c.date.IsZero() {
			return c.fixture, nil
		}
		diff := models.DaysBetween(c.date, ref)
		if diff < 0 {
			diff = -diff
		}
		if diff <= windowDays {
			return c.fixture, nil
		}
	}
	return nil, ErrNoFixture
}

// Len returns the number of distinct team pairs in the index.
func (ix *Index) Len() int {
	return len(ix.byPair)
}
