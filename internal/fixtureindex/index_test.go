package fixtureindex

import (
	"errors"
	"testing"
	"time"

	"github.com/vkaratov/matchreel/internal/pkg/models"
)

func testSeason() *models.Season {
	return &models.Season{
		Season: "2024-25",
		Gameweeks: []models.Gameweek{
			{Number: 1, Fixtures: []models.Fixture{
				{Home: "Arsenal", Away: "Chelsea", Date: "2024-08-10"},
				{Home: "Liverpool", Away: "Everton", Date: "2024-08-11"},
			}},
			{Number: 21, Fixtures: []models.Fixture{
				{Home: "Chelsea", Away: "Arsenal", Date: "2025-01-15"},
			}},
		},
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLookup_Symmetry(t *testing.T) {
	ix := Build(testSeason())
	ref := date("2024-08-11")

	a, err := ix.Lookup("Arsenal", "Chelsea", ref, 3)
	if err != nil {
		t.Fatalf("Lookup(Arsenal, Chelsea) error: %v", err)
	}
	b, err := ix.Lookup("Chelsea", "Arsenal", ref, 3)
	if err != nil {
		t.Fatalf("Lookup(Chelsea, Arsenal) error: %v", err)
	}
	if a != b {
		t.Errorf("symmetric lookups returned different fixtures: %v vs %v", a, b)
	}
}

func TestLookup_DateDisambiguation(t *testing.T) {
	ix := Build(testSeason())

	august, err := ix.Lookup("Arsenal", "Chelsea", date("2024-08-11"), 3)
	if err != nil {
		t.Fatalf("Lookup(august) error: %v", err)
	}
	if august.Date != "2024-08-10" {
		t.Errorf("Lookup near August returned fixture on %s, want 2024-08-10", august.Date)
	}

	january, err := ix.Lookup("Arsenal", "Chelsea", date("2025-01-14"), 3)
	if err != nil {
		t.Fatalf("Lookup(january) error: %v", err)
	}
	if january.Date != "2025-01-15" {
		t.Errorf("Lookup near January returned fixture on %s, want 2025-01-15", january.Date)
	}
}

func TestLookup_OutsideWindow(t *testing.T) {
	ix := Build(testSeason())

	_, err := ix.Lookup("Arsenal", "Chelsea", date("2024-09-30"), 3)
	if !errors.Is(err, ErrNoFixture) {
		t.Errorf("Lookup outside window error = %v, want ErrNoFixture", err)
	}
}

func TestLookup_UnknownPair(t *testing.T) {
	ix := Build(testSeason())

	_, err := ix.Lookup("Arsenal", "Liverpool", date("2024-08-10"), 3)
	if !errors.Is(err, ErrNoFixture) {
		t.Errorf("Lookup unknown pair error = %v, want ErrNoFixture", err)
	}
}

func TestLookup_UnknownDateFallsBack(t *testing.T) {
	// Unparsable reference date: cannot date-disambiguate, first candidate
	// wins as a best-effort fallback.
	ix := Build(testSeason())

	fx, err := ix.Lookup("Arsenal", "Chelsea", time.Time{}, 3)
	if err != nil {
		t.Fatalf("Lookup with zero ref error: %v", err)
	}
	if fx.Date != "2024-08-10" {
		t.Errorf("fallback returned fixture on %s, want first candidate 2024-08-10", fx.Date)
	}
}

func TestLookup_MutatesSeasonInPlace(t *testing.T) {
	season := testSeason()
	ix := Build(season)

	fx, err := ix.Lookup("Liverpool", "Everton", date("2024-08-11"), 3)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	fx.PrependVideo(models.Video{ID: "abc123"})

	got := season.Gameweeks[0].Fixtures[1]
	if got.VideoCount != 1 || len(got.Videos) != 1 || got.Videos[0].ID != "abc123" {
		t.Errorf("season fixture not mutated through index: %+v", got)
	}
}
