package storage

import (
	"testing"

	"github.com/vkaratov/matchreel/internal/pkg/models"
)

func TestAssembleSeason(t *testing.T) {
	fixtures := []fixtureRow{
		{id: 1, gameweek: 1, fx: models.Fixture{Home: "Arsenal", Away: "Chelsea", Date: "2024-08-10", Score: "2-1"}},
		{id: 2, gameweek: 1, fx: models.Fixture{Home: "Liverpool", Away: "Everton", Date: "2024-08-11"}},
		{id: 3, gameweek: 21, fx: models.Fixture{Home: "Chelsea", Away: "Arsenal", Date: "2025-01-15"}},
	}
	videos := map[int][]models.Video{
		1: {
			{ID: "sky1", Relevance: 1.0},
			{ID: "trusted1", Relevance: 0.95},
		},
		3: {{ID: "second-leg", Relevance: 0.8}},
	}

	season := assembleSeason("2024-25", fixtures, videos)

	if season.Season != "2024-25" {
		t.Errorf("Season = %q, want 2024-25", season.Season)
	}
	if len(season.Gameweeks) != 2 {
		t.Fatalf("assembled %d gameweeks, want 2", len(season.Gameweeks))
	}
	if season.Gameweeks[0].Number != 1 || len(season.Gameweeks[0].Fixtures) != 2 {
		t.Errorf("gameweek 1 = %+v, want 2 fixtures", season.Gameweeks[0])
	}
	if season.Gameweeks[1].Number != 21 || len(season.Gameweeks[1].Fixtures) != 1 {
		t.Errorf("gameweek 21 = %+v, want 1 fixture", season.Gameweeks[1])
	}

	first := season.Gameweeks[0].Fixtures[0]
	if first.VideoCount != 2 || len(first.Videos) != 2 {
		t.Fatalf("first fixture has %d videos, want 2", len(first.Videos))
	}
	// Stored rank order survives the round trip.
	if first.Videos[0].ID != "sky1" || first.Videos[1].ID != "trusted1" {
		t.Errorf("video order = %s, %s, want sky1, trusted1",
			first.Videos[0].ID, first.Videos[1].ID)
	}
	if first.Score != "2-1" {
		t.Errorf("first fixture score = %q, want 2-1", first.Score)
	}

	second := season.Gameweeks[0].Fixtures[1]
	if second.VideoCount != 0 || second.Videos != nil {
		t.Errorf("video-less fixture = %+v, want empty list", second)
	}
}
