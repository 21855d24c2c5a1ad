package storage

import (
	"context"

	"github.com/vkaratov/matchreel/internal/pkg/models"
)

// FixtureStore persists enriched fixtures and their ranked video lists.
type FixtureStore interface {
	// SaveSeason upserts every fixture of the season and replaces each
	// fixture's video rows with the current ranked list.
	SaveSeason(ctx context.Context, season *models.Season) error
	// LoadSeason reads a previously saved season back, gameweeks in
	// schedule order and videos in stored rank order.
	LoadSeason(ctx context.Context, season string) (*models.Season, error)
	Close() error
}
