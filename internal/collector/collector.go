// Package collector turns raw video search results into ranked, capped
// video lists attached to fixtures.
package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/vkaratov/matchreel/internal/pkg/config"
	"github.com/vkaratov/matchreel/internal/pkg/models"
)

const descriptionLimit = 200

// CandidateSource supplies the pre-fetched search results for one fixture.
// Fetching, pagination, and quota bookkeeping live behind this interface.
type CandidateSource interface {
	FixtureCandidates(ctx context.Context, fx *models.Fixture) ([]models.RawVideoItem, error)
}

// Collector runs the search-collection pass over a season: gate, score,
// merge with trusted videos, cap.
type Collector struct {
	source CandidateSource
	scorer *Scorer
	limit  int
}

// Stats summarises one collection run.
type Stats struct {
	Fixtures   int
	Candidates int
	Admitted   int
	Dropped    int // malformed records
	Attached   int // videos on fixtures after merge
}

func New(cfg *config.ScoringConfig, source CandidateSource) *Collector {
	limit := cfg.MaxVideos
	if limit <= 0 {
		limit = 5
	}
	return &Collector{
		source: source,
		scorer: NewScorer(cfg),
		limit:  limit,
	}
}

// Run processes every fixture in the season, mutating fixtures in place.
// Per-fixture and per-record failures are logged and skipped; Run only
// returns an error when the context is cancelled.
func (c *Collector) Run(ctx context.Context, season *models.Season) (Stats, error) {
	var stats Stats
	for g := range season.Gameweeks {
		gw := &season.Gameweeks[g]
		for f := range gw.Fixtures {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			fx := &gw.Fixtures[f]
			stats.Fixtures++
			c.collectFixture(ctx, fx, &stats)
		}
	}
	slog.Info("Collection run finished",
		"fixtures", stats.Fixtures,
		"candidates", stats.Candidates,
		"admitted", stats.Admitted,
		"dropped", stats.Dropped,
		"attached", stats.Attached)
	return stats, nil
}

func (c *Collector) collectFixture(ctx context.Context, fx *models.Fixture, stats *Stats) {
	items, err := c.source.FixtureCandidates(ctx, fx)
	if err != nil {
		slog.Warn("Failed to get candidates for fixture",
			"home", fx.Home, "away", fx.Away, "date", fx.Date, "error", err)
		return
	}

	fixtureDate := models.ParseDate(fx.Date)
	var admitted []models.Video
	for _, it := range items {
		stats.Candidates++
		if err := it.Validate(); err != nil {
			stats.Dropped++
			slog.Warn("Dropping malformed video record", "error", err)
			continue
		}
		if !c.scorer.Admit(it.Title, fx.Home, fx.Away) {
			continue
		}
		stats.Admitted++
		admitted = append(admitted, c.buildVideo(it, fx.Home, fx.Away, fixtureDate))
	}

	fx.Videos = Merge(fx.Videos, admitted, c.limit)
	fx.VideoCount = len(fx.Videos)
	stats.Attached += fx.VideoCount
}

// buildVideo converts an admitted raw item into a scored Video.
func (c *Collector) buildVideo(it models.RawVideoItem, home, away string, fixtureDate time.Time) models.Video {
	publishedAt := models.ParseTimestamp(it.PublishedAt)
	return models.Video{
		ID:          it.ID,
		Title:       it.Title,
		Channel:     it.ChannelTitle,
		ChannelID:   it.ChannelID,
		PublishedAt: it.PublishedAt,
		Thumbnail:   it.BestThumbnail(),
		Description: models.TruncateDescription(it.Description, descriptionLimit),
		Official:    c.scorer.ChannelTier(it.ChannelTitle) != TierUnknown,
		GeoBlocked:  c.scorer.GeoBlocked(it.ChannelTitle),
		Relevance:   c.scorer.Score(it.Title, it.ChannelTitle, publishedAt, fixtureDate, home, away),
	}
}
