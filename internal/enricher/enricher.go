// Package enricher matches trusted-playlist videos to fixtures by parsing
// team names out of video titles.
package enricher

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vkaratov/matchreel/internal/fixtureindex"
	"github.com/vkaratov/matchreel/internal/pkg/config"
	"github.com/vkaratov/matchreel/internal/pkg/models"
	"github.com/vkaratov/matchreel/internal/teams"
)

const descriptionLimit = 200

// PlaylistSource supplies the pre-fetched items of the trusted playlist.
// Fetching and pagination live behind this interface.
type PlaylistSource interface {
	PlaylistItems(ctx context.Context) ([]models.RawVideoItem, error)
}

// Enricher attaches trusted-source videos to the fixtures their titles
// name. Matched videos go to the front of the fixture's list.
type Enricher struct {
	source    PlaylistSource
	resolver  *teams.Resolver
	tolerance int
	trusted   config.TrustedConfig
}

// Summary reports one enrichment run. Unmatched holds titles the run could
// not place: either no confident team pair, or no fixture in the window.
type Summary struct {
	Total     int
	Matched   int
	Skipped   int // deleted/private playlist entries
	Dropped   int // malformed records
	Unmatched []string
}

func New(cfg *config.Config, source PlaylistSource) *Enricher {
	tolerance := cfg.Matching.ToleranceDays
	if tolerance <= 0 {
		tolerance = 3
	}
	return &Enricher{
		source:    source,
		resolver:  teams.NewResolver(cfg.Matching.Aliases),
		tolerance: tolerance,
		trusted:   cfg.Trusted,
	}
}

// Run fetches the playlist items and matches each to a fixture, mutating
// the season in place. An unmatched title is a normal outcome, not an
// error; only a failing source or cancelled context aborts the run.
func (e *Enricher) Run(ctx context.Context, season *models.Season) (Summary, error) {
	var summary Summary

	items, err := e.source.PlaylistItems(ctx)
	if err != nil {
		return summary, err
	}

	index := fixtureindex.Build(season)
	slog.Info("Enriching season from trusted playlist",
		"season", season.Season, "items", len(items), "pairs", index.Len())

	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Total++

		if it.Title == "Deleted video" || it.Title == "Private video" {
			summary.Skipped++
			continue
		}
		if err := it.Validate(); err != nil {
			summary.Dropped++
			slog.Warn("Dropping malformed playlist record", "error", err)
			continue
		}

		fx, ok := e.matchFixture(index, it)
		if !ok {
			summary.Unmatched = append(summary.Unmatched, it.Title)
			continue
		}

		fx.PrependVideo(e.trustedVideo(it))
		summary.Matched++
	}

	slog.Info("Enrichment run finished",
		"total", summary.Total,
		"matched", summary.Matched,
		"unmatched", len(summary.Unmatched),
		"skipped", summary.Skipped,
		"dropped", summary.Dropped)
	for _, title := range summary.Unmatched {
		slog.Debug("Unmatched playlist title", "title", title)
	}
	return summary, nil
}

// matchFixture extracts the team pair from the title and resolves the
// fixture within the tolerance window of the publish date.
func (e *Enricher) matchFixture(index *fixtureindex.Index, it models.RawVideoItem) (*models.Fixture, bool) {
	teamA, teamB, ok := e.resolver.ExtractPair(it.Title)
	if !ok {
		return nil, false
	}
	fx, err := index.Lookup(teamA, teamB, models.ParseTimestamp(it.PublishedAt), e.tolerance)
	if err != nil {
		if !errors.Is(err, fixtureindex.ErrNoFixture) {
			slog.Warn("Fixture lookup failed", "title", it.Title, "error", err)
		}
		return nil, false
	}
	return fx, true
}

// trustedVideo builds the Video record for a trusted-source item. Trusted
// videos are not re-scored; they carry the source's fixed relevance.
func (e *Enricher) trustedVideo(it models.RawVideoItem) models.Video {
	channel := e.trusted.Channel
	if channel == "" {
		channel = it.ChannelTitle
	}
	return models.Video{
		ID:          it.ID,
		Title:       it.Title,
		Channel:     channel,
		ChannelID:   it.ChannelID,
		PublishedAt: it.PublishedAt,
		Thumbnail:   it.BestThumbnail(),
		Description: models.TruncateDescription(it.Description, descriptionLimit),
		Official:    true,
		GeoBlocked:  append([]string(nil), e.trusted.GeoBlocked...),
		Relevance:   e.trusted.Relevance,
	}
}
