package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"github.com/vkaratov/matchreel/internal/pkg/config"
	"github.com/vkaratov/matchreel/internal/pkg/models"
)

// Ensure PostgresStore implements FixtureStore
var _ FixtureStore = (*PostgresStore)(nil)

// PostgresStore stores enriched fixtures in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the connection and initializes the schema.
func NewPostgresStore(cfg *config.PostgresConfig) (*PostgresStore, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL fixture store initialized")
	return store, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS fixtures (
		id SERIAL PRIMARY KEY,
		season VARCHAR(16) NOT NULL,
		gameweek INTEGER NOT NULL,
		pair_key VARCHAR(200) NOT NULL,
		home VARCHAR(100) NOT NULL,
		away VARCHAR(100) NOT NULL,
		match_date VARCHAR(10) NOT NULL,
		score VARCHAR(16) NOT NULL DEFAULT '',
		video_count INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE(season, pair_key, match_date)
	);

	CREATE TABLE IF NOT EXISTS fixture_videos (
		id SERIAL PRIMARY KEY,
		fixture_id INTEGER NOT NULL REFERENCES fixtures(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		video_id VARCHAR(32) NOT NULL,
		title VARCHAR(500) NOT NULL,
		channel VARCHAR(200) NOT NULL,
		channel_id VARCHAR(64) NOT NULL DEFAULT '',
		published_at VARCHAR(32) NOT NULL DEFAULT '',
		thumbnail TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		is_official BOOLEAN NOT NULL DEFAULT FALSE,
		geo_blocked TEXT[] NOT NULL DEFAULT '{}',
		relevance DECIMAL(4, 3) NOT NULL,
		UNIQUE(fixture_id, video_id)
	);

	CREATE INDEX IF NOT EXISTS idx_fixtures_pair_key ON fixtures(pair_key);
	CREATE INDEX IF NOT EXISTS idx_fixtures_match_date ON fixtures(match_date);
	CREATE INDEX IF NOT EXISTS idx_fixture_videos_fixture_id ON fixture_videos(fixture_id);
	`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

// SaveSeason upserts all fixtures and replaces their video rows in one
// transaction per fixture, so a failed fixture never leaves half a list.
func (s *PostgresStore) SaveSeason(ctx context.Context, season *models.Season) error {
	saved := 0
	for _, gw := range season.Gameweeks {
		for i := range gw.Fixtures {
			if err := s.saveFixture(ctx, season.Season, gw.Number, &gw.Fixtures[i]); err != nil {
				return fmt.Errorf("failed to save fixture %s vs %s (%s): %w",
					gw.Fixtures[i].Home, gw.Fixtures[i].Away, gw.Fixtures[i].Date, err)
			}
			saved++
		}
	}
	slog.Info("Season saved to PostgreSQL", "season", season.Season, "fixtures", saved)
	return nil
}

func (s *PostgresStore) saveFixture(ctx context.Context, season string, gameweek int, fx *models.Fixture) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var fixtureID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO fixtures (season, gameweek, pair_key, home, away, match_date, score, video_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (season, pair_key, match_date) DO UPDATE
		SET gameweek = EXCLUDED.gameweek,
		    score = EXCLUDED.score,
		    video_count = EXCLUDED.video_count,
		    updated_at = NOW()
		RETURNING id`,
		season, gameweek, models.PairKey(fx.Home, fx.Away),
		fx.Home, fx.Away, fx.Date, fx.Score, len(fx.Videos),
	).Scan(&fixtureID)
	if err != nil {
		return fmt.Errorf("failed to upsert fixture: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM fixture_videos WHERE fixture_id = $1`, fixtureID); err != nil {
		return fmt.Errorf("failed to clear fixture videos: %w", err)
	}

	for pos, v := range fx.Videos {
		geo := v.GeoBlocked
		if geo == nil {
			geo = []string{} // pq.Array(nil) would write NULL
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO fixture_videos (
				fixture_id, position, video_id, title, channel, channel_id,
				published_at, thumbnail, description, is_official, geo_blocked, relevance
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			fixtureID, pos, v.ID, v.Title, v.Channel, v.ChannelID,
			v.PublishedAt, v.Thumbnail, v.Description, v.Official,
			pq.Array(geo), v.Relevance,
		); err != nil {
			return fmt.Errorf("failed to insert video %s: %w", v.ID, err)
		}
	}

	return tx.Commit()
}

// fixtureRow is one fixtures table row; the id links its video rows.
type fixtureRow struct {
	id       int
	gameweek int
	fx       models.Fixture
}

// LoadSeason reads a previously saved season back. A fresh process with only
// a DSN can serve persisted fixtures without the JSON feed.
func (s *PostgresStore) LoadSeason(ctx context.Context, season string) (*models.Season, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, gameweek, home, away, match_date, score
		FROM fixtures
		WHERE season = $1
		ORDER BY gameweek, match_date, id`, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixtures: %w", err)
	}
	defer rows.Close()

	var fixtures []fixtureRow
	for rows.Next() {
		var row fixtureRow
		if err := rows.Scan(&row.id, &row.gameweek,
			&row.fx.Home, &row.fx.Away, &row.fx.Date, &row.fx.Score); err != nil {
			return nil, fmt.Errorf("failed to scan fixture: %w", err)
		}
		fixtures = append(fixtures, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixtures: %w", err)
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("season %s not found in storage", season)
	}

	videos, err := s.loadVideos(ctx, season)
	if err != nil {
		return nil, err
	}

	loaded := assembleSeason(season, fixtures, videos)
	slog.Info("Season loaded from PostgreSQL",
		"season", season, "fixtures", len(fixtures))
	return loaded, nil
}

func (s *PostgresStore) loadVideos(ctx context.Context, season string) (map[int][]models.Video, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.fixture_id, v.video_id, v.title, v.channel, v.channel_id,
		       v.published_at, v.thumbnail, v.description, v.is_official,
		       v.geo_blocked, v.relevance
		FROM fixture_videos v
		JOIN fixtures f ON f.id = v.fixture_id
		WHERE f.season = $1
		ORDER BY v.fixture_id, v.position`, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixture videos: %w", err)
	}
	defer rows.Close()

	videos := make(map[int][]models.Video)
	for rows.Next() {
		var fixtureID int
		var v models.Video
		var geo pq.StringArray
		if err := rows.Scan(&fixtureID, &v.ID, &v.Title, &v.Channel, &v.ChannelID,
			&v.PublishedAt, &v.Thumbnail, &v.Description, &v.Official,
			&geo, &v.Relevance); err != nil {
			return nil, fmt.Errorf("failed to scan fixture video: %w", err)
		}
		if len(geo) > 0 {
			v.GeoBlocked = []string(geo)
		}
		videos[fixtureID] = append(videos[fixtureID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixture videos: %w", err)
	}
	return videos, nil
}

// assembleSeason regroups flat fixture rows (ordered by gameweek) into the
// season structure and attaches each fixture's ranked videos.
func assembleSeason(name string, fixtures []fixtureRow, videos map[int][]models.Video) *models.Season {
	season := &models.Season{Season: name}
	for _, row := range fixtures {
		fx := row.fx
		fx.Videos = videos[row.id]
		fx.VideoCount = len(fx.Videos)

		n := len(season.Gameweeks)
		if n == 0 || season.Gameweeks[n-1].Number != row.gameweek {
			season.Gameweeks = append(season.Gameweeks, models.Gameweek{Number: row.gameweek})
			n++
		}
		gw := &season.Gameweeks[n-1]
		gw.Fixtures = append(gw.Fixtures, fx)
	}
	return season
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
