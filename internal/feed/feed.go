// Package feed loads collaborator-produced inputs: the season fixture list
// and dumps of video-platform API responses. The network fetching itself
// (search queries, playlist pagination, quota) happens outside this repo;
// feed only decodes what a collaborator already pulled.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vkaratov/matchreel/internal/pkg/models"
)

// LoadSeason reads the authoritative season fixture list.
func LoadSeason(path string) (*models.Season, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	var season models.Season
	if err := json.Unmarshal(data, &season); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures file: %w", err)
	}
	if len(season.Gameweeks) == 0 {
		return nil, fmt.Errorf("fixtures file %s contains no gameweeks", path)
	}
	return &season, nil
}

// PlaylistFile serves playlist items from a response dump.
type PlaylistFile struct {
	items []models.RawVideoItem
}

type playlistDump struct {
	Items []models.RawVideoItem `json:"items"`
}

// OpenPlaylistFile decodes a playlist dump: either {"items": [...]} or a
// bare item array.
func OpenPlaylistFile(path string) (*PlaylistFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist file: %w", err)
	}

	var dump playlistDump
	if err := json.Unmarshal(data, &dump); err != nil {
		if err := json.Unmarshal(data, &dump.Items); err != nil {
			return nil, fmt.Errorf("failed to parse playlist file: %w", err)
		}
	}
	return &PlaylistFile{items: dump.Items}, nil
}

// PlaylistItems implements enricher.PlaylistSource.
func (p *PlaylistFile) PlaylistItems(_ context.Context) ([]models.RawVideoItem, error) {
	return p.items, nil
}

// SearchDumpFile serves per-fixture search results from a response dump.
type SearchDumpFile struct {
	byPair map[string][]searchResult
}

type searchResult struct {
	Home  string                `json:"home"`
	Away  string                `json:"away"`
	Date  string                `json:"date"`
	Items []models.RawVideoItem `json:"items"`
}

type searchDump struct {
	Results []searchResult `json:"results"`
}

// OpenSearchDumpFile decodes a search dump: {"results": [{home, away,
// date, items}, ...]}.
func OpenSearchDumpFile(path string) (*SearchDumpFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read search dump: %w", err)
	}
	var dump searchDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to parse search dump: %w", err)
	}

	f := &SearchDumpFile{byPair: make(map[string][]searchResult, len(dump.Results))}
	for _, res := range dump.Results {
		key := models.PairKey(res.Home, res.Away)
		f.byPair[key] = append(f.byPair[key], res)
	}
	return f, nil
}

// FixtureCandidates implements collector.CandidateSource. Results are keyed
// by the unordered team pair; when the pair has several dumped searches
// (two legs), the fixture date picks the right one.
func (f *SearchDumpFile) FixtureCandidates(_ context.Context, fx *models.Fixture) ([]models.RawVideoItem, error) {
	results := f.byPair[models.PairKey(fx.Home, fx.Away)]
	if len(results) == 0 {
		return nil, nil
	}
	for _, res := range results {
		if res.Date == fx.Date {
			return res.Items, nil
		}
	}
	if len(results) == 1 && results[0].Date == "" {
		return results[0].Items, nil
	}
	return nil, nil
}
