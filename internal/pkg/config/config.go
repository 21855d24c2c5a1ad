package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Logging  LoggingConfig  `yaml:"logging"`
	API      APIConfig      `yaml:"api"`
	Notify   NotifyConfig   `yaml:"notify"`
	Matching MatchingConfig `yaml:"matching"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Trusted  TrustedConfig  `yaml:"trusted_source"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // optional JSON log file
}

type APIConfig struct {
	Addr              string `yaml:"addr"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"` // e.g. "5s"
}

type NotifyConfig struct {
	TelegramBotToken string `yaml:"telegram_bot_token"`
	TelegramChatID   int64  `yaml:"telegram_chat_id"`
}

// MatchingConfig drives title → fixture resolution.
type MatchingConfig struct {
	Aliases       map[string]string `yaml:"aliases"`        // lowercase fragment -> canonical team name
	ToleranceDays int               `yaml:"tolerance_days"` // publish date vs fixture date window
}

// ScoringConfig holds the term lists behind the relevance gate and scorer.
// Channel/title checks are case-insensitive substring matches.
type ScoringConfig struct {
	Broadcasters       []string            `yaml:"broadcasters"`
	ClubChannels       []string            `yaml:"club_channels"`
	ReuploadPatterns   []string            `yaml:"reupload_patterns"`
	NonEnglishChannels []string            `yaml:"non_english_channels"`
	NonEnglishKeywords []string            `yaml:"non_english_keywords"`
	ExcludedTerms      []string            `yaml:"excluded_terms"`
	HighlightTerms     []string            `yaml:"highlight_terms"`
	GeoPatterns        map[string][]string `yaml:"geo_patterns"` // channel fragment -> blocked regions
	MaxVideos          int                 `yaml:"max_videos"`   // final list cap per fixture
}

// TrustedConfig describes the trusted enrichment source (an official
// broadcaster playlist). Its videos skip scoring and carry a fixed score.
type TrustedConfig struct {
	Channel    string   `yaml:"channel"`
	PlaylistID string   `yaml:"playlist_id"`
	Relevance  float64  `yaml:"relevance"`
	GeoBlocked []string `yaml:"geo_blocked"`
}

// Load reads config from a YAML file on top of Default(). Matching and
// scoring tables in the file replace the default tables wholesale.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
