package config

// Default returns the built-in configuration: the Premier League alias table
// and the channel/term lists the scorer ships with. A YAML config can
// replace any of it.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		API: APIConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: "5s",
		},
		Matching: MatchingConfig{
			ToleranceDays: 3,
			Aliases:       defaultAliases(),
		},
		Scoring: ScoringConfig{
			MaxVideos: 5,
			Broadcasters: []string{
				"premier league",
				"sky sports",
				"nbc sports",
				"bein sports",
				"bt sport",
				"tnt sports",
				"match of the day",
			},
			ClubChannels: []string{
				"arsenal", "aston villa", "afc bournemouth", "brentford",
				"brighton", "chelsea", "crystal palace", "everton", "fulham",
				"ipswich town", "leicester city", "liverpool fc", "man city",
				"manchester united", "newcastle united", "nottingham forest",
				"southampton fc", "tottenham hotspur", "west ham united",
				"wolves",
			},
			ReuploadPatterns: []string{
				"reupload", "re-upload", "replays", "footy clips", "mirror",
			},
			NonEnglishChannels: []string{
				"bein sports arabia", "espn deportes", "sky sport de",
				"sport tv portugal", "dazn espa", "telemundo",
			},
			NonEnglishKeywords: []string{
				"resumen", "goles", "melhores momentos", "sintesi",
				"zusammenfassung", "maç özeti",
			},
			ExcludedTerms: []string{
				"fifa", "pes", "efootball", "fm24", "career mode",
				"prediction", "preview", "rumour", "fan cam",
			},
			HighlightTerms: []string{
				"highlights", "goals", "extended", "all goals", "match",
			},
			GeoPatterns: map[string][]string{
				"sky sports":  {"US", "CA"},
				"nbc sports":  {"GB", "IE"},
				"bt sport":    {"US", "CA"},
				"tnt sports":  {"US", "CA"},
				"bein sports": {},
			},
		},
		Trusted: TrustedConfig{
			Channel:    "Sky Sports",
			PlaylistID: "PLISuFiQTdKDWc1PjlgqIAm1Bzc38MoLa6",
			Relevance:  0.95,
			GeoBlocked: []string{"US", "CA"},
		},
	}
}

// defaultAliases maps lowercase title fragments to canonical fixture team
// names. Longer aliases win at resolve time, so "manchester city" matches
// before "man city" or "city".
func defaultAliases() map[string]string {
	return map[string]string{
		"arsenal":                   "Arsenal",
		"aston villa":               "Aston Villa",
		"villa":                     "Aston Villa",
		"afc bournemouth":           "Bournemouth",
		"bournemouth":               "Bournemouth",
		"brentford":                 "Brentford",
		"brighton & hove albion":    "Brighton",
		"brighton and hove albion":  "Brighton",
		"brighton":                  "Brighton",
		"chelsea":                   "Chelsea",
		"crystal palace":            "Crystal Palace",
		"palace":                    "Crystal Palace",
		"everton":                   "Everton",
		"fulham":                    "Fulham",
		"ipswich town":              "Ipswich",
		"ipswich":                   "Ipswich",
		"leicester city":            "Leicester",
		"leicester":                 "Leicester",
		"liverpool":                 "Liverpool",
		"manchester city":           "Manchester City",
		"man city":                  "Manchester City",
		"manchester united":         "Manchester United",
		"man united":                "Manchester United",
		"man utd":                   "Manchester United",
		"newcastle united":          "Newcastle United",
		"newcastle":                 "Newcastle United",
		"nottingham forest":         "Nottingham Forest",
		"nott'm forest":             "Nottingham Forest",
		"nottm forest":              "Nottingham Forest",
		"n.forest":                  "Nottingham Forest",
		"n forest":                  "Nottingham Forest",
		"forest":                    "Nottingham Forest",
		"southampton":               "Southampton",
		"saints":                    "Southampton",
		"tottenham hotspur":         "Tottenham",
		"tottenham":                 "Tottenham",
		"spurs":                     "Tottenham",
		"west ham united":           "West Ham",
		"west ham":                  "West Ham",
		"wolverhampton wanderers":   "Wolves",
		"wolverhampton":             "Wolves",
		"wolves":                    "Wolves",
	}
}
