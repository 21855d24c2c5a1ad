package models

// Season is the authoritative fixture list for one league season,
// organised by gameweek in schedule order.
type Season struct {
	Season      string     `json:"season"`
	ProcessedAt string     `json:"processedAt,omitempty"`
	Gameweeks   []Gameweek `json:"gameweeks"`
}

// Gameweek groups the fixtures played in one round.
type Gameweek struct {
	Number   int       `json:"gameweek"`
	Dates    string    `json:"dates,omitempty"`
	Fixtures []Fixture `json:"fixtures"`
}

// Fixture is one scheduled match. Home/away order matters for display only;
// matching identity is the unordered team pair (see PairKey).
type Fixture struct {
	Home       string  `json:"home"`
	Away       string  `json:"away"`
	Score      string  `json:"score,omitempty"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Videos     []Video `json:"videos,omitempty"`
	VideoCount int     `json:"videoCount"`
}

// PrependVideo puts v at the front of the fixture's video list.
// Trusted-source videos go first so they keep priority through the merge.
func (f *Fixture) PrependVideo(v Video) {
	f.Videos = append([]Video{v}, f.Videos...)
	f.VideoCount = len(f.Videos)
}

// Video is one ranked video candidate attached to a fixture.
type Video struct {
	ID          string   `json:"videoId"`
	Title       string   `json:"title"`
	Channel     string   `json:"channel"`
	ChannelID   string   `json:"channelId"`
	PublishedAt string   `json:"publishedAt"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	Official    bool     `json:"isOfficial"`
	GeoBlocked  []string `json:"geoBlocked"`
	Relevance   float64  `json:"relevanceScore"`
}
