package models

import "fmt"

// RawVideoItem is one video record as produced by the platform's search or
// playlist APIs, already unwrapped from the response envelope by the
// collaborator that fetched it.
type RawVideoItem struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	ChannelTitle string               `json:"channelTitle"`
	ChannelID    string               `json:"channelId"`
	PublishedAt  string               `json:"publishedAt"`
	Thumbnails   map[string]Thumbnail `json:"thumbnails"`
	Description  string               `json:"description"`
}

// Thumbnail is one thumbnail variant of a video.
type Thumbnail struct {
	URL string `json:"url"`
}

// Validate reports whether the record carries the fields the matcher cannot
// work without. A failing record is dropped, not fatal.
func (it RawVideoItem) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("video item missing id (title %q)", it.Title)
	}
	if it.Title == "" {
		return fmt.Errorf("video item %s missing title", it.ID)
	}
	return nil
}

// BestThumbnail picks the largest available thumbnail variant.
func (it RawVideoItem) BestThumbnail() string {
	for _, size := range []string{"high", "medium", "default"} {
		if th, ok := it.Thumbnails[size]; ok && th.URL != "" {
			return th.URL
		}
	}
	return ""
}

// TruncateDescription caps a description at n characters for the stored record.
func TruncateDescription(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
