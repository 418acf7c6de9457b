package models

type VideoMetadata struct {
	VideoID         string   `json:"videoId"`
	Title           string   `json:"title"`
	Channel         string   `json:"channel"`
	Thumbnail       string   `json:"thumbnail"`
	DurationSeconds int      `json:"durationSeconds"`
	Languages       []string `json:"languages"` // caption track language codes, listing order
}
