package models

// DefaultTitle is used when a generate request carries no title.
const DefaultTitle = "Video Content"

type GenerateRequest struct {
	VideoID string  `json:"videoId"`
	Title   *string `json:"title"` // nil when omitted or null
}

// TitleOrDefault returns the request title, falling back to DefaultTitle
// only when the field was absent. An explicit empty title is kept.
func (r GenerateRequest) TitleOrDefault() string {
	if r.Title == nil {
		return DefaultTitle
	}
	return *r.Title
}

type GenerateResponse struct {
	Blog string `json:"blog"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
