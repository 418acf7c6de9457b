package services

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"time"

	yt "github.com/kkdai/youtube/v2"

	"ytblog-backend/internal/models"
)

// CaptionSegment is one timed unit of caption text.
type CaptionSegment struct {
	Text     string
	Start    time.Duration
	Duration time.Duration
}

// TranscriptTrack is one caption stream of a video in a single language.
type TranscriptTrack interface {
	LanguageCode() string
	Fetch(ctx context.Context) ([]CaptionSegment, error)
}

// CaptionSource lists the caption tracks of a video in upstream order.
type CaptionSource interface {
	ListTracks(ctx context.Context, videoID string) ([]TranscriptTrack, error)
}

const maxCaptionBytes = 10 * 1024 * 1024

type YouTubeService struct {
	httpClient *http.Client
	ytClient   *yt.Client
}

type timedTextXML struct {
	XMLName xml.Name  `xml:"transcript"`
	Texts   []textXML `xml:"text"`
}

type textXML struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

func NewYouTubeService(httpClient *http.Client) *YouTubeService {
	return &YouTubeService{
		httpClient: httpClient,
		ytClient:   &yt.Client{HTTPClient: httpClient},
	}
}

// ListTracks returns every caption track YouTube advertises for the video.
// videoID may also be a full watch, short or embed URL.
func (s *YouTubeService) ListTracks(ctx context.Context, videoID string) ([]TranscriptTrack, error) {
	video, err := s.ytClient.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return s.tracksFromVideo(video), nil
}

func (s *YouTubeService) tracksFromVideo(video *yt.Video) []TranscriptTrack {
	tracks := make([]TranscriptTrack, 0, len(video.CaptionTracks))
	for _, ct := range video.CaptionTracks {
		tracks = append(tracks, &youtubeTrack{caption: ct, httpClient: s.httpClient})
	}
	return tracks
}

// IsVideoUnavailable reports whether err means the video itself cannot be
// served (bad id, private, restricted, removed) as opposed to a transport or
// upstream failure.
func IsVideoUnavailable(err error) bool {
	switch {
	case errors.Is(err, yt.ErrInvalidCharactersInVideoID),
		errors.Is(err, yt.ErrVideoIDMinLength),
		errors.Is(err, yt.ErrVideoPrivate),
		errors.Is(err, yt.ErrLoginRequired),
		errors.Is(err, yt.ErrNotPlayableInEmbed):
		return true
	}
	var status *yt.ErrPlayabiltyStatus
	return errors.As(err, &status)
}

// GetVideoMetadata looks up title, channel, duration and caption languages.
func (s *YouTubeService) GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	video, err := s.ytClient.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, err
	}

	languages := make([]string, 0, len(video.CaptionTracks))
	for _, ct := range video.CaptionTracks {
		languages = append(languages, ct.LanguageCode)
	}

	return &models.VideoMetadata{
		VideoID:         video.ID,
		Title:           video.Title,
		Channel:         video.Author,
		Thumbnail:       fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", video.ID),
		DurationSeconds: int(video.Duration / time.Second),
		Languages:       languages,
	}, nil
}

type youtubeTrack struct {
	caption    yt.CaptionTrack
	httpClient *http.Client
}

func (t *youtubeTrack) LanguageCode() string { return t.caption.LanguageCode }

// Fetch downloads the track's timed-text XML and decodes it into segments.
func (t *youtubeTrack) Fetch(ctx context.Context) ([]CaptionSegment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.caption.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid caption URL: %w", err)
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch captions: upstream returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCaptionBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read captions: %w", err)
	}

	segments, err := parseCaptionsXML(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse captions XML: %w", err)
	}
	return segments, nil
}

// parseCaptionsXML keeps segment order. Elements without text are dropped;
// everything else is kept verbatim after entity unescaping.
func parseCaptionsXML(data []byte) ([]CaptionSegment, error) {
	var tt timedTextXML
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, err
	}

	segments := make([]CaptionSegment, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		if t.Text == "" {
			continue
		}
		segments = append(segments, CaptionSegment{
			Text:     html.UnescapeString(t.Text),
			Start:    parseSeconds(t.Start),
			Duration: parseSeconds(t.Dur),
		})
	}
	return segments, nil
}

func parseSeconds(s string) time.Duration {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}
