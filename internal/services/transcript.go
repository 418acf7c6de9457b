package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const preferredLanguagePrefix = "en"

const noTranscriptMessage = "No transcript available for this video"

// TranscriptResolver turns a video id into one transcript string.
type TranscriptResolver struct {
	source CaptionSource
	log    *zap.Logger
}

func NewTranscriptResolver(source CaptionSource, log *zap.Logger) *TranscriptResolver {
	return &TranscriptResolver{source: source, log: log}
}

// Resolve picks the first English track, or the first track when none is
// English, and joins its segment texts with single spaces. Every failure is
// returned as *TranscriptError.
func (r *TranscriptResolver) Resolve(ctx context.Context, videoID string) (string, error) {
	tracks, err := r.source.ListTracks(ctx, videoID)
	if err != nil {
		return "", &TranscriptError{Message: err.Error()}
	}

	track := selectTrack(tracks)
	if track == nil {
		return "", &TranscriptError{Message: noTranscriptMessage}
	}

	r.log.Debug("fetching transcript track",
		zap.String("video_id", videoID),
		zap.String("language", track.LanguageCode()),
		zap.Int("tracks", len(tracks)),
	)

	segments, err := track.Fetch(ctx)
	if err != nil {
		return "", &TranscriptError{Message: err.Error()}
	}

	return joinSegments(segments), nil
}

func selectTrack(tracks []TranscriptTrack) TranscriptTrack {
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode(), preferredLanguagePrefix) {
			return t
		}
	}
	if len(tracks) > 0 {
		return tracks[0]
	}
	return nil
}

func joinSegments(segments []CaptionSegment) string {
	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}
	return strings.Join(texts, " ")
}
