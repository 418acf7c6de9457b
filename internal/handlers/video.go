package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ytblog-backend/internal/models"
	"ytblog-backend/internal/services"
)

type videoLookup interface {
	GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error)
}

type VideoHandler struct {
	lookup videoLookup
	log    *zap.Logger
}

func NewVideoHandler(lookup videoLookup, log *zap.Logger) *VideoHandler {
	return &VideoHandler{lookup: lookup, log: log}
}

// GetVideo returns title, channel and caption languages for a video so a
// client can prefill the blog title.
func (h *VideoHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoId")

	meta, err := h.lookup.GetVideoMetadata(r.Context(), videoID)
	if err != nil {
		h.log.Warn("video lookup failed", zap.String("video_id", videoID), zap.Error(err))
		status := http.StatusBadGateway
		if services.IsVideoUnavailable(err) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResp("Video lookup failed: "+err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, meta)
}
