package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"ytblog-backend/internal/metrics"
	"ytblog-backend/internal/middleware"
	"ytblog-backend/internal/models"
)

const healthStatus = "API is running"

type transcriptResolver interface {
	Resolve(ctx context.Context, videoID string) (string, error)
}

type blogGenerator interface {
	GenerateBlog(ctx context.Context, transcript, title string) (string, error)
}

type BlogHandler struct {
	resolver  transcriptResolver
	generator blogGenerator
	metrics   *metrics.Recorder
	log       *zap.Logger
}

func NewBlogHandler(resolver transcriptResolver, generator blogGenerator, recorder *metrics.Recorder, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		resolver:  resolver,
		generator: generator,
		metrics:   recorder,
		log:       log,
	}
}

func (h *BlogHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: healthStatus})
}

// Generate resolves the transcript, then asks the model for a blog post.
// Transcript failures are client errors, generation failures server errors.
func (h *BlogHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.RecordOutcome(metrics.OutcomeInvalidRequest)
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("Invalid request body: "+err.Error(), r))
		return
	}

	videoID := req.VideoID
	if videoID == "" {
		h.metrics.RecordOutcome(metrics.OutcomeInvalidRequest)
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("videoId is required", r))
		return
	}

	log := h.log.With(
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("video_id", videoID),
	)

	start := time.Now()
	transcript, err := h.resolver.Resolve(r.Context(), videoID)
	h.metrics.ObserveUpstream(metrics.StageTranscript, start)
	if err != nil {
		log.Warn("transcript fetch failed", zap.Error(err))
		h.metrics.RecordOutcome(metrics.OutcomeTranscriptError)
		handleServiceError(w, r, err)
		return
	}
	h.metrics.ObserveTranscript(transcript)

	title := req.TitleOrDefault()

	start = time.Now()
	blog, err := h.generator.GenerateBlog(r.Context(), transcript, title)
	h.metrics.ObserveUpstream(metrics.StageGeneration, start)
	if err != nil {
		h.metrics.RecordOutcome(metrics.OutcomeGenerationError)
		handleServiceError(w, r, err)
		return
	}

	log.Info("blog generated",
		zap.Int("transcript_chars", utf8.RuneCountInString(transcript)),
		zap.Int("blog_chars", utf8.RuneCountInString(blog)),
	)
	h.metrics.RecordOutcome(metrics.OutcomeSuccess)
	writeJSON(w, http.StatusOK, models.GenerateResponse{Blog: blog})
}
