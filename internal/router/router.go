package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ytblog-backend/internal/handlers"
	"ytblog-backend/internal/metrics"
	"ytblog-backend/internal/middleware"
)

func New(
	blogHandler *handlers.BlogHandler,
	videoHandler *handlers.VideoHandler,
	recorder *metrics.Recorder,
	log *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())

	r.Get("/health", blogHandler.Health)
	r.Post("/generate", blogHandler.Generate)
	r.Get("/video/{videoId}", videoHandler.GetVideo)

	r.Method(http.MethodGet, "/metrics", recorder.Handler())

	return r
}
