package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"ytblog-backend/internal/config"
	"ytblog-backend/internal/handlers"
	"ytblog-backend/internal/logger"
	"ytblog-backend/internal/metrics"
	"ytblog-backend/internal/router"
	"ytblog-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Initialize Logger ────
	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("✗ Logger initialization failed: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("🚀 Starting YouTube Blog Generator API", zap.String("env", cfg.Env))

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, zlog)
	if err != nil {
		zlog.Fatal("✗ Gemini client initialization failed", zap.Error(err))
	}
	defer geminiService.Close()
	zlog.Info("✓ Gemini client initialized", zap.String("model", cfg.GeminiModel))

	// ──── Step 4: Initialize Transcript Resolver ────
	// No client timeout: upstream calls are bounded only by the request context.
	youtubeService := services.NewYouTubeService(&http.Client{})
	resolver := services.NewTranscriptResolver(youtubeService, zlog)

	// ──── Step 5: Initialize Handlers ────
	recorder := metrics.NewRecorder()
	blogHandler := handlers.NewBlogHandler(resolver, geminiService, recorder, zlog)
	videoHandler := handlers.NewVideoHandler(youtubeService, zlog)

	// ──── Step 6: Start HTTP Server ────
	r := router.New(blogHandler, videoHandler, recorder, zlog)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		zlog.Fatal("Listen failed", zap.String("addr", server.Addr), zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	zlog.Info("✓ API ready", zap.String("addr", fmt.Sprintf("http://localhost:%s", cfg.Port)))

	// Graceful shutdown: serve returns only after in-flight requests drain.
	if err := serve(server, ln, sigChan, 30*time.Second, zlog); err != nil {
		zlog.Fatal("Server error", zap.Error(err))
	}
	zlog.Info("Server stopped")
}
