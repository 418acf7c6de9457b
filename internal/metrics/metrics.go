package metrics

import (
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generate request outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidRequest  = "invalid_request"
	OutcomeTranscriptError = "transcript_error"
	OutcomeGenerationError = "generation_error"
)

// Upstream stages.
const (
	StageTranscript = "transcript"
	StageGeneration = "generation"
)

// Recorder owns a private registry so tests and multiple servers in one
// process do not collide on the global one.
type Recorder struct {
	registry *prometheus.Registry

	generateRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	transcriptChars  prometheus.Histogram
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		generateRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ytblog_generate_requests_total",
				Help: "Total number of blog generation requests by outcome",
			},
			[]string{"outcome"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ytblog_upstream_duration_seconds",
				Help:    "Duration of upstream calls in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"stage"},
		),
		transcriptChars: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ytblog_transcript_chars",
				Help:    "Length of resolved transcripts in characters",
				Buckets: prometheus.ExponentialBuckets(500, 2, 10),
			},
		),
	}

	reg.MustRegister(
		r.generateRequests,
		r.upstreamDuration,
		r.transcriptChars,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Recorder) RecordOutcome(outcome string) {
	r.generateRequests.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveUpstream(stage string, start time.Time) {
	r.upstreamDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func (r *Recorder) ObserveTranscript(transcript string) {
	r.transcriptChars.Observe(float64(utf8.RuneCountInString(transcript)))
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
