// Package telemetry exports Prometheus metrics for the classification pipeline.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume_category"

// Metrics holds the pipeline metrics.
type Metrics struct {
	Extractions        *prometheus.CounterVec
	ExtractionDuration *prometheus.HistogramVec
	ExtractedChars     prometheus.Histogram

	Predictions        *prometheus.CounterVec
	PredictionDuration prometheus.Histogram
}

// Provider owns a private registry so several providers (tests) can coexist.
type Provider struct {
	Registry *prometheus.Registry
	Metrics  *Metrics
}

// NewProvider registers pipeline, Go runtime and process metrics.
func NewProvider() *Provider {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Provider{Registry: reg, Metrics: initMetrics(promauto.With(reg))}
}

func initMetrics(f promauto.Factory) *Metrics {
	return &Metrics{
		Extractions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Documents run through text extraction by extension and outcome (ok, empty, unsupported)",
		}, []string{"extension", "outcome"}),
		ExtractionDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Time to extract text from one document",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"extension"}),
		ExtractedChars: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extracted_chars",
			Help:      "Characters of text extracted per document",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
		Predictions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Predicted categories",
		}, []string{"category"}),
		PredictionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time to clean, vectorize and classify one text",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// Handler returns the /metrics handler for this provider's registry.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{Registry: p.Registry})
}

// RecordExtraction records one extraction attempt.
func (p *Provider) RecordExtraction(ext, outcome string, d time.Duration, chars int) {
	if ext == "" {
		ext = "none"
	}
	p.Metrics.Extractions.WithLabelValues(ext, outcome).Inc()
	p.Metrics.ExtractionDuration.WithLabelValues(ext).Observe(d.Seconds())
	if outcome != "unsupported" {
		p.Metrics.ExtractedChars.Observe(float64(chars))
	}
}

// RecordPrediction records one classification.
func (p *Provider) RecordPrediction(label string, d time.Duration) {
	p.Metrics.Predictions.WithLabelValues(label).Inc()
	p.Metrics.PredictionDuration.Observe(d.Seconds())
}
