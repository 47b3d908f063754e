package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service-level collectors. A nil *Metrics records nothing.
type Metrics struct {
	extractions     *prometheus.CounterVec
	extractDuration *prometheus.HistogramVec
	asks            *prometheus.CounterVec
	askDuration     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		extractions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docqa_extractions_total",
				Help: "Document extractions by media type and outcome.",
			},
			[]string{"media_type", "outcome"},
		),
		extractDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docqa_extraction_duration_seconds",
				Help:    "Time spent staging and extracting an upload.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"media_type"},
		),
		asks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docqa_questions_total",
				Help: "Questions answered by outcome.",
			},
			[]string{"outcome"},
		),
		askDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "docqa_provider_request_duration_seconds",
				Help:    "Round trip time of question-answering provider calls.",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
			},
		),
	}

	for _, c := range []prometheus.Collector{m.extractions, m.extractDuration, m.asks, m.askDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeExtraction(mediaType, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.extractions.WithLabelValues(mediaType, outcome).Inc()
	m.extractDuration.WithLabelValues(mediaType).Observe(d.Seconds())
}

func (m *Metrics) observeAsk(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.asks.WithLabelValues(outcome).Inc()
	m.askDuration.Observe(d.Seconds())
}
