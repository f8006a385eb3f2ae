package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the extraction pipeline's Prometheus collectors.
type Metrics struct {
	CutRequests     prometheus.Counter
	TracesAssembled prometheus.Counter
	SamplesRead     prometheus.Counter
	EmptyResults    prometheus.Counter
	ExtractLatency  prometheus.Histogram
}

// New registers the extraction metrics with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CutRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waveform_cut_requests_total",
			Help: "Cut requests produced by the cut-list builder.",
		}),
		TracesAssembled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waveform_traces_assembled_total",
			Help: "Output traces assembled from the archive.",
		}),
		SamplesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waveform_samples_read_total",
			Help: "Raw samples read from the archive.",
		}),
		EmptyResults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waveform_empty_results_total",
			Help: "Extraction requests that produced no traces.",
		}),
		ExtractLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waveform_extract_duration_seconds",
			Help:    "Wall time of one extraction request.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}

	reg.MustRegister(m.CutRequests, m.TracesAssembled, m.SamplesRead, m.EmptyResults, m.ExtractLatency)
	return m
}
