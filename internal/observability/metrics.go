package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a
// generation run. A multi-hour 100M-row run is watched through /metrics,
// so progress counters are first-class.
type Metrics struct {
	RowsGenerated prometheus.Counter
	ChunksWritten prometheus.Counter
	BytesWritten  prometheus.Counter
	RowsPublished prometheus.Counter
	PublishErrors prometheus.Counter

	ChunkGenDuration   prometheus.Histogram
	ChunkWriteDuration prometheus.Histogram

	GeneratorRunning prometheus.Gauge
}

// NewMetrics creates and registers all generator metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bench",
			Name:      "rows_generated_total",
			Help:      "Total synthetic rows generated.",
		}),
		ChunksWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bench",
			Name:      "chunks_written_total",
			Help:      "Total chunk CSV files written.",
		}),
		BytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bench",
			Name:      "bytes_written_total",
			Help:      "Total bytes written across chunk files.",
		}),
		RowsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bench",
			Name:      "rows_published_total",
			Help:      "Total rows published to the Kafka sink.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_bench",
			Name:      "publish_errors_total",
			Help:      "Total failed Kafka publish batches.",
		}),
		ChunkGenDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_bench",
			Name:      "chunk_generation_duration_seconds",
			Help:      "Duration of synthesizing one chunk in memory.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}),
		ChunkWriteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_bench",
			Name:      "chunk_write_duration_seconds",
			Help:      "Duration of writing one chunk file to disk.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}),
		GeneratorRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_bench",
			Name:      "generator_running",
			Help:      "1 while a generation run is active, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.RowsGenerated,
		m.ChunksWritten,
		m.BytesWritten,
		m.RowsPublished,
		m.PublishErrors,
		m.ChunkGenDuration,
		m.ChunkWriteDuration,
		m.GeneratorRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsGenerated:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_bench", Name: "rows_generated_total"}),
		ChunksWritten:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_bench", Name: "chunks_written_total"}),
		BytesWritten:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_bench", Name: "bytes_written_total"}),
		RowsPublished:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_bench", Name: "rows_published_total"}),
		PublishErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_bench", Name: "publish_errors_total"}),
		ChunkGenDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_bench", Name: "chunk_generation_duration_seconds"}),
		ChunkWriteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_bench", Name: "chunk_write_duration_seconds"}),
		GeneratorRunning:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_bench", Name: "generator_running"}),
	}
}
