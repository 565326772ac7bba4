package gen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-bench/internal/observability"
	"github.com/couchcryptid/weather-bench/internal/weather"
)

// ChunkWriter persists generated chunks and the run manifest.
type ChunkWriter interface {
	WriteChunk(index int, records []weather.Record) (weather.ChunkInfo, error)
	WriteManifest(m weather.Manifest) error
}

// RowPublisher streams generated rows to an external sink.
type RowPublisher interface {
	PublishBatch(ctx context.Context, records []weather.Record) error
}

// Runner drives a full generation run: synthesize each chunk, write it,
// optionally publish its rows, and finish with a manifest.
type Runner struct {
	gen       *Generator
	writer    ChunkWriter
	publisher RowPublisher // nil disables publishing
	batchSize int
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
	ready     atomic.Bool
}

// NewRunner creates a Runner. Pass a nil publisher to write CSV only.
func NewRunner(g *Generator, w ChunkWriter, p RowPublisher, publishBatchSize int, logger *slog.Logger, metrics *observability.Metrics) *Runner {
	if publishBatchSize <= 0 {
		publishBatchSize = 500
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}
	return &Runner{
		gen:       g,
		writer:    w,
		publisher: p,
		batchSize: publishBatchSize,
		logger:    logger,
		metrics:   metrics,
		clock:     g.clock,
	}
}

// CheckReadiness returns nil once the first chunk has been written.
func (r *Runner) CheckReadiness(_ context.Context) error {
	if !r.ready.Load() {
		return errors.New("no chunk written yet")
	}
	return nil
}

// Run executes the plan. Cancellation is honored between chunks; an
// interrupted run leaves whatever chunks completed and no manifest, which is
// the documented crash behavior for this tool.
func (r *Runner) Run(ctx context.Context, plan Plan) (weather.Manifest, error) {
	r.logger.Info("generation run starting",
		"total_rows", plan.TotalRows,
		"chunk_size", plan.ChunkSize,
		"num_chunks", plan.NumChunks,
		"seed", r.gen.Seed(),
		"city_pool", len(r.gen.Cities()),
	)
	if plan.Remainder > 0 {
		r.logger.Warn("row count not divisible by chunk size, trailing rows will not be generated",
			"dropped_rows", plan.Remainder)
	}

	r.metrics.GeneratorRunning.Set(1)
	defer r.metrics.GeneratorRunning.Set(0)

	start := r.clock.Now()
	chunks := make([]weather.ChunkInfo, 0, plan.NumChunks)

	for i := 0; i < plan.NumChunks; i++ {
		select {
		case <-ctx.Done():
			r.logger.Info("generation cancelled", "chunks_written", len(chunks))
			return weather.Manifest{}, ctx.Err()
		default:
		}

		info, err := r.processChunk(ctx, i, plan.ChunkSize)
		if err != nil {
			return weather.Manifest{}, fmt.Errorf("chunk %d: %w", i, err)
		}
		chunks = append(chunks, info)
		r.ready.Store(true)

		r.logger.Info("chunk complete",
			"chunk", fmt.Sprintf("%d/%d", i+1, plan.NumChunks),
			"file", info.File,
			"size_mb", float64(info.Bytes)/(1024*1024),
		)
	}

	manifest := weather.Manifest{
		RunID:     r.gen.RunID(),
		Seed:      r.gen.Seed(),
		TotalRows: plan.NumChunks * plan.ChunkSize,
		ChunkSize: plan.ChunkSize,
		NumChunks: plan.NumChunks,
		CityPool:  len(r.gen.Cities()),
		Columns:   weather.Columns(),
		CreatedAt: r.clock.Now().UTC(),
		Chunks:    chunks,
	}
	if err := r.writer.WriteManifest(manifest); err != nil {
		return weather.Manifest{}, fmt.Errorf("writing manifest: %w", err)
	}

	elapsed := r.clock.Since(start)
	attrs := []any{
		"run_id", manifest.RunID,
		"total_rows", manifest.TotalRows,
		"total_bytes", manifest.TotalBytes(),
		"elapsed", elapsed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		attrs = append(attrs, "rows_per_sec", int(float64(manifest.TotalRows)/secs))
	}
	r.logger.Info("generation run complete", attrs...)

	return manifest, nil
}

func (r *Runner) processChunk(ctx context.Context, index, size int) (weather.ChunkInfo, error) {
	records := r.gen.Chunk(size)

	writeStart := r.clock.Now()
	info, err := r.writer.WriteChunk(index, records)
	if err != nil {
		return weather.ChunkInfo{}, err
	}
	r.metrics.ChunksWritten.Inc()
	r.metrics.BytesWritten.Add(float64(info.Bytes))
	r.metrics.ChunkWriteDuration.Observe(r.clock.Since(writeStart).Seconds())

	if r.publisher != nil {
		if err := r.publishRows(ctx, records); err != nil {
			r.metrics.PublishErrors.Inc()
			return weather.ChunkInfo{}, fmt.Errorf("publishing rows: %w", err)
		}
	}

	return info, nil
}

// publishRows streams the chunk to the sink in bounded batches so a single
// WriteMessages call never holds the whole chunk.
func (r *Runner) publishRows(ctx context.Context, records []weather.Record) error {
	for start := 0; start < len(records); start += r.batchSize {
		end := start + r.batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := r.publisher.PublishBatch(ctx, records[start:end]); err != nil {
			return err
		}
		r.metrics.RowsPublished.Add(float64(end - start))
	}
	return nil
}
