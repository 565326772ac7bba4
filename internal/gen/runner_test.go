package gen_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-bench/internal/gen"
	"github.com/couchcryptid/weather-bench/internal/observability"
	"github.com/couchcryptid/weather-bench/internal/weather"
)

type memWriter struct {
	chunks   [][]weather.Record
	manifest *weather.Manifest

	failChunk int // fail WriteChunk at this index; -1 disables
}

func newMemWriter() *memWriter {
	return &memWriter{failChunk: -1}
}

func (w *memWriter) WriteChunk(index int, records []weather.Record) (weather.ChunkInfo, error) {
	if index == w.failChunk {
		return weather.ChunkInfo{}, errors.New("disk full")
	}
	w.chunks = append(w.chunks, records)
	return weather.ChunkInfo{
		File:  fmt.Sprintf("weather_data_part_%02d.csv", index),
		Rows:  len(records),
		Bytes: int64(len(records) * 40),
	}, nil
}

func (w *memWriter) WriteManifest(m weather.Manifest) error {
	w.manifest = &m
	return nil
}

type memPublisher struct {
	batches [][]weather.Record
	err     error
}

func (p *memPublisher) PublishBatch(_ context.Context, records []weather.Record) error {
	if p.err != nil {
		return p.err
	}
	p.batches = append(p.batches, records)
	return nil
}

func newTestRunner(w gen.ChunkWriter, p gen.RowPublisher, batchSize int) *gen.Runner {
	g := gen.New(gen.Options{Seed: 11, CityPool: 10})
	return gen.NewRunner(g, w, p, batchSize, slog.Default(), observability.NewMetricsForTesting())
}

func TestRunner_WritesPlannedChunksAndManifest(t *testing.T) {
	w := newMemWriter()
	r := newTestRunner(w, nil, 0)

	plan, err := gen.PlanChunks(60, 20)
	require.NoError(t, err)

	manifest, err := r.Run(t.Context(), plan)
	require.NoError(t, err)

	require.Len(t, w.chunks, 3)
	for _, chunk := range w.chunks {
		assert.Len(t, chunk, 20)
	}

	require.NotNil(t, w.manifest)
	assert.Equal(t, manifest, *w.manifest)
	assert.NotEmpty(t, manifest.RunID)
	assert.Equal(t, uint64(11), manifest.Seed)
	assert.Equal(t, 60, manifest.TotalRows)
	assert.Equal(t, 20, manifest.ChunkSize)
	assert.Equal(t, 3, manifest.NumChunks)
	assert.Equal(t, 10, manifest.CityPool)
	assert.Equal(t, weather.Columns(), manifest.Columns)
	require.Len(t, manifest.Chunks, 3)
	assert.Equal(t, "weather_data_part_00.csv", manifest.Chunks[0].File)
	assert.Equal(t, int64(3*20*40), manifest.TotalBytes())
}

func TestRunner_ReadinessFlipsAfterFirstChunk(t *testing.T) {
	w := newMemWriter()
	r := newTestRunner(w, nil, 0)

	require.Error(t, r.CheckReadiness(t.Context()))

	plan, err := gen.PlanChunks(10, 10)
	require.NoError(t, err)
	_, err = r.Run(t.Context(), plan)
	require.NoError(t, err)

	assert.NoError(t, r.CheckReadiness(t.Context()))
}

func TestRunner_PublishesInBatches(t *testing.T) {
	w := newMemWriter()
	p := &memPublisher{}
	r := newTestRunner(w, p, 7)

	plan, err := gen.PlanChunks(20, 20)
	require.NoError(t, err)
	_, err = r.Run(t.Context(), plan)
	require.NoError(t, err)

	// 20 rows in batches of 7: 7 + 7 + 6.
	require.Len(t, p.batches, 3)
	assert.Len(t, p.batches[0], 7)
	assert.Len(t, p.batches[1], 7)
	assert.Len(t, p.batches[2], 6)
}

func TestRunner_WriteFailureAborts(t *testing.T) {
	w := newMemWriter()
	w.failChunk = 1
	r := newTestRunner(w, nil, 0)

	plan, err := gen.PlanChunks(30, 10)
	require.NoError(t, err)

	_, err = r.Run(t.Context(), plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk 1")
	assert.Nil(t, w.manifest)
	assert.Len(t, w.chunks, 1)
}

func TestRunner_PublishFailureAborts(t *testing.T) {
	w := newMemWriter()
	p := &memPublisher{err: errors.New("broker unreachable")}
	r := newTestRunner(w, p, 0)

	plan, err := gen.PlanChunks(10, 10)
	require.NoError(t, err)

	_, err = r.Run(t.Context(), plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publishing rows")
	assert.Nil(t, w.manifest)
}

func TestRunner_CancelledBeforeStart(t *testing.T) {
	w := newMemWriter()
	r := newTestRunner(w, nil, 0)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	plan, err := gen.PlanChunks(10, 10)
	require.NoError(t, err)

	_, err = r.Run(ctx, plan)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, w.chunks)
	assert.Nil(t, w.manifest)
}
