// Package csv persists generated chunks as CSV files plus a run manifest.
// It implements gen.ChunkWriter.
package csv

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/weather-bench/internal/weather"
)

// ManifestFileName is written beside the chunk files after a successful run.
const ManifestFileName = "manifest.json"

// ChunkFileName returns the canonical chunk file name for an index,
// e.g. weather_data_part_03.csv.
func ChunkFileName(index int) string {
	return fmt.Sprintf("weather_data_part_%02d.csv", index)
}

// Writer writes chunk files into a single output directory.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates the output directory if needed and returns a Writer.
func NewWriter(dir string, logger *slog.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{dir: dir, logger: logger}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// WriteChunk writes one chunk file: header row plus one line per record.
func (w *Writer) WriteChunk(index int, records []weather.Record) (weather.ChunkInfo, error) {
	name := ChunkFileName(index)
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return weather.ChunkInfo{}, fmt.Errorf("creating %s: %w", name, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(weather.Columns()); err != nil {
		f.Close()
		return weather.ChunkInfo{}, fmt.Errorf("writing header: %w", err)
	}
	for i := range records {
		if err := cw.Write(records[i].CSVRow()); err != nil {
			f.Close()
			return weather.ChunkInfo{}, fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return weather.ChunkInfo{}, fmt.Errorf("flushing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return weather.ChunkInfo{}, fmt.Errorf("closing %s: %w", name, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return weather.ChunkInfo{}, fmt.Errorf("stat %s: %w", name, err)
	}

	w.logger.Debug("chunk file written", "file", name, "rows", len(records), "bytes", stat.Size())

	return weather.ChunkInfo{File: name, Rows: len(records), Bytes: stat.Size()}, nil
}

// WriteManifest serializes the manifest as indented JSON in the output directory.
func (w *Writer) WriteManifest(m weather.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	data = append(data, '\n')
	path := filepath.Join(w.dir, ManifestFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest from a dataset directory.
func ReadManifest(dir string) (weather.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return weather.Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}
	var m weather.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return weather.Manifest{}, fmt.Errorf("parsing manifest: %w", err)
	}
	return m, nil
}
