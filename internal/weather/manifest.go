package weather

import "time"

// ChunkInfo describes one written chunk file.
type ChunkInfo struct {
	File  string `json:"file"`
	Rows  int    `json:"rows"`
	Bytes int64  `json:"bytes"`
}

// Manifest records the parameters and outcome of one generation run. It is
// written as manifest.json beside the chunk files and consumed by
// checkdataset to validate a dataset without knowing how it was invoked.
type Manifest struct {
	RunID     string      `json:"run_id"`
	Seed      uint64      `json:"seed"`
	TotalRows int         `json:"total_rows"`
	ChunkSize int         `json:"chunk_size"`
	NumChunks int         `json:"num_chunks"`
	CityPool  int         `json:"city_pool"`
	Columns   []string    `json:"columns"`
	CreatedAt time.Time   `json:"created_at"`
	Chunks    []ChunkInfo `json:"chunks"`
}

// TotalBytes sums the byte sizes of all chunk files.
func (m Manifest) TotalBytes() int64 {
	var n int64
	for _, c := range m.Chunks {
		n += c.Bytes
	}
	return n
}
