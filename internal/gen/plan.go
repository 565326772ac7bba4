package gen

import "fmt"

// Auto chunk-size thresholds: datasets up to 1M rows stay in one file;
// larger datasets split into at most 10 chunks capped at 10M rows each.
const (
	singleFileLimit = 1_000_000
	maxChunkRows    = 10_000_000
)

// Plan is the resolved chunking of a generation run. NumChunks uses integer
// division, so Remainder rows are never generated; the Runner warns when
// that happens.
type Plan struct {
	TotalRows int
	ChunkSize int
	NumChunks int
	Remainder int
}

// PlanChunks resolves the chunk layout for totalRows. chunkSize 0 selects
// the automatic sizing; an explicit chunkSize is used as-is.
func PlanChunks(totalRows, chunkSize int) (Plan, error) {
	if totalRows <= 0 {
		return Plan{}, fmt.Errorf("total rows must be positive, got %d", totalRows)
	}
	if chunkSize < 0 {
		return Plan{}, fmt.Errorf("chunk size must not be negative, got %d", chunkSize)
	}

	if chunkSize == 0 {
		if totalRows <= singleFileLimit {
			chunkSize = totalRows
		} else {
			chunkSize = totalRows / 10
			if chunkSize > maxChunkRows {
				chunkSize = maxChunkRows
			}
		}
	}

	numChunks := totalRows / chunkSize
	if numChunks == 0 {
		return Plan{}, fmt.Errorf("chunk size %d exceeds total rows %d, nothing to generate", chunkSize, totalRows)
	}

	return Plan{
		TotalRows: totalRows,
		ChunkSize: chunkSize,
		NumChunks: numChunks,
		Remainder: totalRows % chunkSize,
	}, nil
}
