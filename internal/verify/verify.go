// Package verify checks a generated dataset directory against its manifest:
// file inventory, schema, row counts, and value ranges. It backs the
// checkdataset command.
package verify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	csvsink "github.com/couchcryptid/weather-bench/internal/adapter/csv"
	"github.com/couchcryptid/weather-bench/internal/weather"
)

// Phase tracks pass/fail for one validation phase.
type Phase struct {
	Name   string
	Errors []string
}

func (p *Phase) errorf(format string, args ...any) {
	p.Errors = append(p.Errors, fmt.Sprintf(format, args...))
}

// Passed reports whether the phase recorded no errors.
func (p *Phase) Passed() bool { return len(p.Errors) == 0 }

// Report is the outcome of validating one dataset directory.
type Report struct {
	Manifest    weather.Manifest
	Phases      []*Phase
	RowsChecked int
}

// Passed reports whether every phase passed.
func (r *Report) Passed() bool {
	for _, p := range r.Phases {
		if !p.Passed() {
			return false
		}
	}
	return true
}

// chunkFrame pairs a chunk file name with its loaded frame.
type chunkFrame struct {
	name string
	df   dataframe.DataFrame
}

// CheckDataset validates the dataset in dir. A missing or unreadable
// manifest is a hard error; everything else is reported per phase.
func CheckDataset(dir string) (*Report, error) {
	manifest, err := csvsink.ReadManifest(dir)
	if err != nil {
		return nil, err
	}

	report := &Report{Manifest: manifest}

	inventory, frames := checkInventory(dir, manifest)
	report.Phases = append(report.Phases, inventory)
	report.Phases = append(report.Phases,
		checkSchema(frames),
		checkRowCounts(frames, manifest, &report.RowsChecked),
		checkRanges(frames, manifest),
	)

	return report, nil
}

// checkInventory verifies the directory holds exactly the chunk files the
// manifest names and loads each one for the later phases.
func checkInventory(dir string, manifest weather.Manifest) (*Phase, []chunkFrame) {
	p := &Phase{Name: "Phase 1: File Inventory"}

	if manifest.NumChunks != len(manifest.Chunks) {
		p.errorf("manifest declares %d chunks but lists %d", manifest.NumChunks, len(manifest.Chunks))
	}

	var frames []chunkFrame
	for i, info := range manifest.Chunks {
		want := csvsink.ChunkFileName(i)
		if info.File != want {
			p.errorf("chunk %d: manifest names %q, expected %q", i, info.File, want)
		}

		path := filepath.Join(dir, info.File)
		f, err := os.Open(path)
		if err != nil {
			p.errorf("chunk %d: %v", i, err)
			continue
		}
		df := dataframe.ReadCSV(f, dataframe.HasHeader(true))
		f.Close()
		if df.Err != nil {
			p.errorf("chunk %d: reading %s: %v", i, info.File, df.Err)
			continue
		}
		frames = append(frames, chunkFrame{name: info.File, df: df})
	}

	// Stray part files mean the directory mixes runs.
	onDisk, err := filepath.Glob(filepath.Join(dir, "weather_data_part_*.csv"))
	if err == nil && len(onDisk) > len(manifest.Chunks) {
		p.errorf("directory holds %d part files, manifest lists %d", len(onDisk), len(manifest.Chunks))
	}

	return p, frames
}

// checkSchema verifies header order and detected column types in each chunk.
func checkSchema(frames []chunkFrame) *Phase {
	p := &Phase{Name: "Phase 2: Schema"}

	wantTypes := []series.Type{
		series.String, // city
		series.Int,    // low_temp
		series.Int,    // high_temp
		series.Float,  // precipitation
		series.Float,  // humidity
		series.Int,    // pressure
	}
	wantNames := weather.Columns()

	for _, cf := range frames {
		names := cf.df.Names()
		if len(names) != len(wantNames) {
			p.errorf("%s: %d columns, expected %d", cf.name, len(names), len(wantNames))
			continue
		}
		for i, name := range names {
			if name != wantNames[i] {
				p.errorf("%s: column %d is %q, expected %q", cf.name, i, name, wantNames[i])
			}
		}
		for i, typ := range cf.df.Types() {
			if typ != wantTypes[i] {
				p.errorf("%s: column %q detected as %s, expected %s", cf.name, wantNames[i], typ, wantTypes[i])
			}
		}
	}
	return p
}

// checkRowCounts verifies per-chunk and total row counts against the manifest.
func checkRowCounts(frames []chunkFrame, manifest weather.Manifest, rowsChecked *int) *Phase {
	p := &Phase{Name: "Phase 3: Row Counts"}

	total := 0
	for i, cf := range frames {
		n := cf.df.Nrow()
		total += n
		if n != manifest.ChunkSize {
			p.errorf("%s: %d data rows, expected chunk size %d", cf.name, n, manifest.ChunkSize)
		}
		if i < len(manifest.Chunks) && n != manifest.Chunks[i].Rows {
			p.errorf("%s: %d data rows, manifest records %d", cf.name, n, manifest.Chunks[i].Rows)
		}
	}
	if total != manifest.TotalRows {
		p.errorf("dataset holds %d rows, manifest records %d", total, manifest.TotalRows)
	}
	*rowsChecked = total
	return p
}

// numericBound describes the allowed range of one numeric column.
type numericBound struct {
	column   string
	min, max float64
}

var bounds = []numericBound{
	{"low_temp", weather.TempMin, weather.TempMax},
	{"high_temp", weather.TempMin, weather.TempMax},
	{"precipitation", weather.PrecipMin, weather.PrecipMax},
	{"humidity", weather.HumidityMin, weather.HumidityMax},
	{"pressure", weather.PressureMin, weather.PressureMax},
}

// checkRanges verifies numeric columns stay inside their declared ranges and
// city values come from a pool no larger than the manifest records.
func checkRanges(frames []chunkFrame, manifest weather.Manifest) *Phase {
	p := &Phase{Name: "Phase 4: Value Ranges"}

	cities := map[string]bool{}
	for _, cf := range frames {
		for _, b := range bounds {
			col := cf.df.Col(b.column)
			if col.Err != nil {
				p.errorf("%s: column %q: %v", cf.name, b.column, col.Err)
				continue
			}
			if lo := col.Min(); lo < b.min {
				p.errorf("%s: %s minimum %g below %g", cf.name, b.column, lo, b.min)
			}
			if hi := col.Max(); hi > b.max {
				p.errorf("%s: %s maximum %g above %g", cf.name, b.column, hi, b.max)
			}
		}

		for i, city := range cf.df.Col("city").Records() {
			if city == "" {
				p.errorf("%s: row %d has an empty city", cf.name, i)
				continue
			}
			cities[city] = true
		}
	}

	if manifest.CityPool > 0 && len(cities) > manifest.CityPool {
		p.errorf("%d distinct cities exceed the recorded pool of %d", len(cities), manifest.CityPool)
	}
	return p
}
