// Package gen synthesizes the weather benchmark dataset: a seeded fake-data
// source, chunk-size planning, and a Runner that drives chunk generation
// through the CSV and Kafka adapters.
package gen

import (
	"log/slog"
	"math"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-bench/internal/observability"
	"github.com/couchcryptid/weather-bench/internal/weather"
)

// DefaultCityPool matches the upstream benchmark datasets, which draw city
// names from a pool of 1000 generated once per run.
const DefaultCityPool = 1000

// Options configures a Generator. Zero values select real clock, default
// pool size, and a clock-derived seed.
type Options struct {
	Seed     uint64
	CityPool int
	Clock    clockwork.Clock
	Logger   *slog.Logger
	Metrics  *observability.Metrics
}

// Generator produces synthetic weather records. All randomness flows through
// a single seeded faker, so a given seed reproduces the dataset byte for byte.
type Generator struct {
	faker   *gofakeit.Faker
	cities  []string
	seed    uint64
	runID   string
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Generator and draws its city pool up front so every chunk
// samples from the same pool. City names may repeat within the pool; the
// unique count is at most the pool size, never guaranteed equal to it.
func New(opts Options) *Generator {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewMetricsForTesting()
	}
	if opts.CityPool <= 0 {
		opts.CityPool = DefaultCityPool
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(opts.Clock.Now().UnixNano())
	}

	f := gofakeit.New(opts.Seed)
	cities := make([]string, opts.CityPool)
	for i := range cities {
		cities[i] = f.City()
	}

	return &Generator{
		faker:   f,
		cities:  cities,
		seed:    opts.Seed,
		runID:   uuid.NewString(),
		clock:   opts.Clock,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// Seed returns the effective seed, including a clock-derived one.
func (g *Generator) Seed() uint64 { return g.seed }

// RunID identifies this run in the manifest and on published messages.
func (g *Generator) RunID() string { return g.runID }

// Cities returns the city pool shared by all chunks of this run.
func (g *Generator) Cities() []string { return g.cities }

// Record synthesizes one row inside the declared column ranges.
func (g *Generator) Record() weather.Record {
	return weather.Record{
		City:          g.cities[g.faker.Number(0, len(g.cities)-1)],
		LowTemp:       g.faker.Number(weather.TempMin, weather.TempMax),
		HighTemp:      g.faker.Number(weather.TempMin, weather.TempMax),
		Precipitation: round2(g.faker.Float64Range(weather.PrecipMin, weather.PrecipMax)),
		Humidity:      round2(g.faker.Float64Range(weather.HumidityMin, weather.HumidityMax)),
		Pressure:      g.faker.Number(weather.PressureMin, weather.PressureMax),
	}
}

// Chunk synthesizes n rows and logs the generation rate.
func (g *Generator) Chunk(n int) []weather.Record {
	start := g.clock.Now()

	records := make([]weather.Record, n)
	for i := range records {
		records[i] = g.Record()
	}

	elapsed := g.clock.Since(start)
	g.metrics.RowsGenerated.Add(float64(n))
	g.metrics.ChunkGenDuration.Observe(elapsed.Seconds())

	attrs := []any{"rows", n, "elapsed", elapsed}
	if secs := elapsed.Seconds(); secs > 0 {
		attrs = append(attrs, "rows_per_sec", int(float64(n)/secs))
	}
	g.logger.Info("chunk generated", attrs...)

	return records
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
