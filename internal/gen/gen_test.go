package gen_test

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-bench/internal/gen"
	"github.com/couchcryptid/weather-bench/internal/weather"
)

func TestGenerator_CityPool(t *testing.T) {
	g := gen.New(gen.Options{Seed: 7, CityPool: 25})

	cities := g.Cities()
	require.Len(t, cities, 25)
	for _, c := range cities {
		assert.NotEmpty(t, c)
	}
}

func TestGenerator_DefaultCityPool(t *testing.T) {
	g := gen.New(gen.Options{Seed: 7})
	assert.Len(t, g.Cities(), gen.DefaultCityPool)
}

func TestGenerator_RecordsWithinRanges(t *testing.T) {
	g := gen.New(gen.Options{Seed: 42, CityPool: 10})
	pool := map[string]bool{}
	for _, c := range g.Cities() {
		pool[c] = true
	}

	for _, rec := range g.Chunk(5000) {
		require.NoError(t, rec.Validate())
		assert.True(t, pool[rec.City], "city %q not in pool", rec.City)
	}
}

func TestGenerator_DeterministicForSeed(t *testing.T) {
	a := gen.New(gen.Options{Seed: 99, CityPool: 50})
	b := gen.New(gen.Options{Seed: 99, CityPool: 50})

	assert.Equal(t, a.Cities(), b.Cities())
	assert.Equal(t, a.Chunk(500), b.Chunk(500))
}

func TestGenerator_DifferentSeedsDiverge(t *testing.T) {
	a := gen.New(gen.Options{Seed: 1, CityPool: 50})
	b := gen.New(gen.Options{Seed: 2, CityPool: 50})

	assert.NotEqual(t, a.Chunk(500), b.Chunk(500))
}

func TestGenerator_ZeroSeedDerivedFromClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := gen.New(gen.Options{Clock: clock})

	assert.Equal(t, uint64(clock.Now().UnixNano()), g.Seed())
}

func TestGenerator_ChunkLength(t *testing.T) {
	g := gen.New(gen.Options{Seed: 3, CityPool: 5})
	records := g.Chunk(123)
	assert.Len(t, records, 123)

	var zero weather.Record
	for _, rec := range records {
		assert.NotEqual(t, zero, rec)
	}
}
