package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{
		City:          "Port Angelica",
		LowTemp:       -12,
		HighTemp:      31,
		Precipitation: 42.75,
		Humidity:      88.2,
		Pressure:      1013,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validRecord().Validate())

	cases := []struct {
		name    string
		mutate  func(*Record)
		wantErr string
	}{
		{"empty city", func(r *Record) { r.City = "" }, "city"},
		{"low temp below range", func(r *Record) { r.LowTemp = -51 }, "low_temp"},
		{"high temp above range", func(r *Record) { r.HighTemp = 51 }, "high_temp"},
		{"negative precipitation", func(r *Record) { r.Precipitation = -0.01 }, "precipitation"},
		{"humidity above range", func(r *Record) { r.Humidity = 100.5 }, "humidity"},
		{"pressure below range", func(r *Record) { r.Pressure = 949 }, "pressure"},
		{"pressure above range", func(r *Record) { r.Pressure = 1051 }, "pressure"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)
			err := rec.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate_RangeBoundariesInclusive(t *testing.T) {
	rec := Record{
		City:          "Lakeview",
		LowTemp:       TempMin,
		HighTemp:      TempMax,
		Precipitation: PrecipMax,
		Humidity:      HumidityMin,
		Pressure:      PressureMax,
	}
	assert.NoError(t, rec.Validate())
}

func TestCSVRowRoundTrip(t *testing.T) {
	rec := validRecord()
	row := rec.CSVRow()

	require.Len(t, row, len(Columns()))
	assert.Equal(t, []string{"Port Angelica", "-12", "31", "42.75", "88.20", "1013"}, row)

	parsed, err := ParseCSVRow(row)
	require.NoError(t, err)
	assert.Equal(t, rec.City, parsed.City)
	assert.Equal(t, rec.LowTemp, parsed.LowTemp)
	assert.Equal(t, rec.HighTemp, parsed.HighTemp)
	assert.InDelta(t, rec.Precipitation, parsed.Precipitation, 1e-9)
	assert.InDelta(t, rec.Humidity, parsed.Humidity, 1e-9)
	assert.Equal(t, rec.Pressure, parsed.Pressure)
}

func TestParseCSVRow_Errors(t *testing.T) {
	_, err := ParseCSVRow([]string{"only", "three", "fields"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 6 fields")

	_, err = ParseCSVRow([]string{"X", "cold", "31", "1.00", "2.00", "1000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low_temp")
}
