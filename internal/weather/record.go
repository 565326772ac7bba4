package weather

import (
	"fmt"
	"strconv"
)

// Value ranges for the generated columns. Validate enforces these; the
// checkdataset phases re-verify them against files on disk.
const (
	TempMin     = -50
	TempMax     = 50
	PrecipMin   = 0.0
	PrecipMax   = 100.0
	HumidityMin = 0.0
	HumidityMax = 100.0
	PressureMin = 950
	PressureMax = 1050
)

// Record is one synthetic weather observation.
type Record struct {
	City          string  `json:"city"`
	LowTemp       int     `json:"low_temp"`
	HighTemp      int     `json:"high_temp"`
	Precipitation float64 `json:"precipitation"`
	Humidity      float64 `json:"humidity"`
	Pressure      int     `json:"pressure"`
}

// Columns returns the CSV header in canonical order.
func Columns() []string {
	return []string{"city", "low_temp", "high_temp", "precipitation", "humidity", "pressure"}
}

// Validate checks that every field sits inside its declared range.
func (r Record) Validate() error {
	if r.City == "" {
		return fmt.Errorf("city is empty")
	}
	if r.LowTemp < TempMin || r.LowTemp > TempMax {
		return fmt.Errorf("low_temp %d outside [%d, %d]", r.LowTemp, TempMin, TempMax)
	}
	if r.HighTemp < TempMin || r.HighTemp > TempMax {
		return fmt.Errorf("high_temp %d outside [%d, %d]", r.HighTemp, TempMin, TempMax)
	}
	if r.Precipitation < PrecipMin || r.Precipitation > PrecipMax {
		return fmt.Errorf("precipitation %g outside [%g, %g]", r.Precipitation, PrecipMin, PrecipMax)
	}
	if r.Humidity < HumidityMin || r.Humidity > HumidityMax {
		return fmt.Errorf("humidity %g outside [%g, %g]", r.Humidity, HumidityMin, HumidityMax)
	}
	if r.Pressure < PressureMin || r.Pressure > PressureMax {
		return fmt.Errorf("pressure %d outside [%d, %d]", r.Pressure, PressureMin, PressureMax)
	}
	return nil
}

// CSVRow serializes the record in column order. Floats keep two decimal
// places so files are byte-stable for a given seed.
func (r Record) CSVRow() []string {
	return []string{
		r.City,
		strconv.Itoa(r.LowTemp),
		strconv.Itoa(r.HighTemp),
		strconv.FormatFloat(r.Precipitation, 'f', 2, 64),
		strconv.FormatFloat(r.Humidity, 'f', 2, 64),
		strconv.Itoa(r.Pressure),
	}
}

// ParseCSVRow is the inverse of CSVRow.
func ParseCSVRow(row []string) (Record, error) {
	if len(row) != len(Columns()) {
		return Record{}, fmt.Errorf("expected %d fields, got %d", len(Columns()), len(row))
	}
	low, err := strconv.Atoi(row[1])
	if err != nil {
		return Record{}, fmt.Errorf("low_temp: %w", err)
	}
	high, err := strconv.Atoi(row[2])
	if err != nil {
		return Record{}, fmt.Errorf("high_temp: %w", err)
	}
	precip, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("precipitation: %w", err)
	}
	humidity, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return Record{}, fmt.Errorf("humidity: %w", err)
	}
	pressure, err := strconv.Atoi(row[5])
	if err != nil {
		return Record{}, fmt.Errorf("pressure: %w", err)
	}
	return Record{
		City:          row[0],
		LowTemp:       low,
		HighTemp:      high,
		Precipitation: precip,
		Humidity:      humidity,
		Pressure:      pressure,
	}, nil
}
