// Package weather defines the schema of the synthetic weather benchmark
// dataset.
//
// # Dataset Shape
//
// The dataset is a flat table of independent rows. There are no relationships
// between rows; the only invariant is that every row carries the six declared
// columns with values inside their stated ranges:
//
//	city           string   one of a fixed pool of fake city names
//	low_temp       int      [-50, 50] °C
//	high_temp      int      [-50, 50] °C
//	precipitation  float    [0, 100] mm, two decimal places
//	humidity       float    [0, 100] %, two decimal places
//	pressure       int      [950, 1050] hPa
//
// low_temp and high_temp are sampled independently, matching the upstream
// generator the benchmark numbers were originally collected against; low may
// exceed high and consumers must not assume ordering.
//
// # Chunking
//
// Large datasets are split into row-count-bounded chunks, one CSV file per
// chunk, named weather_data_part_NN.csv with NN numbered from 00. Every chunk
// holds a header row plus exactly the planned chunk size of data rows. A
// manifest.json written beside the chunks records the run parameters so a
// dataset can be validated after the fact.
package weather
