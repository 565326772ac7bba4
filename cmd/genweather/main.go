// Command genweather generates chunked synthetic weather CSV datasets for
// dataframe benchmark runs. Row count comes from the first positional
// argument or -n (the flag wins); large datasets are split into
// weather_data_part_NN.csv chunks and described by a manifest.json.
//
// Usage:
//
//	genweather 1000000
//	genweather -n 100000000 -o testdata -c 10000000
//	genweather -n 1000000 -seed 42 -metrics-addr :9102
//	KAFKA_TOPIC=weather-rows genweather -n 1000000
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jonboulle/clockwork"

	csvadapter "github.com/couchcryptid/weather-bench/internal/adapter/csv"
	httpadapter "github.com/couchcryptid/weather-bench/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/weather-bench/internal/adapter/kafka"
	"github.com/couchcryptid/weather-bench/internal/config"
	"github.com/couchcryptid/weather-bench/internal/gen"
	"github.com/couchcryptid/weather-bench/internal/observability"
	"github.com/couchcryptid/weather-bench/internal/weather"
)

// defaultTotalRows matches the dataset size the benchmark numbers were
// originally collected against.
const defaultTotalRows = 100_000_000

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		rowsFlag    int
		outputDir   string
		chunkSize   int
		seed        uint64
		cities      int
		metricsAddr string
	)
	flag.IntVar(&rowsFlag, "n", 0, "number of rows to generate (overrides the positional argument)")
	flag.IntVar(&rowsFlag, "rows", 0, "alias for -n")
	flag.StringVar(&outputDir, "o", "testdata", "output directory for CSV files")
	flag.StringVar(&outputDir, "output-dir", "testdata", "alias for -o")
	flag.IntVar(&chunkSize, "c", 0, "chunk size override (auto-calculated when 0)")
	flag.IntVar(&chunkSize, "chunk-size", 0, "alias for -c")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 derives one from the clock)")
	flag.IntVar(&cities, "cities", gen.DefaultCityPool, "size of the city name pool")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "serve /healthz, /readyz, /metrics on this address during the run")
	flag.Parse()

	totalRows := defaultTotalRows
	if flag.NArg() > 0 {
		n, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			return fmt.Errorf("invalid row count %q", flag.Arg(0))
		}
		totalRows = n
	}
	if rowsFlag != 0 {
		totalRows = rowsFlag
	}

	plan, err := gen.PlanChunks(totalRows, chunkSize)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	generator := gen.New(gen.Options{
		Seed:     seed,
		CityPool: cities,
		Clock:    clockwork.NewRealClock(),
		Logger:   logger,
		Metrics:  metrics,
	})

	writer, err := csvadapter.NewWriter(outputDir, logger)
	if err != nil {
		return err
	}

	var publisher gen.RowPublisher
	if cfg.KafkaEnabled {
		kw := kafkaadapter.NewWriter(cfg, generator.RunID(), logger)
		defer func() {
			if err := kw.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		publisher = kw
		logger.Info("kafka sink enabled", "topic", cfg.KafkaTopic, "batch_size", cfg.KafkaBatchSize)
	}

	runner := gen.NewRunner(generator, writer, publisher, cfg.KafkaBatchSize, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		srv := httpadapter.NewServer(metricsAddr, runner, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("http server shutdown error", "error", err)
			}
		}()
	}

	manifest, err := runner.Run(ctx, plan)
	if err != nil {
		return err
	}

	printSummary(manifest)
	return nil
}

func printSummary(m weather.Manifest) {
	fmt.Printf("\nGenerated %d rows in %d files (run %s, seed %d)\n", m.TotalRows, m.NumChunks, m.RunID, m.Seed)
	for _, c := range m.Chunks {
		fmt.Printf("  %s  %d rows  %.1f MB\n", c.File, c.Rows, float64(c.Bytes)/(1024*1024))
	}
	fmt.Printf("Total dataset size: %.2f GB\n", float64(m.TotalBytes())/(1024*1024*1024))
}
