package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds ambient settings populated from environment variables.
// Run-specific parameters (row count, output dir, chunk size) stay on the
// genweather command line; only deployment-style knobs live here.
type Config struct {
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Optional Kafka row sink for streaming-ingestion benchmarks.
	KafkaBrokers   []string
	KafkaTopic     string
	KafkaEnabled   bool
	KafkaBatchSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	kafkaTopic := os.Getenv("KAFKA_TOPIC")
	kafkaEnabled := kafkaTopic != ""
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	batchSize, err := parseKafkaBatchSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers:   sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:     kafkaTopic,
		KafkaEnabled:   kafkaEnabled,
		KafkaBatchSize: batchSize,
	}

	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_TOPIC is not set")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when the Kafka sink is enabled")
	}

	return cfg, nil
}

func parseKafkaBatchSize() (int, error) {
	s := os.Getenv("KAFKA_BATCH_SIZE")
	if s == "" {
		return 500, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 10000 {
		return 0, errors.New("invalid KAFKA_BATCH_SIZE: must be an integer in [1, 10000]")
	}
	return n, nil
}
