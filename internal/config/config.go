package config

import (
	"time"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config is the root application configuration.
type Config struct {
	Database      DatabaseConfig      `yaml:"database"`
	Pronunciation PronunciationConfig `yaml:"pronunciation"`
	Store         StoreConfig         `yaml:"store"`
	Ingest        IngestConfig        `yaml:"ingest"`
	Poem          PoemConfig          `yaml:"poem"`
	Log           LogConfig           `yaml:"log"`
}

// DatabaseConfig holds line store connection settings.
// For sqlite the DSN is a file path; pool settings apply to postgres only.
// The memory driver lives as long as the process and is meant for tests and
// embedding; the poet CLI refuses it.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"sqlite"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-default:"./data/lines.db"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// PronunciationConfig points at the CMU Pronouncing Dictionary.
type PronunciationConfig struct {
	CMUPath string `yaml:"cmu_path" env:"PRONUNCIATION_CMU_PATH" env-default:"./data/cmudict.dict"`
}

// StoreConfig holds line store settings.
type StoreConfig struct {
	InsertChunkSize int `yaml:"insert_chunk_size" env:"STORE_INSERT_CHUNK_SIZE" env-default:"500"`
}

// IngestConfig holds corpus file settings.
type IngestConfig struct {
	Encoding string `yaml:"encoding" env:"INGEST_ENCODING" env-default:"utf-8"`
}

// PoemConfig holds poem assembly defaults.
type PoemConfig struct {
	DefaultTitle  string `yaml:"default_title"  env:"POEM_DEFAULT_TITLE"  env-default:"Untitled"`
	DefaultAuthor string `yaml:"default_author" env:"POEM_DEFAULT_AUTHOR" env-default:"Anonymous"`
	MaxRetries    int    `yaml:"max_retries"    env:"POEM_MAX_RETRIES"    env-default:"5"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed uint64 `yaml:"seed" env:"POEM_SEED" env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
