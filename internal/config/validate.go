package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	knownDrivers   = []string{DriverPostgres, DriverSQLite, DriverMemory}
	knownEncodings = []string{"utf-8", "utf8", "latin1", "iso-8859-1"}
	knownLevels    = []string{"debug", "info", "warn", "error"}
	knownFormats   = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if strings.TrimSpace(c.Pronunciation.CMUPath) == "" {
		return fmt.Errorf("pronunciation.cmu_path is required")
	}

	if c.Store.InsertChunkSize <= 0 {
		return fmt.Errorf("store.insert_chunk_size must be > 0 (got %d)", c.Store.InsertChunkSize)
	}

	if !slices.Contains(knownEncodings, strings.ToLower(c.Ingest.Encoding)) {
		return fmt.Errorf("ingest.encoding must be one of %v (got %q)", knownEncodings, c.Ingest.Encoding)
	}

	if c.Poem.MaxRetries < 1 {
		return fmt.Errorf("poem.max_retries must be >= 1 (got %d)", c.Poem.MaxRetries)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if !slices.Contains(knownDrivers, d.Driver) {
		return fmt.Errorf("driver must be one of %v (got %q)", knownDrivers, d.Driver)
	}
	if d.Driver != DriverMemory && strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required for driver %q", d.Driver)
	}
	if d.Driver == DriverPostgres {
		if d.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
		}
		if d.MinConns < 0 || d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns must be in [0, max_conns] (got %d)", d.MinConns)
		}
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(knownLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %v (got %q)", knownLevels, l.Level)
	}
	if !slices.Contains(knownFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %v (got %q)", knownFormats, l.Format)
	}
	return nil
}
