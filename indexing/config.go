package indexing

import (
	"fmt"
	"runtime"
	"time"
)

// Config controls how a corpus is embedded.
type Config struct {
	// BatchSize is the number of texts sent to the embedder per call.
	BatchSize int

	// PoolSize is the number of batches embedded concurrently.
	PoolSize int

	// MaxRetries is the number of attempts per batch.
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff.
	RetryDelay time.Duration

	// ReportInterval is the number of entries between progress reports.
	ReportInterval int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	return &Config{
		BatchSize:      32,
		PoolSize:       poolSize,
		MaxRetries:     3,
		RetryDelay:     500 * time.Millisecond,
		ReportInterval: 16,
	}
}

// Validate reports whether every setting is usable.
func (c *Config) Validate() error {
	switch {
	case c.BatchSize < 1:
		return fmt.Errorf("%w: batch size %d", ErrInvalidConfig, c.BatchSize)
	case c.PoolSize < 1:
		return fmt.Errorf("%w: pool size %d", ErrInvalidConfig, c.PoolSize)
	case c.MaxRetries < 1:
		return fmt.Errorf("%w: max retries %d", ErrInvalidConfig, c.MaxRetries)
	case c.RetryDelay < 0:
		return fmt.Errorf("%w: retry delay %s", ErrInvalidConfig, c.RetryDelay)
	}
	return nil
}
