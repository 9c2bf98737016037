package uploadqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the queue tunables. LoadConfig reads them from PO_UPLOAD_*
// variables, e.g. PO_UPLOAD_SHARDS=8 PO_UPLOAD_MAX_ATTEMPTS=5.
type Config struct {
	Shards         int           `envconfig:"SHARDS"          default:"4"`
	QueueSize      int           `envconfig:"QUEUE_SIZE"      default:"64"`
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`

	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"200ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"10s"`

	// ErrorHandler receives every job's final error. Optional.
	ErrorHandler func(error) `envconfig:"-"`
}

// LoadConfig populates Config from the environment (prefix PO_UPLOAD).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("PO_UPLOAD", &c)
}

func (c Config) withDefaults() Config {
	if c.Shards <= 0 {
		c.Shards = 4
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 64
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = 100 * time.Millisecond
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 200 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 10 * time.Second
	}
	return c
}
