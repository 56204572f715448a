package engine

import (
	"github.com/dmitrymomot/enginekit/pkg/diag"
)

// DefaultBatchSize is used when Config.BatchSize is zero.
const DefaultBatchSize uint32 = 1000

// Config holds engine settings. It can be filled from the environment with
// config.Load or from a file with config.LoadFile.
type Config struct {
	BatchSize uint32      `env:"ENGINE_BATCH_SIZE" envDefault:"1000" yaml:"batch_size" toml:"batch_size" json:"batch_size"`
	Env       string      `env:"ENGINE_ENV" envDefault:"development" yaml:"env" toml:"env" json:"env"`
	LogLevel  string      `env:"ENGINE_LOG_LEVEL" envDefault:"info" yaml:"log_level" toml:"log_level" json:"log_level"`
	Diag      diag.Config `yaml:"diag" toml:"diag" json:"diag"`
}

func (c Config) batchSize() uint32 {
	if c.BatchSize == 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}
