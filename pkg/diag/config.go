package diag

import "time"

// Config holds diagnostics server settings.
type Config struct {
	// Addr is the listen address; empty disables the server.
	Addr string `env:"ENGINE_DIAG_ADDR" yaml:"addr" toml:"addr" json:"addr"`
	// ReadTimeout bounds reading a request.
	ReadTimeout time.Duration `env:"ENGINE_DIAG_READ_TIMEOUT" envDefault:"5s" yaml:"read_timeout" toml:"read_timeout" json:"read_timeout"`
	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration `env:"ENGINE_DIAG_WRITE_TIMEOUT" envDefault:"10s" yaml:"write_timeout" toml:"write_timeout" json:"write_timeout"`
	// ShutdownTimeout is the time allowed for graceful shutdown.
	ShutdownTimeout time.Duration `env:"ENGINE_DIAG_SHUTDOWN_TIMEOUT" envDefault:"5s" yaml:"shutdown_timeout" toml:"shutdown_timeout" json:"shutdown_timeout"`
}

// Enabled reports whether an address is configured.
func (c Config) Enabled() bool {
	return c.Addr != ""
}

// NewFromConfig creates a new Server from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 4)

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
