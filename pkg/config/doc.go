// Package config loads engine settings from the environment and from
// configuration files.
//
// Environment loading wraps github.com/joho/godotenv and
// github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files (the default .env when no path
//     is given) into the process environment.
//   - Load parses the environment into any struct using `env` tags and
//     caches successful results per type.
//   - ForceReload bypasses the cache; ResetCache empties it. Both are
//     meant for tests.
//
// File loading picks a decoder from the file extension: YAML
// (gopkg.in/yaml.v3), TOML (github.com/pelletier/go-toml/v2) or JSON.
//
// # Usage
//
//	type EngineConfig struct {
//		BatchSize uint32 `env:"ENGINE_BATCH_SIZE" envDefault:"1000" yaml:"batch_size" toml:"batch_size" json:"batch_size"`
//	}
//
//	var cfg EngineConfig
//	if err := config.LoadFile("engine.yaml", &cfg); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Errors can be compared with errors.Is:
//
//   - ErrParsingConfig: environment could not be parsed into the struct.
//   - ErrNilPointer: nil pointer passed to a loader.
//   - ErrUnsupportedFormat: unknown configuration file extension.
//   - ErrReadFile: configuration file could not be read.
package config
