package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to a loader
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrUnsupportedFormat is returned for configuration files with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported config file format")

	// ErrReadFile is returned when a configuration file cannot be read
	ErrReadFile = errors.New("failed to read config file")

	// ErrDecodeFile is returned when a configuration file cannot be decoded
	ErrDecodeFile = errors.New("failed to decode config file")
)
