package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/enginekit/pkg/config"
	"github.com/dmitrymomot/enginekit/pkg/engine"
	"github.com/dmitrymomot/enginekit/pkg/logger"
)

type rootFlags struct {
	logLevel   string
	env        string
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "enginekit",
		Short:         "Engine lifecycle notifications toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults ENGINE_LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&flags.env, "env", "", "Environment: development|production (defaults ENGINE_ENV or development)")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (.yaml, .toml or .json)")

	root.AddCommand(newRunCmd(flags), newVersionCmd())
	return root
}

// loadConfig reads the environment and then the optional config file.
// Values from the file override the environment.
func (f *rootFlags) loadConfig() (engine.Config, error) {
	var cfg engine.Config
	if err := config.Load(&cfg); err != nil {
		return engine.Config{}, err
	}
	if f.configPath != "" {
		if err := config.LoadFile(f.configPath, &cfg); err != nil {
			return engine.Config{}, err
		}
	}
	if f.logLevel != "" {
		if _, ok := logger.ParseLevel(f.logLevel); !ok {
			return engine.Config{}, errors.New("invalid log level: " + f.logLevel)
		}
		cfg.LogLevel = f.logLevel
	}
	if f.env != "" {
		cfg.Env = f.env
	}
	return cfg, nil
}

func newLogger(cfg engine.Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, "enginekit"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithContextExtractors(logger.FrameExtractor()),
	)
}
