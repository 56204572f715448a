// Package logger builds the engine's structured loggers on top of log/slog.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or json), minimum level, static attributes, and ContextExtractor
// callbacks that copy values such as the current frame number out of a
// context.Context on every record.
//
// Attribute helpers (Channel, SubscriptionID, TextureID, SoundID, BatchSize,
// SceneID, Error, ...) keep key names consistent between the notification
// core and its consumers.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("development", "enginekit"),
//		logger.WithContextExtractors(logger.FrameExtractor()),
//	)
//
//	ctx := logger.WithFrame(context.Background(), 12)
//	log.InfoContext(ctx, "texture released", logger.TextureID(7))
//
// Libraries that take an optional logger fall back to Noop, which discards
// every record.
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so
//
//	log.Info("push finished", logger.Error(err))
//
// needs no nil check.
package logger
