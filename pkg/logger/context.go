package logger

import (
	"context"
	"log/slog"
)

type frameKey struct{}

// WithFrame stores the current frame number in ctx.
func WithFrame(ctx context.Context, frame uint64) context.Context {
	return context.WithValue(ctx, frameKey{}, frame)
}

// FrameFromContext returns the frame number stored by WithFrame.
func FrameFromContext(ctx context.Context) (uint64, bool) {
	if ctx == nil {
		return 0, false
	}
	frame, ok := ctx.Value(frameKey{}).(uint64)
	return frame, ok
}

// FrameExtractor adds the "frame" attribute to records logged with a
// context carrying a frame number.
func FrameExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if frame, ok := FrameFromContext(ctx); ok {
			return Frame(frame), true
		}
		return slog.Attr{}, false
	}
}
