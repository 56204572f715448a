package logger

import (
	"log/slog"

	"github.com/google/uuid"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Channel records a notification channel name.
func Channel(name string) slog.Attr {
	return slog.String("channel", name)
}

// SubscriptionID records an observer subscription id.
func SubscriptionID(id string) slog.Attr {
	return slog.String("subscription_id", id)
}

// Subscribers records a channel's subscriber count.
func Subscribers(n int) slog.Attr {
	return slog.Int("subscribers", n)
}

// TextureID records a texture id.
func TextureID(id uint32) slog.Attr {
	return slog.Uint64("texture_id", uint64(id))
}

// SoundID records a sound id.
func SoundID(id uint32) slog.Attr {
	return slog.Uint64("sound_id", uint64(id))
}

// BatchSize records the geometry batch capacity.
func BatchSize(n uint32) slog.Attr {
	return slog.Uint64("batch_size", uint64(n))
}

// SceneID records a scene id. The nil UUID yields an empty Attr.
func SceneID(id uuid.UUID) slog.Attr {
	if id == uuid.Nil {
		return slog.Attr{}
	}
	return slog.String("scene_id", id.String())
}

// Frame records the frame number.
func Frame(n uint64) slog.Attr {
	return slog.Uint64("frame", n)
}

// Component names the subsystem that produced the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
