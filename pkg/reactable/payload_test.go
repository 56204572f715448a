package reactable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/enginekit/pkg/reactable"
)

func TestPayloads(t *testing.T) {
	t.Parallel()

	t.Run("batch size", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint32(123), reactable.NewBatchSizeData(123).BatchSize())
	})

	t.Run("dispose sound", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint32(1234), reactable.NewDisposeSoundData(1234).SoundID())
	})

	t.Run("dispose texture", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint32(1234), reactable.NewDisposeTextureData(1234).TextureID())
	})

	t.Run("gl context keeps the reference", func(t *testing.T) {
		t.Parallel()

		type window struct{ handle uintptr }
		w := &window{handle: 0xBEEF}

		data := reactable.NewGLContextData(w)
		got, ok := data.Data().(*window)
		assert.True(t, ok)
		assert.Same(t, w, got)
	})

	t.Run("zero gl init is not initialized", func(t *testing.T) {
		t.Parallel()
		assert.False(t, reactable.GLInitData{}.Initialized())
	})
}
