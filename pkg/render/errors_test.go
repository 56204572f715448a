package render_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/enginekit/pkg/render"
)

func TestRendererError(t *testing.T) {
	t.Parallel()

	cause := errors.New("GL_OUT_OF_MEMORY")
	err := render.NewRendererError("buffer upload failed", cause)
	assert.Equal(t, "buffer upload failed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, render.ErrRenderer)

	var rerr *render.RendererError
	assert.ErrorAs(t, errors.Join(errors.New("frame 3"), err), &rerr)

	assert.Equal(t, "There was an issue with the renderer.", render.NewRendererError("", nil).Error())
}
