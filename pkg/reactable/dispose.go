package reactable

import "github.com/dmitrymomot/enginekit/pkg/observable"

// DisposeTextureReactable announces textures that are being destroyed.
// Use NewDisposeTextureReactable to create one.
type DisposeTextureReactable struct {
	channel[DisposeTextureData]
}

// NewDisposeTextureReactable creates the texture disposal channel.
func NewDisposeTextureReactable(opts ...observable.Option) *DisposeTextureReactable {
	return &DisposeTextureReactable{channel: newChannel[DisposeTextureData](DisposeTextureChannel, opts)}
}

// OnDisposeTexture tells every subscriber to drop the texture in data.
func (r *DisposeTextureReactable) OnDisposeTexture(data DisposeTextureData) error {
	return r.push(data)
}

// DisposeSoundReactable announces sounds that are being destroyed.
// Use NewDisposeSoundReactable to create one.
type DisposeSoundReactable struct {
	channel[DisposeSoundData]
}

// NewDisposeSoundReactable creates the sound disposal channel.
func NewDisposeSoundReactable(opts ...observable.Option) *DisposeSoundReactable {
	return &DisposeSoundReactable{channel: newChannel[DisposeSoundData](DisposeSoundChannel, opts)}
}

// OnDisposeSound tells every subscriber to drop the sound in data.
func (r *DisposeSoundReactable) OnDisposeSound(data DisposeSoundData) error {
	return r.push(data)
}
