// Package reactable defines the engine's named notification channels and the
// payloads they carry.
//
// Each channel owns an observable.Observable for its payload type and adds
// the announce operation producers call:
//
//	GLContextReactable       OnGLContextCreated(GLContextData)
//	GLInitReactable          OnOpenGLInitialized()
//	DisposeTextureReactable  OnDisposeTexture(DisposeTextureData)
//	DisposeSoundReactable    OnDisposeSound(DisposeSoundData)
//	BatchSizeReactable       OnBatchSizeChanged(BatchSizeData)
//
// Consumers subscribe once when they are constructed and dispose the returned
// handle when they are torn down:
//
//	unsub, err := textures.Subscribe(observable.NextFunc[reactable.DisposeTextureData](
//		func(d reactable.DisposeTextureData) error {
//			cache.release(d.TextureID())
//			return nil
//		}))
//	if err != nil {
//		return err
//	}
//	defer unsub.Dispose()
//
// Announce operations are synchronous: they return after every subscriber has
// handled the payload, or with the first subscriber's error.
//
// Consumers of the dispose channels must treat a notification as "this id is
// no longer valid" and release local state only. They must not announce the
// disposal again.
package reactable
