// Package cache keeps engine resources keyed by their numeric id and forgets
// them when the matching dispose reactable announces their destruction.
//
// A cache subscribes to its dispose channel when it is created and
// unsubscribes in Close:
//
//	textures, err := cache.NewTextureCache[*Texture](engine.DisposeTexture(),
//		cache.WithOnRelease(func(id uint32, t *Texture) { t.forget() }),
//	)
//	if err != nil {
//		return err
//	}
//	defer textures.Close()
//
// A dispose notification removes the entry and remembers the id as released,
// so later lookups report ErrReleased instead of ErrNotFound. The cache never
// announces disposals itself.
package cache
