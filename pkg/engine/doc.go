// Package engine owns the reactable channels for one running engine and
// exposes the announce operations producers call during its lifecycle.
//
// An Engine is created once at startup and torn down with Close:
//
//	eng := engine.New(cfg, engine.WithLogger(log), engine.WithMetrics(col))
//	defer eng.Close()
//
//	textures, _ := cache.NewTextureCache[*Texture](eng.DisposeTextureChannel())
//
//	if err := eng.Start(window.GLContext()); err != nil {
//		return err
//	}
//
// Start announces the created GL context and then the initialized signal.
// Subscribers that must see both should subscribe before Start.
//
// Close completes every channel so subscribers receive OnCompleted. Announce
// operations after Close return ErrClosed.
package engine
