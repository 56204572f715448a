package engine

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/enginekit/pkg/guard"
	"github.com/dmitrymomot/enginekit/pkg/logger"
	"github.com/dmitrymomot/enginekit/pkg/observable"
	"github.com/dmitrymomot/enginekit/pkg/reactable"
	"github.com/dmitrymomot/enginekit/pkg/scene"
)

// Engine holds the single instance of every reactable channel.
// All methods are safe for concurrent use.
type Engine struct {
	cfg Config
	log *slog.Logger

	glContext      *reactable.GLContextReactable
	glInit         *reactable.GLInitReactable
	disposeTexture *reactable.DisposeTextureReactable
	disposeSound   *reactable.DisposeSoundReactable
	batchSize      *reactable.BatchSizeReactable

	scenes *scene.Registry

	currentBatch atomic.Uint32
	startMu      sync.Mutex
	started      bool
	closed       atomic.Bool
	closeOnce    sync.Once
}

// New creates the engine and its channels. No announcement is made until
// Start is called.
func New(cfg Config, opts ...Option) *Engine {
	o := &options{logger: logger.Noop()}
	for _, opt := range opts {
		opt(o)
	}

	chOpts := []observable.Option{observable.WithLogger(o.logger)}
	if o.metrics != nil {
		chOpts = append(chOpts, observable.WithMetrics(o.metrics))
	}

	e := &Engine{
		cfg:            cfg,
		log:            o.logger.With(logger.Component("engine")),
		glContext:      reactable.NewGLContextReactable(chOpts...),
		glInit:         reactable.NewGLInitReactable(chOpts...),
		disposeTexture: reactable.NewDisposeTextureReactable(chOpts...),
		disposeSound:   reactable.NewDisposeSoundReactable(chOpts...),
		batchSize:      reactable.NewBatchSizeReactable(chOpts...),
		scenes:         scene.NewRegistry(),
	}
	e.currentBatch.Store(cfg.batchSize())
	return e
}

// GLContextChannel returns the context-created channel.
func (e *Engine) GLContextChannel() *reactable.GLContextReactable { return e.glContext }

// GLInitChannel returns the initialized channel.
func (e *Engine) GLInitChannel() *reactable.GLInitReactable { return e.glInit }

// DisposeTextureChannel returns the texture disposal channel.
func (e *Engine) DisposeTextureChannel() *reactable.DisposeTextureReactable { return e.disposeTexture }

// DisposeSoundChannel returns the sound disposal channel.
func (e *Engine) DisposeSoundChannel() *reactable.DisposeSoundReactable { return e.disposeSound }

// BatchSizeChannel returns the batch size channel.
func (e *Engine) BatchSizeChannel() *reactable.BatchSizeReactable { return e.batchSize }

// Scenes returns the scene registry.
func (e *Engine) Scenes() *scene.Registry { return e.scenes }

// Config returns the configuration the engine was created with.
func (e *Engine) Config() Config { return e.cfg }

// BatchSize returns the last announced batch size, or the configured one.
func (e *Engine) BatchSize() uint32 { return e.currentBatch.Load() }

// Start announces that the GL context ctxData was created and then that
// OpenGL is initialized. A second call returns ErrAlreadyStarted.
func (e *Engine) Start(ctxData any) error {
	if err := guard.RequireNonNull(ctxData, "ctxData"); err != nil {
		return err
	}
	if e.closed.Load() {
		return ErrClosed
	}

	e.startMu.Lock()
	defer e.startMu.Unlock()
	if e.started {
		return ErrAlreadyStarted
	}
	e.started = true

	if err := e.glContext.OnGLContextCreated(reactable.NewGLContextData(ctxData)); err != nil {
		// Nothing was initialized yet, so the caller may retry.
		e.started = false
		e.log.Error("context announcement failed", logger.Error(err))
		return err
	}
	if err := e.glInit.OnOpenGLInitialized(); err != nil {
		if errors.Is(err, reactable.ErrAlreadyInitialized) {
			return errors.Join(ErrAlreadyStarted, err)
		}
		// The signal stays unfired; a retry announces the context again.
		e.started = false
		e.log.Error("initialization announcement failed", logger.Error(err))
		return err
	}

	e.log.Info("engine started", logger.BatchSize(e.BatchSize()))
	return nil
}

// Initialized reports whether the initialized signal has been announced.
func (e *Engine) Initialized() bool {
	return e.glInit.Fired()
}

// SetBatchSize announces a new batch capacity.
func (e *Engine) SetBatchSize(n uint32) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if err := e.batchSize.OnBatchSizeChanged(reactable.NewBatchSizeData(n)); err != nil {
		return err
	}
	e.currentBatch.Store(n)
	e.log.Debug("batch size changed", logger.BatchSize(n))
	return nil
}

// DisposeTexture announces that the texture id is destroyed.
func (e *Engine) DisposeTexture(id uint32) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if err := e.disposeTexture.OnDisposeTexture(reactable.NewDisposeTextureData(id)); err != nil {
		e.log.Warn("texture disposal announcement failed", logger.TextureID(id), logger.Error(err))
		return err
	}
	return nil
}

// DisposeSound announces that the sound id is destroyed.
func (e *Engine) DisposeSound(id uint32) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if err := e.disposeSound.OnDisposeSound(reactable.NewDisposeSoundData(id)); err != nil {
		e.log.Warn("sound disposal announcement failed", logger.SoundID(id), logger.Error(err))
		return err
	}
	return nil
}

// Stats returns the subscriber count per channel name.
func (e *Engine) Stats() map[string]int {
	return map[string]int{
		e.glContext.Name():      e.glContext.Len(),
		e.glInit.Name():         e.glInit.Len(),
		e.disposeTexture.Name(): e.disposeTexture.Len(),
		e.disposeSound.Name():   e.disposeSound.Len(),
		e.batchSize.Name():      e.batchSize.Len(),
	}
}

// Close completes every channel. Subscribers receive OnCompleted once.
// Repeated calls do nothing.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		e.glContext.Complete()
		e.glInit.Complete()
		e.disposeTexture.Complete()
		e.disposeSound.Complete()
		e.batchSize.Complete()
		e.log.Info("engine closed")
	})
}
