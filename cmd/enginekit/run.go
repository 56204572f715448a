package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/enginekit/pkg/batching"
	"github.com/dmitrymomot/enginekit/pkg/cache"
	"github.com/dmitrymomot/enginekit/pkg/content"
	"github.com/dmitrymomot/enginekit/pkg/diag"
	"github.com/dmitrymomot/enginekit/pkg/engine"
	"github.com/dmitrymomot/enginekit/pkg/logger"
	"github.com/dmitrymomot/enginekit/pkg/reactable"
	"github.com/dmitrymomot/enginekit/pkg/render"
	"github.com/dmitrymomot/enginekit/pkg/telemetry"
)

const (
	spritesPerFrame = 24
	textureSlots    = 8
	// maxBatchSize bounds the simulated batch growth.
	maxBatchSize uint32 = 1 << 16
)

type runFlags struct {
	frames    int
	batchSize uint32
	diagAddr  string
}

// window stands in for the native GL context handle.
type window struct {
	title string
}

type sprite struct {
	texture uint32
	x, y    float32
}

type runStats struct {
	frames           int
	drawCalls        int
	sprites          int
	texturesReleased int
	soundsReleased   int
}

func newRunCmd(root *rootFlags) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run a simulated engine lifecycle",
		Example: "  enginekit run --frames 120 --batch-size 64\n  enginekit run --diag-addr :9090",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.frames <= 0 {
				return errors.New("--frames must be greater than zero")
			}

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("batch-size") {
				if flags.batchSize == 0 {
					return reactable.ErrZeroBatchSize
				}
				cfg.BatchSize = flags.batchSize
			}
			if cfg.BatchSize > maxBatchSize {
				return fmt.Errorf("batch size must not exceed %d", maxBatchSize)
			}
			if cmd.Flags().Changed("diag-addr") {
				cfg.Diag.Addr = flags.diagAddr
			}

			log := newLogger(cfg, cmd.ErrOrStderr())
			stats, err := simulate(cmd.Context(), cfg, flags.frames, log)
			if err != nil {
				log.Error("simulation failed", logger.Error(err))
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"frames=%d draw_calls=%d sprites=%d textures_released=%d sounds_released=%d\n",
				stats.frames, stats.drawCalls, stats.sprites, stats.texturesReleased, stats.soundsReleased)
			return err
		},
	}

	cmd.Flags().IntVar(&flags.frames, "frames", 60, "Number of frames to simulate")
	cmd.Flags().Uint32Var(&flags.batchSize, "batch-size", engine.DefaultBatchSize, "Initial batch size (overrides config)")
	cmd.Flags().StringVar(&flags.diagAddr, "diag-addr", "", "Serve diagnostics on this address while running")

	return cmd
}

func simulate(ctx context.Context, cfg engine.Config, frames int, log *slog.Logger) (runStats, error) {
	var stats runStats

	col, err := telemetry.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return stats, err
	}

	eng := engine.New(cfg, engine.WithLogger(log), engine.WithMetrics(col))
	defer eng.Close()

	textures, err := cache.NewTextureCache[string](eng.DisposeTextureChannel(),
		cache.WithLogger[string](log),
		cache.WithCapacity[string](textureSlots),
		cache.WithOnRelease(func(id uint32, path string) {
			stats.texturesReleased++
			log.Debug("texture released", logger.TextureID(id), slog.String("path", path))
		}),
	)
	if err != nil {
		return stats, err
	}
	defer textures.Close()

	sounds, err := cache.NewSoundCache[string](eng.DisposeSoundChannel(),
		cache.WithLogger[string](log),
		cache.WithOnRelease(func(id uint32, _ string) {
			stats.soundsReleased++
			log.Debug("sound released", logger.SoundID(id))
		}),
	)
	if err != nil {
		return stats, err
	}
	defer sounds.Close()

	buf, err := batching.New[sprite](eng.BatchSizeChannel(), eng.BatchSize(), log)
	if err != nil {
		return stats, err
	}
	defer buf.Close()

	renderer := render.RendererFunc[sprite](func(batch []sprite) error {
		stats.drawCalls++
		stats.sprites += len(batch)
		return nil
	})

	level, err := eng.Scenes().Add("level-1")
	if err != nil {
		return stats, err
	}
	if err := eng.Scenes().Activate(level.ID); err != nil {
		return stats, err
	}

	if cfg.Diag.Enabled() {
		srv := diag.NewFromConfig(cfg.Diag, diag.WithLogger(log))
		handler := diag.NewHandler(eng,
			diag.WithMetricsHandler(col.Handler()),
			diag.WithHandlerLogger(log),
		)
		go func() {
			if err := srv.Run(ctx, handler); err != nil {
				log.Error("diagnostics server failed", logger.Error(err))
			}
		}()
		defer func() { _ = srv.Shutdown(context.Background()) }()
	}

	if err := eng.Start(&window{title: "enginekit"}); err != nil {
		return stats, err
	}
	log.Info("scene activated", logger.SceneID(level.ID), slog.String("name", level.Name))

	for frame := 1; frame <= frames; frame++ {
		if err := ctx.Err(); err != nil {
			log.Warn("simulation interrupted", logger.Error(err))
			break
		}
		fctx := logger.WithFrame(ctx, uint64(frame))

		if err := drawFrame(frame, textures, buf, renderer); err != nil {
			return stats, err
		}

		if frame%4 == 0 {
			if err := eng.DisposeTexture(textureID(frame)); err != nil {
				return stats, err
			}
		}
		if frame%5 == 0 {
			id := uint32(frame)
			if _, err := sounds.GetOrLoad(id, soundPath); err != nil {
				return stats, err
			}
			if err := eng.DisposeSound(id); err != nil {
				return stats, err
			}
		}
		if frame%10 == 0 && eng.BatchSize() < maxBatchSize {
			if err := eng.SetBatchSize(nextBatchSize(eng.BatchSize())); err != nil {
				return stats, err
			}
		}

		log.DebugContext(fctx, "frame rendered", slog.Int("queued", buf.Len()), logger.BatchSize(eng.BatchSize()))
		stats.frames++
	}

	return stats, nil
}

// nextBatchSize doubles n without passing maxBatchSize.
func nextBatchSize(n uint32) uint32 {
	if n >= maxBatchSize/2 {
		return maxBatchSize
	}
	return n * 2
}

func drawFrame(frame int, textures *cache.Cache[string], buf *batching.Buffer[sprite], r render.Renderer[sprite]) error {
	id := textureID(frame)
	if _, err := textures.GetOrLoad(id, texturePath); err != nil {
		return err
	}

	for i := range spritesPerFrame {
		s := sprite{texture: id, x: float32(i), y: float32(frame)}
		err := buf.Add(s)
		if errors.Is(err, batching.ErrFull) {
			if err := buf.Flush(r); err != nil {
				return err
			}
			err = buf.Add(s)
		}
		if err != nil {
			return err
		}
	}
	return buf.Flush(r)
}

var (
	texturePath = content.LoaderFunc[string](func(id uint32) (string, error) {
		return fmt.Sprintf("textures/%03d.png", id), nil
	})
	soundPath = content.LoaderFunc[string](func(id uint32) (string, error) {
		return fmt.Sprintf("sounds/%04d.ogg", id), nil
	})
)

func textureID(frame int) uint32 {
	return uint32(frame%textureSlots) + 1
}
