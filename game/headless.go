package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/meghashyamc/curlplanet/config"
	"github.com/meghashyamc/curlplanet/logger"
	"github.com/meghashyamc/curlplanet/render"
	"github.com/meghashyamc/curlplanet/sketch"
	"github.com/meghashyamc/curlplanet/telemetry"
)

// RenderHeadless steps the sketch render.frames times on a fixed clock without opening a window.
// Frames are rasterised to PNG and per-frame stats written as CSV into render.out_dir, together
// with config.yaml and summary.yaml. An empty out_dir renders without writing anything.
func RenderHeadless(ctx context.Context, cfg *config.Config, log logger.Logger) (telemetry.Summary, error) {
	seed := cfg.GetRenderSeed()
	system, err := NewSystem(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return telemetry.Summary{}, err
	}

	style, err := cfg.Style()
	if err != nil {
		return telemetry.Summary{}, err
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		return telemetry.Summary{}, err
	}

	collector := telemetry.NewCollector(system)
	clock := sketch.NewFixedClock(cfg.GetRenderStartTime(), cfg.GetRenderFPS())
	driver := sketch.NewDriver(collector, style, clock, log)
	surface := render.NewRasterSurface(int(style.Width), int(style.Height), background)

	out, err := telemetry.NewOutput(cfg.GetRenderOutDir())
	if err != nil {
		return telemetry.Summary{}, err
	}
	defer out.Close()

	if err := out.WriteConfig(cfg.Settings()); err != nil {
		return telemetry.Summary{}, err
	}

	frames := cfg.GetRenderFrames()
	log.Info("rendering headless", "frames", frames, "fps", cfg.GetRenderFPS(), "seed", seed, "out_dir", out.Dir(), "particles", system.Len())

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			driver.Stop()
			return collector.Summary(), fmt.Errorf("render interrupted at frame %d: %w", i, err)
		}

		if _, err := driver.Frame(surface); err != nil {
			return collector.Summary(), err
		}

		if err := out.WriteFrame(collector.Last()); err != nil {
			return collector.Summary(), err
		}
		if out != nil {
			if err := render.WritePNG(render.FramePath(out.Dir(), i), surface.Image()); err != nil {
				return collector.Summary(), err
			}
		}
	}
	driver.Stop()

	summary := collector.Summary()
	if err := out.Close(); err != nil {
		return summary, err
	}
	if err := out.WriteSummary(summary); err != nil {
		return summary, err
	}

	if clipped := surface.Clipped(); clipped > 0 {
		log.Warn("segments fell outside the canvas", "count", clipped)
	}
	log.Info("headless render finished", "frames", summary.Frames, "mean_drawn", summary.MeanDrawn, "mean_step_ms", summary.MeanStepMillis)
	return summary, nil
}
