package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meghashyamc/curlplanet/config"
	"github.com/meghashyamc/curlplanet/logger"
	"github.com/meghashyamc/curlplanet/render"
)

// smallSketch shrinks the canvas and particle grid so a run takes milliseconds.
func smallSketch(t *testing.T, outDir string, frames string) *config.Config {
	t.Helper()
	t.Setenv("CANVAS_WIDTH", "240")
	t.Setenv("CANVAS_HEIGHT", "200")
	// radius = 200/3.3; 10.5/radius gives a 10x10 grid
	t.Setenv("SKETCH_DENSITY", "0.17325")
	t.Setenv("RENDER_FRAMES", frames)
	t.Setenv("RENDER_OUT_DIR", outDir)
	t.Setenv("RENDER_SEED", "7")

	cfg, err := config.LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	return cfg
}

func TestNewSystemUsesConfig(t *testing.T) {
	cfg := smallSketch(t, t.TempDir(), "1")

	sys, err := NewSystem(cfg, nil)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	if sys.GridSide() != 10 || sys.Len() != 100 {
		t.Errorf("grid = %d (%d particles), want 10 (100)", sys.GridSide(), sys.Len())
	}
}

func TestNewSystemRejectsBadConfig(t *testing.T) {
	t.Setenv("SKETCH_K", "-1")
	cfg, err := config.LoadFile("")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewSystem(cfg, nil); err == nil {
		t.Error("expected an error for a negative k")
	}
	if _, err := NewGame(cfg, logger.Discard()); err == nil {
		t.Error("expected NewGame to fail for a negative k")
	}
}

func TestGameStateTransitions(t *testing.T) {
	cfg := smallSketch(t, t.TempDir(), "1")
	g, err := NewGame(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	if g.State() != GameStatePlaying {
		t.Fatalf("initial state = %v, want playing", g.State())
	}

	g.TogglePause()
	if g.State() != GameStatePaused {
		t.Errorf("state after pause = %v", g.State())
	}
	g.TogglePause()
	if g.State() != GameStatePlaying {
		t.Errorf("state after resume = %v", g.State())
	}

	g.Reset()
	if g.system.Len() != 100 {
		t.Errorf("reset changed particle count to %d", g.system.Len())
	}

	g.Stop()
	if g.State() != GameStateStopped || !g.driver.Stopped() {
		t.Errorf("stop: state = %v, driver stopped = %v", g.State(), g.driver.Stopped())
	}

	// pausing a stopped sketch does nothing
	g.TogglePause()
	if g.State() != GameStateStopped {
		t.Errorf("state after pause on stopped game = %v", g.State())
	}
	g.Stop()
}

func TestGameLayoutUsesWindowSize(t *testing.T) {
	cfg := smallSketch(t, t.TempDir(), "1")
	g, err := NewGame(cfg, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}

	w, h := g.Layout(640, 480)
	if w != 1300 || h != 1200 {
		t.Errorf("layout = %dx%d, want 1300x1200", w, h)
	}
}

func TestGameStateString(t *testing.T) {
	tests := []struct {
		state GameState
		want  string
	}{
		{GameStatePlaying, "playing"},
		{GameStatePaused, "paused"},
		{GameStateStopped, "stopped"},
		{GameState(9), "GameState(9)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestRenderHeadlessWritesOutputs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	cfg := smallSketch(t, dir, "3")

	summary, err := RenderHeadless(context.Background(), cfg, logger.Discard())
	if err != nil {
		t.Fatalf("RenderHeadless: %v", err)
	}
	if summary.Frames != 3 {
		t.Errorf("summary frames = %d, want 3", summary.Frames)
	}

	for i := 0; i < 3; i++ {
		if _, err := os.Stat(render.FramePath(dir, i)); err != nil {
			t.Errorf("frame %d: %v", i, err)
		}
	}
	if _, err := os.Stat(render.FramePath(dir, 3)); !os.IsNotExist(err) {
		t.Errorf("unexpected extra frame, stat err = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(string(data)), "\n"); len(lines) != 4 {
		t.Errorf("stats.csv has %d lines, want 4", len(lines))
	}

	for _, name := range []string{"config.yaml", "summary.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestRenderHeadlessIsReproducible(t *testing.T) {
	first, err := RenderHeadless(context.Background(), smallSketch(t, t.TempDir(), "5"), logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	second, err := RenderHeadless(context.Background(), smallSketch(t, t.TempDir(), "5"), logger.Discard())
	if err != nil {
		t.Fatal(err)
	}

	if first.MeanDrawn != second.MeanDrawn || first.MeanSuppressed != second.MeanSuppressed || first.TotalRespawned != second.TotalRespawned {
		t.Errorf("same seed gave different runs: %+v vs %+v", first, second)
	}
}

func TestRenderHeadlessCancelled(t *testing.T) {
	cfg := smallSketch(t, t.TempDir(), "10")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := RenderHeadless(ctx, cfg, logger.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if summary.Frames != 0 {
		t.Errorf("frames rendered after cancel = %d, want 0", summary.Frames)
	}
}
