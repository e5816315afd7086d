package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/meghashyamc/curlplanet/assets"
	"github.com/meghashyamc/curlplanet/config"
	"github.com/meghashyamc/curlplanet/logger"
	"github.com/meghashyamc/curlplanet/particles"
	"github.com/meghashyamc/curlplanet/render"
	"github.com/meghashyamc/curlplanet/sketch"
	"github.com/meghashyamc/curlplanet/telemetry"
)

type GameState int

const (
	GameStatePlaying GameState = iota
	GameStatePaused
	GameStateStopped
)

func (s GameState) String() string {
	switch s {
	case GameStatePlaying:
		return "playing"
	case GameStatePaused:
		return "paused"
	case GameStateStopped:
		return "stopped"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// Game drives the sketch from ebiten's update/draw loop: one simulation frame per Draw.
type Game struct {
	cfg       *config.Config
	system    *particles.System
	collector *telemetry.Collector
	driver    *sketch.Driver
	surface   *render.EbitenSurface
	state     GameState
	showHUD   bool
	logger    logger.Logger
}

func NewGame(cfg *config.Config, log logger.Logger) (*Game, error) {
	system, err := NewSystem(cfg, nil)
	if err != nil {
		log.Error("failed to create particle system", "err", err)
		return nil, err
	}

	style, err := cfg.Style()
	if err != nil {
		log.Error("failed to read style", "err", err)
		return nil, err
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		log.Error("failed to read background", "err", err)
		return nil, err
	}

	collector := telemetry.NewCollector(system)
	g := &Game{
		cfg:       cfg,
		system:    system,
		collector: collector,
		driver:    sketch.NewDriver(collector, style, sketch.WallClock{}, log),
		surface:   render.NewEbitenSurface(background),
		state:     GameStatePlaying,
		showHUD:   false,
		logger:    log,
	}

	g.logger.Info("game initialized", "particles", system.Len(), "grid_side", system.GridSide(), "k", system.Config().K, "noise", cfg.GetNoiseKind())
	return g, nil
}

// NewSystem builds the particle system described by cfg. A nil rng uses a time-seeded source.
func NewSystem(cfg *config.Config, rng particles.Rand) (*particles.System, error) {
	sketchConfig, err := cfg.SketchConfig()
	if err != nil {
		return nil, err
	}
	noise, err := cfg.Noise()
	if err != nil {
		return nil, err
	}

	return particles.New(sketchConfig, noise, rng, particles.WithWorkers(cfg.GetWorkers()))
}

func (g *Game) Run() error {
	g.logger.Info("starting sketch")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	// The driver clears the canvas itself; keeping the screen lets a paused sketch hold its last frame.
	ebiten.SetScreenClearedEveryFrame(false)
}

func (g *Game) Update() error {
	g.handleInput()

	if g.state == GameStateStopped {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.showHUD = !g.showHUD
	}
}

// Stop halts the driver; the next Update ends the ebiten loop.
func (g *Game) Stop() {
	if g.state == GameStateStopped {
		return
	}
	g.driver.Stop()
	g.state = GameStateStopped
	g.logger.Info("sketch stopped", "frames", g.driver.Frames())
}

func (g *Game) TogglePause() {
	switch g.state {
	case GameStatePlaying:
		g.state = GameStatePaused
	case GameStatePaused:
		g.state = GameStatePlaying
	}
	g.logger.Debug("pause toggled", "state", g.state)
}

func (g *Game) Reset() {
	g.logger.Debug("resetting particles")
	g.system.Reset()
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.state != GameStatePlaying {
		return
	}

	g.surface.SetTarget(screen)
	if _, err := g.driver.Frame(g.surface); err != nil {
		if errors.Is(err, sketch.ErrStopped) {
			g.state = GameStateStopped
			return
		}
		g.logger.Error("error drawing frame", "err", err)
		return
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	stats := g.collector.Last()
	hudText := fmt.Sprintf("%.0f fps  drawn %d  suppressed %d  respawned %d",
		ebiten.ActualFPS(), stats.Drawn, stats.Suppressed, stats.Respawned)

	op := &text.DrawOptions{}
	op.GeoM.Translate(20, 30)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hudText, assets.HUDFont, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
