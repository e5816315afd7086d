package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/meghashyamc/curlplanet/field"
	"github.com/meghashyamc/curlplanet/particles"
	"github.com/meghashyamc/curlplanet/sketch"
)

const keyEnv = "ENV"
const envLocal = "local"

// gridSideDefault is the particle grid side used when no density is configured.
const gridSideDefault = 150

type Config struct {
	config *viper.Viper
}

// Load reads config/config.<env>.yaml from the project root. env falls back to $ENV and then
// "local". A missing file is not an error: environment variables and defaults still apply.
func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)
	if err != nil {
		configPath = ""
	}

	return LoadFile(configPath)
}

// LoadFile reads the given YAML file, or only environment variables and defaults when path is
// empty. An unreadable file is logged and otherwise ignored.
func LoadFile(path string) (*Config, error) {
	viperConfig := viper.New()
	setDefaults(viperConfig)

	if path != "" {
		viperConfig.SetConfigFile(path)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	sketchDefaults := particles.DefaultConfig()

	v.SetDefault("window.width", 1300)
	v.SetDefault("window.height", 1200)
	v.SetDefault("window.title", "curlplanet")

	v.SetDefault("canvas.width", particles.DefaultCanvasWidth)
	v.SetDefault("canvas.height", particles.DefaultCanvasHeight)

	v.SetDefault("sketch.k", sketchDefaults.K)
	v.SetDefault("sketch.field_scale", sketchDefaults.FieldScale)
	v.SetDefault("sketch.radius", 0)
	v.SetDefault("sketch.density", 0)
	v.SetDefault("sketch.noise_seed", sketchDefaults.NoiseSeed)
	v.SetDefault("sketch.noise_kind", field.NoiseKindSimple)
	v.SetDefault("sketch.initial_life", sketchDefaults.InitialLifeMax)
	v.SetDefault("sketch.respawn_life", sketchDefaults.RespawnLifeMax)
	v.SetDefault("sketch.cull_factor", sketchDefaults.CullFactor)
	v.SetDefault("sketch.workers", 1)

	v.SetDefault("style.stroke_color", sketch.DefaultStrokeColor)
	v.SetDefault("style.background", "#000000")

	v.SetDefault("render.frames", 120)
	v.SetDefault("render.fps", 60)
	v.SetDefault("render.start_time", 0)
	v.SetDefault("render.out_dir", "out")
	v.SetDefault("render.seed", 1)

	v.SetDefault("log.level", "info")
}

// BindFlag lets a command-line flag override the dotted key.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %s: flag not defined", key)
	}
	return c.config.BindPFlag(key, flag)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetCanvasWidth() float64 {
	return c.getFloat("CANVAS_WIDTH", "canvas.width")
}

func (c *Config) GetCanvasHeight() float64 {
	return c.getFloat("CANVAS_HEIGHT", "canvas.height")
}

func (c *Config) GetK() float64 {
	return c.getFloat("SKETCH_K", "sketch.k")
}

func (c *Config) GetFieldScale() float64 {
	return c.getFloat("SKETCH_FIELD_SCALE", "sketch.field_scale")
}

// GetRadius falls back to the smaller canvas side divided by 3.3 when unset.
func (c *Config) GetRadius() float64 {
	radius := c.getFloat("SKETCH_RADIUS", "sketch.radius")
	if radius == 0 {
		radius = math.Min(c.GetCanvasWidth(), c.GetCanvasHeight()) / 3.3
	}

	return radius
}

// GetDensity falls back to the density giving a 150 particle grid side when unset.
func (c *Config) GetDensity() float64 {
	density := c.getFloat("SKETCH_DENSITY", "sketch.density")
	if density == 0 {
		density = (gridSideDefault + 0.5) / c.GetRadius()
	}

	return density
}

func (c *Config) GetNoiseSeed() float64 {
	return c.getFloat("SKETCH_NOISE_SEED", "sketch.noise_seed")
}

func (c *Config) GetNoiseKind() string {
	return c.getString("SKETCH_NOISE_KIND", "sketch.noise_kind")
}

func (c *Config) GetInitialLife() float64 {
	return c.getFloat("SKETCH_INITIAL_LIFE", "sketch.initial_life")
}

func (c *Config) GetRespawnLife() float64 {
	return c.getFloat("SKETCH_RESPAWN_LIFE", "sketch.respawn_life")
}

func (c *Config) GetCullFactor() float64 {
	return c.getFloat("SKETCH_CULL_FACTOR", "sketch.cull_factor")
}

func (c *Config) GetWorkers() int {
	workers := c.config.GetInt("SKETCH_WORKERS")
	if workers == 0 {
		workers = c.config.GetInt("sketch.workers")
	}

	return workers
}

func (c *Config) GetStrokeColor() string {
	return c.getString("STYLE_STROKE_COLOR", "style.stroke_color")
}

func (c *Config) GetBackground() string {
	return c.getString("STYLE_BACKGROUND", "style.background")
}

func (c *Config) GetRenderFrames() int {
	frames := c.config.GetInt("RENDER_FRAMES")
	if frames == 0 {
		frames = c.config.GetInt("render.frames")
	}

	return frames
}

func (c *Config) GetRenderFPS() int {
	fps := c.config.GetInt("RENDER_FPS")
	if fps == 0 {
		fps = c.config.GetInt("render.fps")
	}

	return fps
}

func (c *Config) GetRenderStartTime() float64 {
	return c.getFloat("RENDER_START_TIME", "render.start_time")
}

func (c *Config) GetRenderOutDir() string {
	return c.getString("RENDER_OUT_DIR", "render.out_dir")
}

func (c *Config) GetRenderSeed() int64 {
	seed := c.config.GetInt64("RENDER_SEED")
	if seed == 0 {
		seed = c.config.GetInt64("render.seed")
	}

	return seed
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level")
}

// SketchConfig assembles and validates the particle system settings.
func (c *Config) SketchConfig() (particles.Config, error) {
	cfg := particles.DefaultConfig()
	cfg.K = c.GetK()
	cfg.FieldScale = c.GetFieldScale()
	cfg.Radius = c.GetRadius()
	cfg.Density = c.GetDensity()
	cfg.NoiseSeed = c.GetNoiseSeed()
	cfg.InitialLifeMax = c.GetInitialLife()
	cfg.RespawnLifeMax = c.GetRespawnLife()
	cfg.CullFactor = c.GetCullFactor()

	if err := cfg.Validate(); err != nil {
		return particles.Config{}, fmt.Errorf("sketch config: %w", err)
	}

	return cfg, nil
}

// Style builds the canvas style from the canvas size and stroke color.
func (c *Config) Style() (sketch.Style, error) {
	stroke, err := sketch.ParseHexColor(c.GetStrokeColor())
	if err != nil {
		return sketch.Style{}, fmt.Errorf("style config: %w", err)
	}

	return sketch.NewStyle(c.GetCanvasWidth(), c.GetCanvasHeight(), stroke), nil
}

// Noise builds the scalar noise primitive named by sketch.noise_kind.
func (c *Config) Noise() (field.Noise, error) {
	noise, err := field.NewNoise(c.GetNoiseKind(), c.GetNoiseSeed())
	if err != nil {
		return nil, fmt.Errorf("sketch config: %w", err)
	}

	return noise, nil
}

// BackgroundColor parses style.background.
func (c *Config) BackgroundColor() (color.RGBA, error) {
	background, err := sketch.ParseHexColor(c.GetBackground())
	if err != nil {
		return color.RGBA{}, fmt.Errorf("style config: %w", err)
	}

	return background, nil
}

// Settings returns every resolved setting, for snapshotting a run.
func (c *Config) Settings() map[string]any {
	return c.config.AllSettings()
}

func (c *Config) getFloat(envKey, key string) float64 {
	if c.config.IsSet(envKey) {
		return c.config.GetFloat64(envKey)
	}

	return c.config.GetFloat64(key)
}

func (c *Config) getString(envKey, key string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(key)
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
