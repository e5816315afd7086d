package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meghashyamc/curlplanet/config"
	"github.com/meghashyamc/curlplanet/logger"
)

var (
	configPath string

	cfg       *config.Config
	appLogger logger.Logger
)

// sketchFlags maps persistent flags onto the config keys they override.
var sketchFlags = map[string]string{
	"log-level":   "log.level",
	"k":           "sketch.k",
	"field-scale": "sketch.field_scale",
	"noise-kind":  "sketch.noise_kind",
	"noise-seed":  "sketch.noise_seed",
	"workers":     "sketch.workers",
	"stroke":      "style.stroke_color",
}

var rootCmd = &cobra.Command{
	Use:   "curlplanet",
	Short: "Animated particle planet driven by a curl noise field",
	Long: `curlplanet advects a grid of particles through a divergence-free curl noise
field and draws them as dots projected onto a disk. Without a subcommand it
opens a window; "render" writes frames and stats to disk instead.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              Run,
}

// Execute runs the command line against os.Args.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default config/config.$ENV.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Float64("k", 25, "projection softening; larger values make a smaller, denser planet")
	flags.Float64("field-scale", 0.05, "spatial frequency of the curl field")
	flags.String("noise-kind", "simple", "scalar noise under the curl field: simple or perlin")
	flags.Float64("noise-seed", 0, "seed of the scalar noise")
	flags.Int("workers", 1, "goroutines advecting particles each frame")
	flags.String("stroke", "#03e9f4", "dot color as #rrggbb")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load("")
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for name, key := range sketchFlags {
		if err := cfg.BindFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
			return err
		}
	}

	appLogger = logger.New(cfg.GetLogLevel())
	return nil
}
