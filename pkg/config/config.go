// Package config loads voxcast settings from defaults, an optional YAML file,
// VOXCAST_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/voxcast/pkg/game"
	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/render"
	"github.com/taigrr/voxcast/pkg/rng"
	"github.com/taigrr/voxcast/pkg/voxel"
)

// FileName is the config file base name searched for without an explicit path.
const FileName = "voxcast"

// EnvPrefix prefixes environment overrides, e.g. VOXCAST_WORLD_SEED.
const EnvPrefix = "VOXCAST"

// Config is the full set of user settings.
type Config struct {
	World  WorldConfig  `yaml:"world" mapstructure:"world"`
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Player PlayerConfig `yaml:"player" mapstructure:"player"`
	Demo   bool         `yaml:"demo" mapstructure:"demo"`
}

// WorldConfig describes how the voxel world is generated.
type WorldConfig struct {
	Size      int    `yaml:"size" mapstructure:"size"`
	Seed      uint32 `yaml:"seed" mapstructure:"seed"`
	Generator string `yaml:"generator" mapstructure:"generator"`
	Threshold uint32 `yaml:"threshold" mapstructure:"threshold"`
}

// RenderConfig controls the framebuffer and ray ranges.
type RenderConfig struct {
	Width       int     `yaml:"width" mapstructure:"width"`
	Height      int     `yaml:"height" mapstructure:"height"`
	RayRange    float64 `yaml:"ray_range" mapstructure:"ray_range"`
	ShadowRange float64 `yaml:"shadow_range" mapstructure:"shadow_range"`
	Texture     string  `yaml:"texture" mapstructure:"texture"`
	Crosshair   bool    `yaml:"crosshair" mapstructure:"crosshair"`
	Outline     bool    `yaml:"outline" mapstructure:"outline"`
	FPS         int     `yaml:"fps" mapstructure:"fps"`
}

// PlayerConfig places the camera and sets its reach.
type PlayerConfig struct {
	Start            []float64 `yaml:"start" mapstructure:"start"`
	InteractDistance float64   `yaml:"interact_distance" mapstructure:"interact_distance"`
}

// Textures maps texture names accepted in RenderConfig.Texture to bitmaps.
var Textures = map[string]*render.Bitmap{
	"smiley":  &render.Smiley,
	"checker": &render.Checker,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Size:      voxel.DefaultSize,
			Seed:      rng.DefaultSeed,
			Generator: voxel.GeneratorScatter,
			Threshold: voxel.DefaultThreshold,
		},
		Render: RenderConfig{
			Width:       render.DefaultScreenSize,
			Height:      render.DefaultScreenSize,
			RayRange:    render.DefaultRayRange,
			ShadowRange: render.DefaultShadowRange,
			Texture:     "smiley",
			Crosshair:   true,
			FPS:         60,
		},
		Player: PlayerConfig{
			Start:            []float64{15.5, 15.5, 15.5},
			InteractDistance: game.DefaultInteractDistance,
		},
	}
}

// NewViper returns a viper instance seeded with the defaults and wired to
// VOXCAST_* environment variables. Callers bind flags onto it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("world.size", d.World.Size)
	v.SetDefault("world.seed", d.World.Seed)
	v.SetDefault("world.generator", d.World.Generator)
	v.SetDefault("world.threshold", d.World.Threshold)
	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.height", d.Render.Height)
	v.SetDefault("render.ray_range", d.Render.RayRange)
	v.SetDefault("render.shadow_range", d.Render.ShadowRange)
	v.SetDefault("render.texture", d.Render.Texture)
	v.SetDefault("render.crosshair", d.Render.Crosshair)
	v.SetDefault("render.outline", d.Render.Outline)
	v.SetDefault("render.fps", d.Render.FPS)
	v.SetDefault("player.start", d.Player.Start)
	v.SetDefault("player.interact_distance", d.Player.InteractDistance)
	v.SetDefault("demo", d.Demo)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration into v and decodes it. An empty path searches the
// working directory and ~/.voxcast for voxcast.yaml; a missing file there is
// not an error. An explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the renderer cannot run with.
func (c *Config) Validate() error {
	if !voxel.IsPowerOfTwo(c.World.Size) {
		return fmt.Errorf("world.size %d: %w", c.World.Size, voxel.ErrSizeNotPowerOfTwo)
	}
	if _, err := voxel.NewGenerator(c.World.Generator, c.World.Seed, c.World.Threshold); err != nil {
		return fmt.Errorf("world.generator: %w", err)
	}
	if c.World.Threshold >= 100 {
		return fmt.Errorf("world.threshold %d must be below 100", c.World.Threshold)
	}
	if c.Render.Width <= 0 || c.Render.Width%4 != 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size %dx%d: %w", c.Render.Width, c.Render.Height, render.ErrInvalidSize)
	}
	if c.Render.RayRange <= 0 || c.Render.ShadowRange <= 0 {
		return errors.New("render ranges must be positive")
	}
	if _, ok := Textures[c.Render.Texture]; !ok {
		return fmt.Errorf("unknown texture %q", c.Render.Texture)
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("render.fps %d must be positive", c.Render.FPS)
	}
	if len(c.Player.Start) != 3 {
		return fmt.Errorf("player.start needs 3 coordinates, got %d", len(c.Player.Start))
	}
	if c.Player.InteractDistance <= 0 {
		return errors.New("player.interact_distance must be positive")
	}
	return nil
}

// GameOptions converts the configuration into game construction options.
func (c *Config) GameOptions() (game.Options, error) {
	gen, err := voxel.NewGenerator(c.World.Generator, c.World.Seed, c.World.Threshold)
	if err != nil {
		return game.Options{}, err
	}
	if len(c.Player.Start) != 3 {
		return game.Options{}, fmt.Errorf("player.start needs 3 coordinates, got %d", len(c.Player.Start))
	}
	return game.Options{
		GridSize:         c.World.Size,
		Generator:        gen,
		Start:            math3d.V3(c.Player.Start[0], c.Player.Start[1], c.Player.Start[2]),
		ScreenWidth:      c.Render.Width,
		ScreenHeight:     c.Render.Height,
		RayRange:         c.Render.RayRange,
		ShadowRange:      c.Render.ShadowRange,
		InteractDistance: c.Player.InteractDistance,
		Texture:          Textures[c.Render.Texture],
		Crosshair:        c.Render.Crosshair,
		Outline:          c.Render.Outline,
		Demo:             c.Demo,
	}, nil
}

// Write saves c as YAML at path, creating parent directories.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
