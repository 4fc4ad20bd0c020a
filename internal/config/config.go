// Package config holds the tunable parameters of the sandbox. Values load
// from an optional yaml file; anything unset falls back to the reference
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Render RenderConfig `yaml:"render"`
}

// WorldConfig controls terrain generation and world extent
type WorldConfig struct {
	Size            int `yaml:"size"`
	BaseHeight      int `yaml:"base_height"`
	HeightVariation int `yaml:"height_variation"`
	MaxHeight       int `yaml:"max_height"`
}

// PlayerConfig controls the player's shape and movement physics
type PlayerConfig struct {
	Height           float64 `yaml:"height"`
	Radius           float64 `yaml:"radius"`
	EyeOffset        float64 `yaml:"eye_offset"`
	WalkSpeed        float64 `yaml:"walk_speed"`
	SprintSpeed      float64 `yaml:"sprint_speed"`
	Gravity          float64 `yaml:"gravity"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	ReachDistance    float64 `yaml:"reach_distance"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

// RenderConfig controls the window and the per-frame chunk combine budget
type RenderConfig struct {
	WindowWidth           int    `yaml:"window_width"`
	WindowHeight          int    `yaml:"window_height"`
	ChunkCollectsPerFrame int    `yaml:"chunk_collects_per_frame"`
	TextureDir            string `yaml:"texture_dir"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		World: WorldConfig{
			Size:            28,
			BaseHeight:      3,
			HeightVariation: 2,
			MaxHeight:       7,
		},
		Player: PlayerConfig{
			Height:           2.0,
			Radius:           0.49,
			EyeOffset:        0.5,
			WalkSpeed:        5.0,
			SprintSpeed:      8.0,
			Gravity:          24.0,
			JumpSpeed:        8.5,
			ReachDistance:    7.5,
			MouseSensitivity: 0.12,
		},
		Render: RenderConfig{
			WindowWidth:           1280,
			WindowHeight:          720,
			ChunkCollectsPerFrame: 2,
			TextureDir:            "assets/textures",
		},
	}
}

// Load reads configuration from a yaml file layered over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c *Config) Validate() error {
	if c.World.Size < 1 {
		return fmt.Errorf("world.size must be at least 1, got %d", c.World.Size)
	}
	if c.World.MaxHeight < 1 {
		return fmt.Errorf("world.max_height must be at least 1, got %d", c.World.MaxHeight)
	}
	if c.Player.Height <= 0 || c.Player.Radius <= 0 {
		return fmt.Errorf("player dimensions must be positive, got height=%v radius=%v",
			c.Player.Height, c.Player.Radius)
	}
	if c.Player.Radius >= 0.5 {
		return fmt.Errorf("player.radius must be under half a block, got %v", c.Player.Radius)
	}
	if c.Render.ChunkCollectsPerFrame < 1 {
		return fmt.Errorf("render.chunk_collects_per_frame must be at least 1, got %d",
			c.Render.ChunkCollectsPerFrame)
	}
	return nil
}
