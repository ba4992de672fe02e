package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gaze/audio"
	"github.com/lixenwraith/gaze/parameter"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds gaze configuration
type Config struct {
	Physics PhysicsConfig     `toml:"physics"`
	Graph   GraphConfig       `toml:"graph"`
	Render  RenderConfig      `toml:"render"`
	Audio   audio.AudioConfig `toml:"audio"`
	Archive ArchiveConfig     `toml:"archive"`
	Metrics MetricsConfig     `toml:"metrics"`
}

// PhysicsConfig controls the frame loop and pointer handling
type PhysicsConfig struct {
	FrameIntervalMS int     `toml:"frame_interval_ms"`
	ClickThreshold  float64 `toml:"click_threshold"`
	Seed            uint64  `toml:"seed"` // 0 picks a random seed
}

// GraphConfig controls proximity edges
type GraphConfig struct {
	EdgeThreshold float64 `toml:"edge_threshold"`
}

// RenderConfig controls the world-to-cell mapping
type RenderConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// ArchiveConfig controls the sqlite archive, an empty path disables it
type ArchiveConfig struct {
	Path string `toml:"path"`
}

// MetricsConfig controls the metrics endpoint, an empty address disables it
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			FrameIntervalMS: int(parameter.FrameUpdateInterval / time.Millisecond),
			ClickThreshold:  parameter.ClickMoveThreshold,
		},
		Graph:  GraphConfig{EdgeThreshold: parameter.EdgeDistanceThreshold},
		Render: RenderConfig{CellWidth: parameter.CellWidth, CellHeight: parameter.CellHeight},
		Audio:  audio.DefaultAudioConfig(),
	}
}

// FrameInterval returns the frame interval as a duration
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Physics.FrameIntervalMS) * time.Millisecond
}

// ConfigDir returns the gaze config directory path
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gaze")
}

// DefaultPath returns the default config file path
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path, or the default path when empty
// A missing file yields defaults, environment overrides are applied last
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Audio = audio.LoadAudioConfig(cfg.Audio)

	if path, ok := os.LookupEnv("GAZE_ARCHIVE_PATH"); ok {
		cfg.Archive.Path = path
	}
	if addr, ok := os.LookupEnv("GAZE_METRICS_ADDR"); ok {
		cfg.Metrics.Addr = addr
	}
	if threshold := os.Getenv("GAZE_EDGE_THRESHOLD"); threshold != "" {
		if val, err := strconv.ParseFloat(threshold, 64); err == nil {
			cfg.Graph.EdgeThreshold = val
		}
	}
}

// Validate rejects settings the loop and renderer cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Physics.FrameIntervalMS <= 0:
		return fmt.Errorf("%w: physics.frame_interval_ms must be positive", ErrInvalidConfig)
	case c.Physics.ClickThreshold < 0:
		return fmt.Errorf("%w: physics.click_threshold must not be negative", ErrInvalidConfig)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("%w: render cell size must be positive", ErrInvalidConfig)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}

// Save writes the config to path, creating parent directories
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
