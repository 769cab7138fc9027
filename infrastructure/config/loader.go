package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when --config is not given
const DefaultPath = "config/config.yaml"

// DefaultProbeTimeout bounds the `ffmpeg -version` check
const DefaultProbeTimeout = 5 * time.Second

// DefaultVideoExtensions are offered by the source file picker
var DefaultVideoExtensions = []string{".mp4", ".avi", ".mov"}

// Config represents the complete application configuration
type Config struct {
	FFmpeg FFmpegConfig `yaml:"ffmpeg"`
	Audio  AudioConfig  `yaml:"audio"`
	Video  VideoConfig  `yaml:"video"`
	Notify NotifyConfig `yaml:"notify"`
}

// FFmpegConfig controls how the conversion tool is found
type FFmpegConfig struct {
	// Directory is appended to the search path at startup
	Directory    string        `yaml:"directory,omitempty"`
	ProbeTimeout time.Duration `yaml:"probe_timeout,omitempty" validate:"gte=0"`
}

// AudioConfig contains audio extraction settings
type AudioConfig struct {
	Bitrate   string `yaml:"bitrate,omitempty" validate:"omitempty,endswith=k"`
	Extension string `yaml:"extension" validate:"required,startswith=."`
}

// VideoConfig lists the extensions accepted as sources
type VideoConfig struct {
	Extensions []string `yaml:"extensions" validate:"required,min=1,dive,startswith=."`
}

// NotifyConfig toggles desktop notifications
type NotifyConfig struct {
	Desktop bool `yaml:"desktop"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file exists
func Default() *Config {
	exts := make([]string, len(DefaultVideoExtensions))
	copy(exts, DefaultVideoExtensions)
	return &Config{
		FFmpeg: FFmpegConfig{ProbeTimeout: DefaultProbeTimeout},
		Audio:  AudioConfig{Extension: ".mp3"},
		Video:  VideoConfig{Extensions: exts},
	}
}

// Load reads and parses the configuration from the specified YAML file.
// Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not exist
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ProbeTimeout returns the configured timeout or the default
func (c *Config) ProbeTimeout() time.Duration {
	if c.FFmpeg.ProbeTimeout <= 0 {
		return DefaultProbeTimeout
	}
	return c.FFmpeg.ProbeTimeout
}
