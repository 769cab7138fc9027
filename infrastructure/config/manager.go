package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Errors for config management
var (
	ErrUnknownKey        = errors.New("unknown config key")
	ErrExtensionExists   = errors.New("extension already configured")
	ErrExtensionNotFound = errors.New("extension not configured")
	ErrLastExtension     = errors.New("at least one video extension is required")
)

// Keys lists the settings accepted by Set and Get
var Keys = []string{
	"ffmpeg.directory",
	"ffmpeg.probe_timeout",
	"audio.bitrate",
	"audio.extension",
	"notify.desktop",
}

// ConfigManager provides edit operations for config entries
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a new config manager
func NewConfigManager(cfg *Config, configPath string) *ConfigManager {
	return &ConfigManager{
		config:     cfg,
		configPath: configPath,
	}
}

// Get returns the string form of a setting
func (m *ConfigManager) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case "ffmpeg.directory":
		return m.config.FFmpeg.Directory, nil
	case "ffmpeg.probe_timeout":
		return m.config.ProbeTimeout().String(), nil
	case "audio.bitrate":
		return m.config.Audio.Bitrate, nil
	case "audio.extension":
		return m.config.Audio.Extension, nil
	case "notify.desktop":
		return strconv.FormatBool(m.config.Notify.Desktop), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Set updates a setting and saves the file
func (m *ConfigManager) Set(key, value string) error {
	value = strings.TrimSpace(value)
	updated := *m.config

	switch normalizeKey(key) {
	case "ffmpeg.directory":
		updated.FFmpeg.Directory = value
	case "ffmpeg.probe_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		updated.FFmpeg.ProbeTimeout = d
	case "audio.bitrate":
		updated.Audio.Bitrate = value
	case "audio.extension":
		updated.Audio.Extension = normalizeExtension(value)
	case "notify.desktop":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		updated.Notify.Desktop = b
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	*m.config = updated
	return Save(m.config, m.configPath)
}

// --- Video extension CRUD ---

// AddExtension adds a source video extension
func (m *ConfigManager) AddExtension(ext string) error {
	ext = normalizeExtension(ext)
	if ext == "" {
		return fmt.Errorf("extension is required")
	}

	for _, e := range m.config.Video.Extensions {
		if e == ext {
			return fmt.Errorf("%w: %q", ErrExtensionExists, ext)
		}
	}

	m.config.Video.Extensions = append(m.config.Video.Extensions, ext)
	return Save(m.config, m.configPath)
}

// ListExtensions returns the configured source extensions, sorted
func (m *ConfigManager) ListExtensions() []string {
	result := make([]string, len(m.config.Video.Extensions))
	copy(result, m.config.Video.Extensions)
	sort.Strings(result)
	return result
}

// RemoveExtension removes a source video extension
func (m *ConfigManager) RemoveExtension(ext string) error {
	ext = normalizeExtension(ext)

	idx := -1
	for i, e := range m.config.Video.Extensions {
		if e == ext {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrExtensionNotFound, ext)
	}
	if len(m.config.Video.Extensions) == 1 {
		return ErrLastExtension
	}

	m.config.Video.Extensions = append(m.config.Video.Extensions[:idx], m.config.Video.Extensions[idx+1:]...)
	return Save(m.config, m.configPath)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
