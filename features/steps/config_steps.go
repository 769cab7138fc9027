//go:build integration

package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audio-extractor/infrastructure/config"

	"github.com/cucumber/godog"
)

type configContext struct {
	dir        string
	configPath string
	cfg        *config.Config
	loadErr    error
}

// SharedConfigContext is reset before each scenario via Before hook
var SharedConfigContext = &configContext{}

func InitializeConfigScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "audio-extractor-config-*")
		if err != nil {
			return c, err
		}
		SharedConfigContext = &configContext{dir: dir}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedConfigContext.dir != "" {
			os.RemoveAll(SharedConfigContext.dir)
		}
		SharedConfigContext = &configContext{}
		return c, nil
	})

	ctx.Step(`^a configuration file with content:$`, aConfigurationFileWithContent)
	ctx.Step(`^no configuration file exists$`, noConfigurationFileExists)
	ctx.Step(`^I load the configuration$`, iLoadTheConfiguration)
	ctx.Step(`^the ffmpeg directory should be "([^"]*)"$`, theFFmpegDirectoryShouldBe)
	ctx.Step(`^the audio bitrate should be "([^"]*)"$`, theAudioBitrateShouldBe)
	ctx.Step(`^the video extensions should be "([^"]*)"$`, theVideoExtensionsShouldBe)
	ctx.Step(`^loading should fail mentioning "([^"]*)"$`, loadingShouldFailMentioning)
}

func aConfigurationFileWithContent(doc *godog.DocString) error {
	c := SharedConfigContext
	c.configPath = filepath.Join(c.dir, "config.yaml")
	return os.WriteFile(c.configPath, []byte(doc.Content), 0644)
}

func noConfigurationFileExists() error {
	c := SharedConfigContext
	c.configPath = filepath.Join(c.dir, "missing.yaml")
	return nil
}

func iLoadTheConfiguration() error {
	c := SharedConfigContext
	c.cfg, c.loadErr = config.LoadOrDefault(c.configPath)
	return nil
}

func loadedConfig() (*config.Config, error) {
	c := SharedConfigContext
	if c.loadErr != nil {
		return nil, fmt.Errorf("configuration failed to load: %w", c.loadErr)
	}
	return c.cfg, nil
}

func theFFmpegDirectoryShouldBe(want string) error {
	cfg, err := loadedConfig()
	if err != nil {
		return err
	}
	if cfg.FFmpeg.Directory != want {
		return fmt.Errorf("expected ffmpeg directory %q, got %q", want, cfg.FFmpeg.Directory)
	}
	return nil
}

func theAudioBitrateShouldBe(want string) error {
	cfg, err := loadedConfig()
	if err != nil {
		return err
	}
	if cfg.Audio.Bitrate != want {
		return fmt.Errorf("expected bitrate %q, got %q", want, cfg.Audio.Bitrate)
	}
	return nil
}

func theVideoExtensionsShouldBe(want string) error {
	cfg, err := loadedConfig()
	if err != nil {
		return err
	}
	if got := strings.Join(cfg.Video.Extensions, " "); got != want {
		return fmt.Errorf("expected video extensions %q, got %q", want, got)
	}
	return nil
}

func loadingShouldFailMentioning(text string) error {
	c := SharedConfigContext
	if c.loadErr == nil {
		return fmt.Errorf("expected configuration error, got none")
	}
	if !strings.Contains(c.loadErr.Error(), text) {
		return fmt.Errorf("expected error mentioning %q, got %v", text, c.loadErr)
	}
	return nil
}
