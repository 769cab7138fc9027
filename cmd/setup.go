package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audio-extractor/infrastructure/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

The configuration file is optional. Without it ffmpeg is looked up on PATH,
ffmpeg picks the bitrate, and .mp4, .avi and .mov files are offered as sources.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, cfgFile, DefaultOutput)
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string, output OutputWriter) error {
	if configPath == "" {
		configPath = config.DefaultPath
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Fprintln(output, "Setup cancelled.")
			return nil
		}
	}

	fmt.Fprintln(output, "Welcome to audio-extractor setup!")
	fmt.Fprintln(output)

	cfg := config.Default()

	if err := promptFFmpeg(prompter, cfg); err != nil {
		return err
	}

	if err := promptAudio(prompter, cfg); err != nil {
		return err
	}

	if err := promptVideo(prompter, cfg); err != nil {
		return err
	}

	notifyDesktop, err := prompter.Confirm("Show desktop notifications when a conversion finishes?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Notify.Desktop = notifyDesktop

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Save configuration
	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintln(output)
	fmt.Fprintf(output, "Configuration saved to %s\n", configPath)
	return nil
}

func promptFFmpeg(prompter Prompter, cfg *config.Config) error {
	dir, err := prompter.Path("Folder that contains ffmpeg (leave empty to use PATH)?", "", PathFilter{DirsOnly: true})
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.FFmpeg.Directory = strings.TrimSpace(dir)
	return nil
}

func promptAudio(prompter Prompter, cfg *config.Config) error {
	bitrate, err := prompter.Input("Audio bitrate for mp3 extraction (leave empty for ffmpeg default)?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	bitrate = strings.TrimSpace(bitrate)
	if bitrate != "" && !strings.HasSuffix(bitrate, "k") {
		return fmt.Errorf("bitrate must look like 192k")
	}
	cfg.Audio.Bitrate = bitrate
	return nil
}

func promptVideo(prompter Prompter, cfg *config.Config) error {
	answer, err := prompter.Input("Video extensions to offer (comma separated)?", strings.Join(config.DefaultVideoExtensions, ", "))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}

	exts := parseExtensions(answer)
	if len(exts) == 0 {
		return fmt.Errorf("at least one video extension is required")
	}
	cfg.Video.Extensions = exts
	return nil
}

func parseExtensions(answer string) []string {
	var exts []string
	seen := map[string]bool{}
	for _, part := range strings.Split(answer, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	return exts
}

func ensureConfigDir(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
