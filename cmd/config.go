package cmd

import (
	"fmt"
	"text/tabwriter"

	"audio-extractor/infrastructure/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration entries",
	Long: `Show and edit the settings in the configuration file.

Examples:
  audio-extractor config list
  audio-extractor config set ffmpeg.directory /opt/ffmpeg/bin
  audio-extractor config get audio.bitrate
  audio-extractor config add-extension .mkv
  audio-extractor config remove-extension .avi`,
}

func init() {
	rootCmd.AddCommand(configCmd)

	// Add subcommands
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configAddExtensionCmd)
	configCmd.AddCommand(configRemoveExtensionCmd)
}

// --- LIST command ---

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		return RunConfigListWithDependencies(cfg, cfgFile, DefaultOutput)
	},
}

// RunConfigListWithDependencies runs the list command with injected dependencies
func RunConfigListWithDependencies(cfg *config.Config, configPath string, out OutputWriter) error {
	mgr := config.NewConfigManager(cfg, configPath)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "KEY\tVALUE")
	for _, key := range config.Keys {
		value, err := mgr.Get(key)
		if err != nil {
			return err
		}
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", key, value)
	}
	for _, ext := range mgr.ListExtensions() {
		fmt.Fprintf(w, "video.extension\t%s\n", ext)
	}

	return w.Flush()
}

// --- GET command ---

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		value, err := config.NewConfigManager(cfg, cfgFile).Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(DefaultOutput, value)
		return nil
	},
}

// --- SET command ---

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting and save the configuration file.

Keys: ffmpeg.directory, ffmpeg.probe_timeout, audio.bitrate, audio.extension, notify.desktop`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		return RunConfigSetWithDependencies(cfg, cfgFile, args[0], args[1], DefaultOutput)
	},
}

// RunConfigSetWithDependencies runs the set command with injected dependencies
func RunConfigSetWithDependencies(cfg *config.Config, configPath, key, value string, out OutputWriter) error {
	if err := ensureConfigDir(configPath); err != nil {
		return err
	}
	mgr := config.NewConfigManager(cfg, configPath)
	if err := mgr.Set(key, value); err != nil {
		return err
	}
	fmt.Fprintf(out, "Set %s\n", key)
	return nil
}

// --- EXTENSION commands ---

var configAddExtensionCmd = &cobra.Command{
	Use:   "add-extension EXT",
	Short: "Offer another video extension as a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		return RunConfigExtensionWithDependencies(cfg, cfgFile, "add", args[0], DefaultOutput)
	},
}

var configRemoveExtensionCmd = &cobra.Command{
	Use:   "remove-extension EXT",
	Short: "Stop offering a video extension as a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		return RunConfigExtensionWithDependencies(cfg, cfgFile, "remove", args[0], DefaultOutput)
	},
}

// RunConfigExtensionWithDependencies adds or removes a video extension
func RunConfigExtensionWithDependencies(cfg *config.Config, configPath, action, ext string, out OutputWriter) error {
	if err := ensureConfigDir(configPath); err != nil {
		return err
	}
	mgr := config.NewConfigManager(cfg, configPath)

	switch action {
	case "add":
		if err := mgr.AddExtension(ext); err != nil {
			return err
		}
		fmt.Fprintf(out, "Added extension %s\n", ext)
	case "remove":
		if err := mgr.RemoveExtension(ext); err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed extension %s\n", ext)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}
