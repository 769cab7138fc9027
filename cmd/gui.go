package cmd

import (
	"context"

	"audio-extractor/infrastructure/gui"
	"audio-extractor/infrastructure/notify"

	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop window",
	Long: `Open a window with file pickers for the video and the output file.

The window is available in binaries built with -tags gui.`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := GetConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The window shows its own dialogs; only the desktop notifier is added here
	c := newComponents(cfg, defaultLogger())
	opts := gui.Options{
		Prober:          c.prober,
		Files:           c.files,
		SearchPath:      c.searchPath,
		Extractor:       c.extractor,
		Logger:          c.logger,
		Bitrate:         cfg.Audio.Bitrate,
		ProbeTimeout:    cfg.ProbeTimeout(),
		VideoExtensions: cfg.Video.Extensions,
		AudioExtension:  cfg.Audio.Extension,
	}
	if notifyFlag || cfg.Notify.Desktop {
		opts.Notifiers = append(opts.Notifiers, notify.NewDesktop())
	}

	return gui.Run(ctx, opts)
}
