package cmd

import (
	"context"
	"fmt"

	appconversion "audio-extractor/application/conversion"
	"audio-extractor/application/toolchain"
	"audio-extractor/domain/media"
	"audio-extractor/domain/session"

	"github.com/spf13/cobra"
)

var (
	convertSourcePath string
	convertOutputPath string
	convertBitrate    string
	convertOverwrite  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Extract audio from a video file",
	Long: `Extract the audio track of a video file to an MP3 file.

Paths not given as flags are asked for interactively. The output path
defaults to the video path with the .mp3 extension.

Example:
  audio-extractor convert --source /tmp/in.mp4 --output /tmp/in.mp3
  audio-extractor convert --source clip.mov --bitrate 192k`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addConvertFlags(convertCmd)
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&convertSourcePath, "source", "s", "", "Path to the source video file")
	cmd.Flags().StringVarP(&convertOutputPath, "output", "o", "", "Path of the audio file to write")
	cmd.Flags().StringVar(&convertBitrate, "bitrate", "", "Audio bitrate, e.g. 192k (default from config or ffmpeg)")
	cmd.Flags().BoolVarP(&convertOverwrite, "yes", "y", false, "Overwrite the output file without asking")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := GetConfig()
	if err != nil {
		return err
	}

	c := newComponents(cfg, defaultLogger(), terminalNotifiers(cfg, DefaultOutput)...)

	return RunConvertWithDependencies(
		cmd.Context(),
		c.locator,
		c.converter,
		c.files,
		DefaultPrompter,
		ConvertOptions{
			SourcePath:      convertSourcePath,
			DestinationPath: convertOutputPath,
			Bitrate:         convertBitrate,
			Overwrite:       convertOverwrite,
			VideoExtensions: cfg.Video.Extensions,
			AudioExtension:  cfg.Audio.Extension,
		},
		DefaultOutput,
	)
}

// ToolEnsurer makes ffmpeg available or fails
type ToolEnsurer interface {
	Ensure(ctx context.Context, chooser toolchain.DirectoryChooser) (media.Availability, error)
	Executable() string
}

// Converter runs one extraction and reports its outcome
type Converter interface {
	Extract(ctx context.Context, input appconversion.Input) (*appconversion.Result, error)
}

// ConvertOptions carries flag values and config defaults into the flow
type ConvertOptions struct {
	SourcePath      string
	DestinationPath string
	Bitrate         string
	Overwrite       bool
	VideoExtensions []string
	AudioExtension  string
}

// RunConvertWithDependencies runs the interactive flow with injected dependencies (for testing)
func RunConvertWithDependencies(
	ctx context.Context,
	locator ToolEnsurer,
	converter Converter,
	files media.FileChecker,
	prompter Prompter,
	opts ConvertOptions,
	output OutputWriter,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := locator.Ensure(ctx, &promptChooser{prompter: prompter, executable: locator.Executable()}); err != nil {
		return err
	}
	sess := session.New().ToolLocated()

	source := opts.SourcePath
	if source == "" {
		var err error
		source, err = prompter.Path("Select a video file:", "", PathFilter{Extensions: opts.VideoExtensions})
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
	}
	sess, err := sess.ChooseSource(source)
	if err != nil {
		return err
	}

	destination := opts.DestinationPath
	if destination == "" {
		ext := opts.AudioExtension
		if ext == "" {
			ext = media.DefaultAudioExtension
		}
		destination, err = prompter.Path("Save audio file as:", media.DefaultDestination(sess.Source(), ext), PathFilter{Extensions: []string{ext}})
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
	}
	if sess, err = sess.ChooseDestination(destination); err != nil {
		return err
	}

	if sess.Destination() != "" && files.Exists(sess.Destination()) && !opts.Overwrite {
		overwrite, err := prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", sess.Destination()), false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Fprintln(output, "Conversion cancelled.")
			return nil
		}
	}

	if sess.CanConvert() {
		fmt.Fprintf(output, "Extracting audio from %s...\n", sess.Source())
	}

	_, err = converter.Extract(ctx, appconversion.Input{
		SourcePath:      sess.Source(),
		DestinationPath: sess.Destination(),
		Bitrate:         opts.Bitrate,
	})
	return err
}
