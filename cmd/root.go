package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"audio-extractor/domain/media"
	"audio-extractor/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	cfg        *config.Config
	cfgErr     error
	verbose    bool
	notifyFlag bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "audio-extractor",
	Short: "Extract the audio track of a video file to MP3",
	Long: `audio-extractor extracts the audio track of a video file to an MP3 file
using ffmpeg.

Run without a subcommand to be asked for the video file and the output path.
If ffmpeg is not on your PATH you will be asked for the folder that contains it.

Example:
  audio-extractor
  audio-extractor convert --source in.mp4 --output in.mp3`,
	SilenceUsage: true,
	RunE:         runConvert,
}

// Execute runs the root command. A declined ffmpeg lookup exits with status 2.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, media.ErrTerminated) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&notifyFlag, "notify", false, "also send desktop notifications")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	addConvertFlags(rootCmd)
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = config.DefaultPath
	}

	// A missing file means defaults; a malformed one is reported by commands
	cfg, cfgErr = config.LoadOrDefault(cfgFile)
}

// GetConfig returns the loaded configuration
func GetConfig() (*config.Config, error) {
	if cfgErr != nil {
		return nil, cfgErr
	}
	if cfg == nil {
		return config.Default(), nil
	}
	return cfg, nil
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// DefaultOutput is the default output writer for commands
var DefaultOutput OutputWriter = os.Stdout

// newLogger builds the structured logger for diagnostics on w
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
