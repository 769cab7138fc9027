package cmd

import (
	"context"
	"fmt"

	"audio-extractor/domain/media"

	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate [DIR]",
	Short: "Check that ffmpeg can be run",
	Long: `Check that ffmpeg can be run from the search path.

If ffmpeg is not found and DIR is given, look for the ffmpeg executable
directly inside DIR, add DIR to the search path for this run and check again. DIR is not saved; use
'audio-extractor config set ffmpeg.directory DIR' to keep it.

Example:
  audio-extractor locate
  audio-extractor locate /opt/ffmpeg/bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	cfg, err := GetConfig()
	if err != nil {
		return err
	}

	c := newComponents(cfg, defaultLogger(), terminalNotifiers(cfg, DefaultOutput)...)

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}

	return RunLocateWithDependencies(cmd.Context(), c.locator, c.prober, dir, DefaultOutput)
}

// ToolLocator is the part of toolchain.Locator used by the locate command
type ToolLocator interface {
	Probe(ctx context.Context) media.Availability
	TryDirectory(ctx context.Context, dir string) (media.Availability, error)
	Executable() string
}

// RunLocateWithDependencies runs the locate command with injected dependencies (for testing)
func RunLocateWithDependencies(ctx context.Context, locator ToolLocator, prober media.ToolProber, dir string, output OutputWriter) error {
	if ctx == nil {
		ctx = context.Background()
	}

	avail := locator.Probe(ctx)
	if dir != "" && !avail.Available {
		var err error
		if avail, err = locator.TryDirectory(ctx, dir); err != nil {
			return err
		}
	}

	if !avail.Available {
		fmt.Fprintf(output, "%s is not available on the search path\n", locator.Executable())
		return media.ErrToolUnavailable
	}

	// Print the version when the prober supports it
	if versioned, ok := prober.(interface {
		Version(context.Context) (string, error)
	}); ok {
		if v, err := versioned.Version(ctx); err == nil && v != "" {
			fmt.Fprintln(output, v)
		}
	}

	if avail.Directory != "" {
		fmt.Fprintf(output, "%s is available from %s\n", locator.Executable(), avail.Directory)
	} else {
		fmt.Fprintf(output, "%s is available\n", locator.Executable())
	}
	return nil
}
