package ffmpeg

import (
	"context"
	"fmt"

	"audio-extractor/domain/media"
)

// Extractor implements media.AudioExtractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithFFmpegPath sets a custom ffmpeg executable name or path
func WithFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		e.ffmpegPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: media.ToolName,
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Args returns the ffmpeg arguments for req. The codec is left to ffmpeg,
// which picks it from the destination extension.
func Args(req *media.ConversionRequest) []string {
	args := []string{
		"-hide_banner",
		"-y", // Overwrite; callers confirm before reaching here
		"-i", req.SourcePath,
		"-vn", // No video
	}
	if req.Bitrate != "" {
		args = append(args, "-b:a", req.Bitrate)
	}
	return append(args, req.DestinationPath)
}

// Extract implements media.AudioExtractor
func (e *Extractor) Extract(ctx context.Context, req *media.ConversionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := e.runner.Run(ctx, e.ffmpegPath, Args(req)...); err != nil {
		return fmt.Errorf("%w: %w", media.ErrExtractionFailed, err)
	}

	return nil
}

// Ensure Extractor implements media.AudioExtractor
var _ media.AudioExtractor = (*Extractor)(nil)
