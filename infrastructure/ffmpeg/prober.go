package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"audio-extractor/domain/media"
)

// Prober implements media.ToolProber by running `ffmpeg -version`
type Prober struct {
	ffmpegPath string
	runner     CommandRunner
}

// NewProber creates a Prober that runs the tool through runner
func NewProber(runner CommandRunner) *Prober {
	return &Prober{
		ffmpegPath: media.ToolName,
		runner:     runner,
	}
}

// Probe implements media.ToolProber. A missing executable, a spawn failure
// and a non-zero exit all return an error.
func (p *Prober) Probe(ctx context.Context) error {
	if _, err := p.runner.Output(ctx, p.ffmpegPath, "-version"); err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Version returns the first line of `ffmpeg -version`
func (p *Prober) Version(ctx context.Context) (string, error) {
	out, err := p.runner.Output(ctx, p.ffmpegPath, "-version")
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return firstLine(out), nil
}

func firstLine(out []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(out))
	if sc.Scan() {
		return strings.TrimSpace(sc.Text())
	}
	return ""
}

// Ensure Prober implements media.ToolProber
var _ media.ToolProber = (*Prober)(nil)
