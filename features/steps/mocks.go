//go:build integration

package steps

import (
	"context"
	"fmt"
	"strings"

	"audio-extractor/cmd"
	"audio-extractor/infrastructure/searchpath"
)

// mockRunner stands in for the ffmpeg process
type mockRunner struct {
	path     *searchpath.SearchPath
	toolDir  string // ffmpeg runs once this directory is on the search path
	exitCode int
	calls    [][]string
}

func (m *mockRunner) onPath() bool {
	for _, d := range m.path.Dirs() {
		if d == m.toolDir {
			return true
		}
	}
	return false
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	if !m.onPath() {
		return fmt.Errorf("%s: executable file not found in search path", name)
	}
	m.calls = append(m.calls, append([]string{name}, args...))
	if m.exitCode != 0 {
		return fmt.Errorf("exit status %d", m.exitCode)
	}
	return nil
}

func (m *mockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if !m.onPath() {
		return nil, fmt.Errorf("%s: executable file not found in search path", name)
	}
	return []byte("ffmpeg version 7.1 Copyright (c) 2000-2024 the FFmpeg developers\n"), nil
}

// extractCalls returns the recorded invocations that were not version probes
func (m *mockRunner) extractCalls() [][]string {
	var out [][]string
	for _, c := range m.calls {
		if len(c) > 1 && c[1] == "-version" {
			continue
		}
		out = append(out, c)
	}
	return out
}

type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool { return m.existingFiles[path] }
func (m *mockFileChecker) IsFile(path string) bool { return m.existingFiles[path] }

// scriptedPrompter answers prompts from queues filled by the scenario
type scriptedPrompter struct {
	inputs   []string
	confirms []bool
}

var _ cmd.Prompter = (*scriptedPrompter)(nil)

func (p *scriptedPrompter) Input(message string, defaultValue string) (string, error) {
	if len(p.inputs) == 0 {
		return defaultValue, nil
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	return v, nil
}

func (p *scriptedPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if len(p.confirms) == 0 {
		return defaultValue, nil
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func (p *scriptedPrompter) Path(message string, defaultValue string, filter cmd.PathFilter) (string, error) {
	return p.Input(message, defaultValue)
}

func containsLine(output, want string) error {
	if !strings.Contains(output, want) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", want, output)
	}
	return nil
}
