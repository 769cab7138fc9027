package cmd

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"audio-extractor/domain/media"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
	Path(message string, defaultValue string, filter PathFilter) (string, error)
}

// PathFilter narrows the completions offered by Path
type PathFilter struct {
	DirsOnly   bool
	Extensions []string // Empty means any file
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// Path asks for a filesystem path with tab completion
func (p *SurveyPrompter) Path(message string, defaultValue string, filter PathFilter) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
		Suggest: func(toComplete string) []string {
			return suggestPaths(toComplete, filter)
		},
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return expandHome(strings.TrimSpace(result)), nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

// suggestPaths lists directories and matching files that start with toComplete
func suggestPaths(toComplete string, filter PathFilter) []string {
	matches, _ := filepath.Glob(expandHome(toComplete) + "*")

	var out []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		switch {
		case info.IsDir():
			out = append(out, m+string(os.PathSeparator))
		case filter.DirsOnly:
		case len(filter.Extensions) == 0 || media.HasExtension(m, filter.Extensions):
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// promptChooser adapts a Prompter to toolchain.DirectoryChooser
type promptChooser struct {
	prompter   Prompter
	executable string
}

func (c *promptChooser) ConfirmLocate(ctx context.Context) (bool, error) {
	return c.prompter.Confirm("Do you want to specify the folder that contains "+c.executable+"?", true)
}

func (c *promptChooser) ChooseDirectory(ctx context.Context) (string, error) {
	return c.prompter.Path("Select the folder where "+c.executable+" is located:", "", PathFilter{DirsOnly: true})
}
