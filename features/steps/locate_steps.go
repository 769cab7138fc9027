//go:build integration

package steps

import (
	"context"

	"audio-extractor/cmd"
	"audio-extractor/infrastructure/ffmpeg"

	"github.com/cucumber/godog"
)

// Locate scenarios share the conversion context and its search path

func InitializeLocateScenario(ctx *godog.ScenarioContext) {
	ctx.Step(`^I run locate$`, iRunLocate)
	ctx.Step(`^I run locate with "([^"]*)"$`, iRunLocateWith)
	ctx.Step(`^the search path should include "([^"]*)"$`, theSearchPathShouldInclude)
}

func iRunLocate() error {
	return iRunLocateWith("")
}

func iRunLocateWith(dir string) error {
	c := getConvertContext()
	c.err = cmd.RunLocateWithDependencies(context.Background(), c.locator(), ffmpeg.NewProber(c.runner), dir, c.output)
	return nil
}

func theSearchPathShouldInclude(dir string) error {
	return containsLine(getConvertContext().path.String(), dir)
}
