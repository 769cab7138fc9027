//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	appconversion "audio-extractor/application/conversion"
	appnotification "audio-extractor/application/notification"
	"audio-extractor/application/toolchain"
	"audio-extractor/cmd"
	"audio-extractor/domain/media"
	"audio-extractor/infrastructure/ffmpeg"
	"audio-extractor/infrastructure/notify"
	"audio-extractor/infrastructure/searchpath"

	"github.com/cucumber/godog"
)

// convertContext holds test state for conversion and locate scenarios
type convertContext struct {
	path     *searchpath.SearchPath
	runner   *mockRunner
	files    *mockFileChecker
	prompter *scriptedPrompter
	output   *bytes.Buffer
	opts     cmd.ConvertOptions
	err      error
}

// SharedConvertContext is reset before each scenario via Before hook
var SharedConvertContext *convertContext

func getConvertContext() *convertContext {
	return SharedConvertContext
}

func newConvertContext() *convertContext {
	sp := searchpath.New("/usr/bin")
	return &convertContext{
		path:     sp,
		runner:   &mockRunner{path: sp, toolDir: "/usr/bin"},
		files:    &mockFileChecker{existingFiles: make(map[string]bool)},
		prompter: &scriptedPrompter{},
		output:   &bytes.Buffer{},
		opts:     cmd.ConvertOptions{AudioExtension: media.DefaultAudioExtension},
	}
}

func (c *convertContext) locator() *toolchain.Locator {
	svc := appnotification.NewService(notify.NewConsole(c.output, true), nil)
	return toolchain.NewLocator(
		ffmpeg.NewProber(c.runner),
		c.files,
		c.path,
		toolchain.WithExecutableName("ffmpeg"),
		toolchain.WithNotifier(svc),
	)
}

func (c *convertContext) converter() *appconversion.Service {
	svc := appnotification.NewService(notify.NewConsole(c.output, true), nil)
	extractor := ffmpeg.NewExtractor(ffmpeg.WithCommandRunner(c.runner))
	return appconversion.NewService(extractor, svc, nil, "")
}

func InitializeConvertScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedConvertContext = newConvertContext()
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedConvertContext = nil
		return c, nil
	})

	ctx.Step(`^ffmpeg is on the search path$`, ffmpegIsOnTheSearchPath)
	ctx.Step(`^ffmpeg is not on the search path$`, ffmpegIsNotOnTheSearchPath)
	ctx.Step(`^ffmpeg is installed in "([^"]*)"$`, ffmpegIsInstalledIn)
	ctx.Step(`^ffmpeg exits with status (\d+)$`, ffmpegExitsWithStatus)
	ctx.Step(`^a file exists at "([^"]*)"$`, aFileExistsAt)
	ctx.Step(`^I choose the video "([^"]*)"$`, iChooseTheVideo)
	ctx.Step(`^I accept the default output path$`, iAcceptTheDefaultOutputPath)
	ctx.Step(`^I choose the output "([^"]*)"$`, iChooseTheOutput)
	ctx.Step(`^I leave the output path empty$`, iLeaveTheOutputPathEmpty)
	ctx.Step(`^I answer "(yes|no)" to the next question$`, iAnswerToTheNextQuestion)
	ctx.Step(`^I point to the folder "([^"]*)"$`, iPointToTheFolder)
	ctx.Step(`^I run the conversion$`, iRunTheConversion)
	ctx.Step(`^I run the conversion with flags source "([^"]*)" output "([^"]*)" bitrate "([^"]*)"$`, iRunTheConversionWithFlags)
	ctx.Step(`^ffmpeg should have been called once with:$`, ffmpegShouldHaveBeenCalledOnceWith)
	ctx.Step(`^ffmpeg should not have been called$`, ffmpegShouldNotHaveBeenCalled)
	ctx.Step(`^the output should contain "([^"]*)"$`, theOutputShouldContain)
	ctx.Step(`^the output should not contain "([^"]*)"$`, theOutputShouldNotContain)
	ctx.Step(`^the command should succeed$`, theCommandShouldSucceed)
	ctx.Step(`^the command should fail with "([^"]*)"$`, theCommandShouldFailWith)
}

func ffmpegIsOnTheSearchPath() error {
	return nil
}

func ffmpegIsNotOnTheSearchPath() error {
	c := getConvertContext()
	c.runner.toolDir = "/nowhere"
	return nil
}

func ffmpegIsInstalledIn(dir string) error {
	c := getConvertContext()
	c.runner.toolDir = dir
	c.files.existingFiles[dir+"/ffmpeg"] = true
	return nil
}

func ffmpegExitsWithStatus(code int) error {
	getConvertContext().runner.exitCode = code
	return nil
}

func aFileExistsAt(path string) error {
	getConvertContext().files.existingFiles[path] = true
	return nil
}

func iChooseTheVideo(path string) error {
	c := getConvertContext()
	c.prompter.inputs = append(c.prompter.inputs, path)
	return nil
}

func iAcceptTheDefaultOutputPath() error {
	return nil
}

func iChooseTheOutput(path string) error {
	c := getConvertContext()
	c.prompter.inputs = append(c.prompter.inputs, path)
	return nil
}

func iLeaveTheOutputPathEmpty() error {
	c := getConvertContext()
	c.prompter.inputs = append(c.prompter.inputs, "")
	return nil
}

func iAnswerToTheNextQuestion(answer string) error {
	c := getConvertContext()
	c.prompter.confirms = append(c.prompter.confirms, answer == "yes")
	return nil
}

func iPointToTheFolder(dir string) error {
	c := getConvertContext()
	c.prompter.inputs = append(c.prompter.inputs, dir)
	return nil
}

func iRunTheConversion() error {
	c := getConvertContext()
	c.err = cmd.RunConvertWithDependencies(context.Background(), c.locator(), c.converter(), c.files, c.prompter, c.opts, c.output)
	return nil
}

func iRunTheConversionWithFlags(source, output, bitrate string) error {
	c := getConvertContext()
	c.opts.SourcePath = source
	c.opts.DestinationPath = output
	c.opts.Bitrate = bitrate
	return iRunTheConversion()
}

func ffmpegShouldHaveBeenCalledOnceWith(table *godog.Table) error {
	c := getConvertContext()
	calls := c.runner.extractCalls()
	if len(calls) != 1 {
		return fmt.Errorf("expected 1 ffmpeg invocation, got %d: %v", len(calls), calls)
	}

	var want []string
	for _, row := range table.Rows {
		want = append(want, row.Cells[0].Value)
	}
	got := calls[0][1:]
	if strings.Join(got, " ") != strings.Join(want, " ") {
		return fmt.Errorf("expected ffmpeg args %v, got %v", want, got)
	}
	return nil
}

func ffmpegShouldNotHaveBeenCalled() error {
	if calls := getConvertContext().runner.extractCalls(); len(calls) != 0 {
		return fmt.Errorf("expected no ffmpeg invocation, got %v", calls)
	}
	return nil
}

func theOutputShouldContain(want string) error {
	return containsLine(getConvertContext().output.String(), want)
}

func theOutputShouldNotContain(unwanted string) error {
	out := getConvertContext().output.String()
	if strings.Contains(out, unwanted) {
		return fmt.Errorf("expected output not to contain %q, got:\n%s", unwanted, out)
	}
	return nil
}

func theCommandShouldSucceed() error {
	if err := getConvertContext().err; err != nil {
		return fmt.Errorf("expected success, got error: %v", err)
	}
	return nil
}

var sentinels = map[string]error{
	"terminated":        media.ErrTerminated,
	"tool not found":    media.ErrToolNotFound,
	"tool unavailable":  media.ErrToolUnavailable,
	"missing fields":    media.ErrMissingFields,
	"extraction failed": media.ErrExtractionFailed,
}

func theCommandShouldFailWith(kind string) error {
	want, ok := sentinels[kind]
	if !ok {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	err := getConvertContext().err
	if !errors.Is(err, want) {
		return fmt.Errorf("expected %v, got %v", want, err)
	}
	return nil
}
