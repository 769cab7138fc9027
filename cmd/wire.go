package cmd

import (
	"io"
	"log/slog"
	"os"

	appconversion "audio-extractor/application/conversion"
	appnotification "audio-extractor/application/notification"
	"audio-extractor/application/toolchain"
	"audio-extractor/domain/notification"
	"audio-extractor/infrastructure/config"
	"audio-extractor/infrastructure/ffmpeg"
	"audio-extractor/infrastructure/filesystem"
	"audio-extractor/infrastructure/notify"
	"audio-extractor/infrastructure/searchpath"
)

// components holds the production dependency graph
type components struct {
	cfg        *config.Config
	logger     *slog.Logger
	searchPath *searchpath.SearchPath
	prober     *ffmpeg.Prober
	extractor  *ffmpeg.Extractor
	files      *filesystem.Checker
	notifier   *appnotification.Service
	locator    *toolchain.Locator
	converter  *appconversion.Service
}

// newComponents wires the search path into every ffmpeg invocation. The
// configured directory, if any, is appended after PATH.
func newComponents(cfg *config.Config, logger *slog.Logger, notifiers ...notification.Notifier) *components {
	sp := searchpath.FromEnv()
	if cfg.FFmpeg.Directory != "" {
		sp.Append(cfg.FFmpeg.Directory)
	}

	runner := ffmpeg.NewExecCommandRunner(sp, logger)
	files := filesystem.NewChecker()
	notifier := appnotification.NewService(notify.Multi(notifiers), logger)
	prober := ffmpeg.NewProber(runner)
	extractor := ffmpeg.NewExtractor(ffmpeg.WithCommandRunner(runner))

	return &components{
		cfg:        cfg,
		logger:     logger,
		searchPath: sp,
		prober:     prober,
		extractor:  extractor,
		files:      files,
		notifier:   notifier,
		locator: toolchain.NewLocator(prober, files, sp,
			toolchain.WithProbeTimeout(cfg.ProbeTimeout()),
			toolchain.WithNotifier(notifier),
			toolchain.WithLogger(logger),
		),
		converter: appconversion.NewService(extractor, notifier, logger, cfg.Audio.Bitrate),
	}
}

// terminalNotifiers returns the console notifier plus the desktop one when enabled
func terminalNotifiers(cfg *config.Config, out io.Writer) []notification.Notifier {
	notifiers := []notification.Notifier{notify.NewConsole(out, noColor)}
	if notifyFlag || cfg.Notify.Desktop {
		notifiers = append(notifiers, notify.NewDesktop())
	}
	return notifiers
}

func defaultLogger() *slog.Logger {
	return newLogger(os.Stderr, verbose)
}
