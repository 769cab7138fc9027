package toolchain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	appnotification "audio-extractor/application/notification"
	"audio-extractor/domain/media"
	"audio-extractor/domain/notification"
	"audio-extractor/infrastructure/searchpath"
)

// DefaultProbeTimeout bounds a single version probe
const DefaultProbeTimeout = 5 * time.Second

// DirectoryChooser asks the user where ffmpeg lives
type DirectoryChooser interface {
	// ConfirmLocate asks whether the user wants to point at the ffmpeg folder
	ConfirmLocate(ctx context.Context) (bool, error)
	// ChooseDirectory returns the chosen folder, or "" when the user cancels
	ChooseDirectory(ctx context.Context) (string, error)
}

// Locator makes sure ffmpeg can be invoked by name
type Locator struct {
	prober       media.ToolProber
	files        media.FileChecker
	path         *searchpath.SearchPath
	notifier     *appnotification.Service
	logger       *slog.Logger
	executable   string
	probeTimeout time.Duration
	availability media.Availability
}

// LocatorOption is a functional option for configuring Locator
type LocatorOption func(*Locator)

// WithExecutableName overrides the platform executable file name
func WithExecutableName(name string) LocatorOption {
	return func(l *Locator) {
		l.executable = name
	}
}

// WithProbeTimeout sets the timeout for each probe
func WithProbeTimeout(d time.Duration) LocatorOption {
	return func(l *Locator) {
		if d > 0 {
			l.probeTimeout = d
		}
	}
}

// WithNotifier sets the notification service for user-facing outcomes
func WithNotifier(n *appnotification.Service) LocatorOption {
	return func(l *Locator) {
		l.notifier = n
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) LocatorOption {
	return func(l *Locator) {
		l.logger = logger
	}
}

// NewLocator creates a Locator. path must be the same SearchPath the
// prober's command runner resolves against.
func NewLocator(prober media.ToolProber, files media.FileChecker, path *searchpath.SearchPath, opts ...LocatorOption) *Locator {
	l := &Locator{
		prober:       prober,
		files:        files,
		path:         path,
		logger:       slog.Default(),
		executable:   media.HostExecutableName(),
		probeTimeout: DefaultProbeTimeout,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Executable returns the file name Locate looks for
func (l *Locator) Executable() string {
	return l.executable
}

// Availability returns the result of the most recent probe
func (l *Locator) Availability() media.Availability {
	return l.availability
}

// Probe runs the version query. Any failure means Unavailable.
func (l *Locator) Probe(ctx context.Context) media.Availability {
	probeCtx, cancel := context.WithTimeout(ctx, l.probeTimeout)
	defer cancel()

	if err := l.prober.Probe(probeCtx); err != nil {
		l.logger.Debug("ffmpeg probe failed", "error", err)
		l.availability = media.Availability{Directory: l.availability.Directory}
		return l.availability
	}

	l.availability.Available = true
	return l.availability
}

// Locate checks for the executable directly inside dir
func (l *Locator) Locate(dir string) media.LocateResult {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return media.NotFound
	}

	path := filepath.Join(dir, l.executable)
	if !l.files.IsFile(path) {
		return media.NotFound
	}
	return media.Found(path)
}

// RegisterDirectory appends dir to the search path for the rest of the process
func (l *Locator) RegisterDirectory(dir string) {
	l.path.Append(dir)
	l.logger.Debug("search path extended", "directory", dir)
}

// TryDirectory locates the executable in dir, registers dir and probes again
func (l *Locator) TryDirectory(ctx context.Context, dir string) (media.Availability, error) {
	result := l.Locate(dir)
	if !result.Found {
		l.notifier.Send(ctx, notification.NewToolStillMissing(l.executable, dir))
		return l.availability, fmt.Errorf("%w: %s", media.ErrToolNotFound, dir)
	}

	l.RegisterDirectory(dir)
	l.availability.Directory = dir

	if avail := l.Probe(ctx); !avail.Available {
		l.notifier.Send(ctx, notification.NewToolStillMissing(l.executable, dir))
		return avail, fmt.Errorf("%w: %s does not run", media.ErrToolUnavailable, result.Path)
	}

	l.logger.Info("ffmpeg located", "path", result.Path)
	l.notifier.Send(ctx, notification.NewToolFound(dir))
	return l.availability, nil
}

// Ensure probes and, when ffmpeg is missing, walks the user through choosing
// its folder. Declining returns media.ErrTerminated; a folder without the
// executable returns media.ErrToolNotFound. Both are fatal for the caller.
func (l *Locator) Ensure(ctx context.Context, chooser DirectoryChooser) (media.Availability, error) {
	if avail := l.Probe(ctx); avail.Available {
		return avail, nil
	}

	l.notifier.Send(ctx, notification.NewToolMissing(l.executable))

	ok, err := chooser.ConfirmLocate(ctx)
	if err != nil {
		return l.availability, fmt.Errorf("prompt cancelled: %w", err)
	}
	if !ok {
		return l.availability, media.ErrTerminated
	}

	dir, err := chooser.ChooseDirectory(ctx)
	if err != nil {
		return l.availability, fmt.Errorf("prompt cancelled: %w", err)
	}
	if strings.TrimSpace(dir) == "" {
		return l.availability, media.ErrTerminated
	}

	return l.TryDirectory(ctx, dir)
}
