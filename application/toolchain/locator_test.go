package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appnotification "audio-extractor/application/notification"
	"audio-extractor/domain/media"
	"audio-extractor/domain/notification"
	"audio-extractor/infrastructure/filesystem"
	"audio-extractor/infrastructure/searchpath"
)

// pathProber succeeds only when a registered directory holds the executable
type pathProber struct {
	path   *searchpath.SearchPath
	files  map[string]bool
	exe    string
	probes int
}

func (p *pathProber) Probe(ctx context.Context) error {
	p.probes++
	for _, dir := range p.path.Dirs() {
		if p.files[filepath.Join(dir, p.exe)] {
			return nil
		}
	}
	return errors.New("exec: \"ffmpeg\": executable file not found in $PATH")
}

// mockFileChecker implements media.FileChecker for testing
type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool { return m.existingFiles[path] }
func (m *mockFileChecker) IsFile(path string) bool { return m.existingFiles[path] }

type mockChooser struct {
	confirm    bool
	confirmErr error
	dir        string
	asked      int
}

func (m *mockChooser) ConfirmLocate(ctx context.Context) (bool, error) {
	return m.confirm, m.confirmErr
}

func (m *mockChooser) ChooseDirectory(ctx context.Context) (string, error) {
	m.asked++
	return m.dir, nil
}

type recordingNotifier struct {
	kinds []notification.Kind
}

func (r *recordingNotifier) Notify(ctx context.Context, msg notification.Message) error {
	r.kinds = append(r.kinds, msg.Kind)
	return nil
}

type fixture struct {
	locator  *Locator
	prober   *pathProber
	path     *searchpath.SearchPath
	files    map[string]bool
	notifier *recordingNotifier
}

func newFixture() *fixture {
	files := map[string]bool{}
	sp := searchpath.New("/usr/bin")
	prober := &pathProber{path: sp, files: files, exe: "ffmpeg"}
	rec := &recordingNotifier{}
	l := NewLocator(prober, &mockFileChecker{existingFiles: files}, sp,
		WithExecutableName("ffmpeg"),
		WithNotifier(appnotification.NewService(rec, nil)),
	)
	return &fixture{locator: l, prober: prober, path: sp, files: files, notifier: rec}
}

func TestLocator_Locate(t *testing.T) {
	f := newFixture()
	f.files["/opt/ffmpeg/bin/ffmpeg"] = true
	f.files["/opt/nested/bin/ffmpeg"] = true

	tests := []struct {
		name string
		dir  string
		want media.LocateResult
	}{
		{"contains executable", "/opt/ffmpeg/bin", media.Found("/opt/ffmpeg/bin/ffmpeg")},
		{"trailing whitespace", " /opt/ffmpeg/bin ", media.Found("/opt/ffmpeg/bin/ffmpeg")},
		{"empty directory", "/opt/empty", media.NotFound},
		{"not recursive", "/opt/nested", media.NotFound},
		{"blank", "", media.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.locator.Locate(tt.dir); got != tt.want {
				t.Errorf("Locate(%q) = %+v, want %+v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestLocator_LocateOnDisk(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "ffmpeg.exe")
	if err := os.WriteFile(exe, nil, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub", "ffmpeg.exe"), 0o755); err != nil {
		t.Fatal(err)
	}

	l := NewLocator(nil, filesystem.NewChecker(), searchpath.New(), WithExecutableName("ffmpeg.exe"))

	if got := l.Locate(dir); !got.Found || got.Path != exe {
		t.Errorf("Locate(%q) = %+v, want Found(%q)", dir, got, exe)
	}
	if got := l.Locate(filepath.Join(dir, "sub")); got.Found {
		t.Errorf("Locate() matched a directory named like the executable: %+v", got)
	}
	if got := l.Locate(t.TempDir()); got.Found {
		t.Errorf("Locate(empty dir) = %+v, want NotFound", got)
	}
}

func TestLocator_RegisterDirectoryMakesProbeSucceed(t *testing.T) {
	f := newFixture()
	f.files["/opt/ffmpeg/bin/ffmpeg"] = true

	if avail := f.locator.Probe(context.Background()); avail.Available {
		t.Fatal("Probe() before register = Available, want Unavailable")
	}

	f.locator.RegisterDirectory("/opt/ffmpeg/bin")

	if avail := f.locator.Probe(context.Background()); !avail.Available {
		t.Error("Probe() after register = Unavailable, want Available")
	}
	if dirs := f.path.Dirs(); dirs[len(dirs)-1] != "/opt/ffmpeg/bin" {
		t.Errorf("search path = %v, want directory appended last", dirs)
	}
}

func TestLocator_Ensure(t *testing.T) {
	tests := []struct {
		name        string
		onPath      bool
		chooser     *mockChooser
		wantErr     error
		wantErrText string
		wantAvail   bool
		wantKinds   []notification.Kind
		wantDirSeen bool
	}{
		{
			name:      "already available",
			onPath:    true,
			chooser:   &mockChooser{},
			wantAvail: true,
		},
		{
			name:      "user declines",
			chooser:   &mockChooser{confirm: false},
			wantErr:   media.ErrTerminated,
			wantKinds: []notification.Kind{notification.ToolMissing},
		},
		{
			name:        "user cancels directory dialog",
			chooser:     &mockChooser{confirm: true, dir: ""},
			wantErr:     media.ErrTerminated,
			wantKinds:   []notification.Kind{notification.ToolMissing},
			wantDirSeen: true,
		},
		{
			name:        "directory without executable",
			chooser:     &mockChooser{confirm: true, dir: "/opt/empty"},
			wantErr:     media.ErrToolNotFound,
			wantKinds:   []notification.Kind{notification.ToolMissing, notification.ToolStillMissing},
			wantDirSeen: true,
		},
		{
			name:        "directory with executable",
			chooser:     &mockChooser{confirm: true, dir: "/opt/ffmpeg/bin"},
			wantAvail:   true,
			wantKinds:   []notification.Kind{notification.ToolMissing, notification.ToolFound},
			wantDirSeen: true,
		},
		{
			name:        "prompt interrupted",
			chooser:     &mockChooser{confirmErr: errors.New("interrupt")},
			wantErrText: "prompt cancelled",
			wantKinds: []notification.Kind{
				notification.ToolMissing,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.files["/opt/ffmpeg/bin/ffmpeg"] = true
			if tt.onPath {
				f.files["/usr/bin/ffmpeg"] = true
			}

			avail, err := f.locator.Ensure(context.Background(), tt.chooser)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Ensure() error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantErrText != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrText) {
					t.Errorf("Ensure() error = %v, want error containing %q", err, tt.wantErrText)
				}
			case err != nil:
				t.Fatalf("Ensure() unexpected error: %v", err)
			}

			if avail.Available != tt.wantAvail {
				t.Errorf("Ensure() Available = %v, want %v", avail.Available, tt.wantAvail)
			}
			if (tt.chooser.asked > 0) != tt.wantDirSeen {
				t.Errorf("directory dialog shown = %v, want %v", tt.chooser.asked > 0, tt.wantDirSeen)
			}
			if len(f.notifier.kinds) != len(tt.wantKinds) {
				t.Fatalf("notifications = %v, want %v", f.notifier.kinds, tt.wantKinds)
			}
			for i := range tt.wantKinds {
				if f.notifier.kinds[i] != tt.wantKinds[i] {
					t.Errorf("notification[%d] = %v, want %v", i, f.notifier.kinds[i], tt.wantKinds[i])
				}
			}
		})
	}
}

func TestLocator_TryDirectoryBrokenExecutable(t *testing.T) {
	f := newFixture()
	// Present on disk but the probe never sees it run.
	l := NewLocator(&pathProber{path: f.path, files: map[string]bool{}, exe: "ffmpeg"},
		&mockFileChecker{existingFiles: map[string]bool{"/opt/broken/ffmpeg": true}}, f.path,
		WithExecutableName("ffmpeg"))

	avail, err := l.TryDirectory(context.Background(), "/opt/broken")
	if !errors.Is(err, media.ErrToolUnavailable) {
		t.Errorf("TryDirectory() error = %v, want ErrToolUnavailable", err)
	}
	if avail.Available {
		t.Error("TryDirectory() Available = true")
	}
	if avail.Directory != "/opt/broken" {
		t.Errorf("Directory = %q, want /opt/broken", avail.Directory)
	}
}
