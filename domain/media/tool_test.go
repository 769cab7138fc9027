package media

import "testing"

func TestExecutableName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "ffmpeg.exe"},
		{"linux", "ffmpeg"},
		{"darwin", "ffmpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := ExecutableName(tt.goos); got != tt.want {
				t.Errorf("ExecutableName(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestLocateResult(t *testing.T) {
	if NotFound.Found {
		t.Error("NotFound.Found = true, want false")
	}

	got := Found("/opt/ffmpeg/bin/ffmpeg")
	if !got.Found || got.Path != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Found() = %+v", got)
	}
}
