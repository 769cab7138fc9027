package media

import (
	"errors"
	"strings"
	"testing"
)

func TestNewConversionRequest(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		destination string
		bitrate     string
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid request",
			source:      "/tmp/in.mp4",
			destination: "/tmp/in.mp3",
		},
		{
			name:        "valid request with bitrate",
			source:      "/tmp/in.mp4",
			destination: "/tmp/in.mp3",
			bitrate:     "192k",
		},
		{
			name:        "empty destination",
			source:      "/tmp/in.mp4",
			destination: "",
			wantErr:     true,
			errContains: "missing destination",
		},
		{
			name:        "empty source",
			source:      "",
			destination: "/tmp/in.mp3",
			wantErr:     true,
			errContains: "missing source",
		},
		{
			name:        "whitespace only paths",
			source:      "   ",
			destination: "\t",
			wantErr:     true,
			errContains: "missing source, destination",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewConversionRequest(tt.source, tt.destination, tt.bitrate)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewConversionRequest() expected error, got nil")
				}
				if !errors.Is(err, ErrMissingFields) {
					t.Errorf("NewConversionRequest() error = %v, want ErrMissingFields", err)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewConversionRequest() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewConversionRequest() unexpected error: %v", err)
			}
			if got.SourcePath != tt.source || got.DestinationPath != tt.destination {
				t.Errorf("NewConversionRequest() = %+v, want paths %q -> %q", got, tt.source, tt.destination)
			}
			if got.Bitrate != tt.bitrate {
				t.Errorf("NewConversionRequest() Bitrate = %q, want %q", got.Bitrate, tt.bitrate)
			}
		})
	}
}

func TestDefaultDestination(t *testing.T) {
	tests := []struct {
		source    string
		extension string
		want      string
	}{
		{"/tmp/in.mp4", ".mp3", "/tmp/in.mp3"},
		{"/tmp/in.mp4", "", "/tmp/in.mp3"},
		{"/tmp/clip.final.mov", "mp3", "/tmp/clip.final.mp3"},
		{"/tmp/noext", ".mp3", "/tmp/noext.mp3"},
		{"", ".mp3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := DefaultDestination(tt.source, tt.extension); got != tt.want {
				t.Errorf("DefaultDestination(%q, %q) = %q, want %q", tt.source, tt.extension, got, tt.want)
			}
		})
	}
}

func TestHasExtension(t *testing.T) {
	exts := []string{".mp4", ".avi", "mov"}

	tests := []struct {
		path string
		want bool
	}{
		{"/videos/a.mp4", true},
		{"/videos/a.MP4", true},
		{"/videos/a.mov", true},
		{"/videos/a.mkv", false},
		{"/videos/mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := HasExtension(tt.path, exts); got != tt.want {
				t.Errorf("HasExtension(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
