// Package gui is the desktop front end. The Fyne window is only compiled
// with -tags gui; other builds get a stub whose Run returns ErrUnavailable.
package gui

import (
	"errors"
	"log/slog"
	"time"

	"audio-extractor/domain/media"
	"audio-extractor/domain/notification"
	"audio-extractor/infrastructure/searchpath"
)

// ErrUnavailable is returned by Run in builds without the gui tag
var ErrUnavailable = errors.New("desktop window requires a build with -tags gui")

// Options carries the adapters the window wires together
type Options struct {
	Prober          media.ToolProber
	Files           media.FileChecker
	SearchPath      *searchpath.SearchPath
	Extractor       media.AudioExtractor
	Logger          *slog.Logger
	Bitrate         string
	ProbeTimeout    time.Duration
	VideoExtensions []string
	AudioExtension  string
	Notifiers       []notification.Notifier // Delivered alongside the window's dialogs
}

func (o Options) audioExtension() string {
	if o.AudioExtension == "" {
		return media.DefaultAudioExtension
	}
	return o.AudioExtension
}
