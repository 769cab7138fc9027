package notification

import (
	"context"
	"fmt"
)

// Kind identifies which user-facing outcome a Message reports
type Kind int

const (
	ToolMissing Kind = iota
	ToolFound
	ToolStillMissing
	ConversionSucceeded
	ConversionFailed
	MissingFields
)

// Severity maps to the icon or color a front end uses
type Severity int

const (
	Info Severity = iota
	Warning
	Critical
)

// Message is one modal notification
type Message struct {
	Kind  Kind
	Title string
	Text  string
	Path  string // Destination or directory the message refers to, if any
	Err   error  // Underlying error; front ends show Text, not Err
}

// Severity returns the display severity for the message kind
func (m Message) Severity() Severity {
	switch m.Kind {
	case ToolFound, ConversionSucceeded:
		return Info
	case ToolMissing, MissingFields:
		return Warning
	default:
		return Critical
	}
}

// Notifier delivers messages to the user
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// NewToolMissing reports that ffmpeg is not on the search path
func NewToolMissing(executable string) Message {
	return Message{
		Kind:  ToolMissing,
		Title: "FFmpeg not found",
		Text:  fmt.Sprintf("FFmpeg is not found in the global environment variables. Specify the folder that contains %s to continue.", executable),
	}
}

// NewToolFound reports that ffmpeg is available
func NewToolFound(dir string) Message {
	return Message{
		Kind:  ToolFound,
		Title: "FFmpeg found",
		Text:  "FFmpeg has been successfully found.",
		Path:  dir,
	}
}

// NewToolStillMissing reports that the chosen directory has no ffmpeg
func NewToolStillMissing(executable, dir string) Message {
	return Message{
		Kind:  ToolStillMissing,
		Title: "FFmpeg not found",
		Text:  fmt.Sprintf("Failed to find %s in the specified folder.", executable),
		Path:  dir,
	}
}

// NewConversionSucceeded reports a finished extraction
func NewConversionSucceeded(destination string) Message {
	return Message{
		Kind:  ConversionSucceeded,
		Title: "Conversion complete",
		Text:  fmt.Sprintf("Audio extraction completed. Audio saved at %s", destination),
		Path:  destination,
	}
}

// NewConversionFailed reports a failed extraction without detail
func NewConversionFailed(destination string, err error) Message {
	return Message{
		Kind:  ConversionFailed,
		Title: "Conversion failed",
		Text:  "An error occurred during audio extraction.",
		Path:  destination,
		Err:   err,
	}
}

// NewMissingFields reports that a path was not chosen
func NewMissingFields(err error) Message {
	return Message{
		Kind:  MissingFields,
		Title: "Missing fields",
		Text:  "Please choose both a video file and an output file.",
		Err:   err,
	}
}
