// Package session models the user's progress towards a runnable conversion.
//
// A Session is an immutable value: every transition returns a new Session,
// so front ends keep one variable and re-render from its State.
package session

import (
	"errors"
	"fmt"
	"strings"

	"audio-extractor/domain/media"
)

var (
	// ErrToolMissing is returned when paths are chosen before ffmpeg is available
	ErrToolMissing = errors.New("ffmpeg has not been located")

	// ErrNotReady is returned when a request is built before both paths are chosen
	ErrNotReady = errors.New("source and destination must both be chosen")
)

// State is the coarse phase of a Session
type State int

const (
	NoTool State = iota
	ToolFound
	SourceChosen
	DestinationChosen
	Ready
)

func (s State) String() string {
	switch s {
	case NoTool:
		return "NoTool"
	case ToolFound:
		return "ToolFound"
	case SourceChosen:
		return "SourceChosen"
	case DestinationChosen:
		return "DestinationChosen"
	case Ready:
		return "Ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session holds the tool flag and the two chosen paths
type Session struct {
	toolAvailable bool
	source        string
	destination   string
}

// New returns a Session in the NoTool state
func New() Session {
	return Session{}
}

// State derives the phase from the session fields
func (s Session) State() State {
	switch {
	case !s.toolAvailable:
		return NoTool
	case s.source != "" && s.destination != "":
		return Ready
	case s.source != "":
		return SourceChosen
	case s.destination != "":
		return DestinationChosen
	default:
		return ToolFound
	}
}

// Source returns the chosen source path
func (s Session) Source() string { return s.source }

// Destination returns the chosen destination path
func (s Session) Destination() string { return s.destination }

// ToolLocated marks ffmpeg as available. Calling it again is a no-op.
func (s Session) ToolLocated() Session {
	s.toolAvailable = true
	return s
}

// ChooseSource sets the source path. An empty path clears it.
func (s Session) ChooseSource(path string) (Session, error) {
	if !s.toolAvailable {
		return s, ErrToolMissing
	}
	s.source = strings.TrimSpace(path)
	return s, nil
}

// ChooseDestination sets the destination path. An empty path clears it.
func (s Session) ChooseDestination(path string) (Session, error) {
	if !s.toolAvailable {
		return s, ErrToolMissing
	}
	s.destination = strings.TrimSpace(path)
	return s, nil
}

// CanConvert reports whether the convert action should be enabled
func (s Session) CanConvert() bool {
	return s.State() == Ready
}

// Request builds the conversion request for a Ready session
func (s Session) Request(bitrate string) (*media.ConversionRequest, error) {
	if !s.CanConvert() {
		return nil, fmt.Errorf("%w (state %s)", ErrNotReady, s.State())
	}
	return media.NewConversionRequest(s.source, s.destination, bitrate)
}

// Reset clears both paths after a conversion, keeping the tool flag
func (s Session) Reset() Session {
	return Session{toolAvailable: s.toolAvailable}
}
