package media

import "errors"

var (
	// ErrMissingFields is returned when the source or destination path is empty
	ErrMissingFields = errors.New("source and destination paths are required")

	// ErrToolUnavailable is returned when ffmpeg cannot be run from the search path
	ErrToolUnavailable = errors.New("ffmpeg is not available")

	// ErrToolNotFound is returned when the chosen directory does not contain ffmpeg
	ErrToolNotFound = errors.New("ffmpeg executable not found in directory")

	// ErrTerminated is returned when the user declines to locate ffmpeg
	ErrTerminated = errors.New("ffmpeg is required; exiting")

	// ErrExtractionFailed is returned when ffmpeg exits with a non-zero status
	ErrExtractionFailed = errors.New("audio extraction failed")
)
