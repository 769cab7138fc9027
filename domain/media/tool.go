package media

import (
	"context"
	"runtime"
)

// ToolName is the bare name of the external conversion program
const ToolName = "ffmpeg"

// Availability reports whether the conversion tool can be invoked
type Availability struct {
	Available bool
	Directory string // Set when the tool was found in a user-chosen directory
}

// Available returns an Availability for a reachable tool
func Available() Availability {
	return Availability{Available: true}
}

// Unavailable returns an Availability for an unreachable tool
func Unavailable() Availability {
	return Availability{}
}

// LocateResult is the outcome of looking for the executable in one directory
type LocateResult struct {
	Found bool
	Path  string
}

// Found returns a LocateResult pointing at path
func Found(path string) LocateResult {
	return LocateResult{Found: true, Path: path}
}

// NotFound is the LocateResult for a directory without the executable
var NotFound = LocateResult{}

// ExecutableName returns the platform file name of the tool for goos
func ExecutableName(goos string) string {
	if goos == "windows" {
		return ToolName + ".exe"
	}
	return ToolName
}

// HostExecutableName returns the tool file name for the running platform
func HostExecutableName() string {
	return ExecutableName(runtime.GOOS)
}

// ToolProber checks that the conversion tool can be started
// This is a port implemented by infrastructure adapters
type ToolProber interface {
	// Probe runs a version query and returns an error when it does not exit cleanly
	Probe(ctx context.Context) error
}

// FileChecker defines the interface for inspecting the filesystem
type FileChecker interface {
	// Exists returns true if anything exists at path
	Exists(path string) bool
	// IsFile returns true if path exists and is not a directory
	IsFile(path string) bool
}
