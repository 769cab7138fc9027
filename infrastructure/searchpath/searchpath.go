// Package searchpath holds the ordered list of directories used to resolve
// bare executable names for child processes.
//
// The list is seeded from PATH once and then owned by the program; it is
// handed to the command runner instead of being written back to the
// process environment.
package searchpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// EnvVar is the environment variable that carries the search path
const EnvVar = "PATH"

// ErrNotFound is returned when no directory contains the requested executable
var ErrNotFound = errors.New("executable not found in search path")

// SearchPath is an ordered, append-only list of directories
type SearchPath struct {
	mu   sync.RWMutex
	dirs []string
}

// New creates a SearchPath from explicit directories. Empty entries are dropped.
func New(dirs ...string) *SearchPath {
	sp := &SearchPath{}
	for _, d := range dirs {
		if d != "" {
			sp.dirs = append(sp.dirs, d)
		}
	}
	return sp
}

// FromEnv creates a SearchPath from the current PATH value
func FromEnv() *SearchPath {
	return Parse(os.Getenv(EnvVar))
}

// Parse splits a list-separator delimited value into a SearchPath
func Parse(value string) *SearchPath {
	if value == "" {
		return New()
	}
	return New(filepath.SplitList(value)...)
}

// Append adds dir to the end of the list. Directories already present are ignored.
func (sp *SearchPath) Append(dir string) {
	if dir == "" {
		return
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	for _, d := range sp.dirs {
		if d == dir {
			return
		}
	}
	sp.dirs = append(sp.dirs, dir)
}

// Dirs returns a copy of the directories in search order
func (sp *SearchPath) Dirs() []string {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	out := make([]string, len(sp.dirs))
	copy(out, sp.dirs)
	return out
}

// String renders the list with the platform separator
func (sp *SearchPath) String() string {
	return strings.Join(sp.Dirs(), string(os.PathListSeparator))
}

// Environ returns base with its PATH entry replaced by this search path
func (sp *SearchPath) Environ(base []string) []string {
	prefix := EnvVar + "="
	out := make([]string, 0, len(base)+1)
	for _, kv := range base {
		if hasEnvPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return append(out, prefix+sp.String())
}

// LookPath resolves a bare executable name against the directories in order.
// Names that already contain a path separator are checked as-is.
func (sp *SearchPath) LookPath(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		if isExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	for _, dir := range sp.Dirs() {
		for _, candidate := range candidates(name) {
			path := filepath.Join(dir, candidate)
			if isExecutable(path) {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// candidates lists the file names tried for name; Windows adds the .exe suffix
func candidates(name string) []string {
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		return []string{name + ".exe", name}
	}
	return []string{name}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

func hasEnvPrefix(kv, prefix string) bool {
	if runtime.GOOS == "windows" {
		return len(kv) >= len(prefix) && strings.EqualFold(kv[:len(prefix)], prefix)
	}
	return strings.HasPrefix(kv, prefix)
}
