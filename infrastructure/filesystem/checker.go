package filesystem

import (
	"os"

	"audio-extractor/domain/media"
)

// Checker implements media.FileChecker using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the file exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile returns true if path exists and is not a directory
func (c *Checker) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Ensure Checker implements media.FileChecker
var _ media.FileChecker = (*Checker)(nil)
