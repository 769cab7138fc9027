//go:build !gui

package gui

import "context"

// Run returns ErrUnavailable (requires building with -tags gui)
func Run(ctx context.Context, opts Options) error {
	return ErrUnavailable
}
