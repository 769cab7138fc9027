package media

import "context"

// AudioExtractor defines the interface for audio extraction operations
// This is a port that can be implemented by different infrastructure adapters
type AudioExtractor interface {
	// Extract runs one extraction and blocks until the external process exits
	Extract(ctx context.Context, req *ConversionRequest) error
}
