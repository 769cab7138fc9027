package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultAudioExtension is the container written when no extension is configured
const DefaultAudioExtension = ".mp3"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ConversionRequest is a single source-to-destination audio extraction
type ConversionRequest struct {
	SourcePath      string `validate:"required"`
	DestinationPath string `validate:"required"`
	Bitrate         string // Optional; empty lets ffmpeg pick the default for the extension
}

// NewConversionRequest creates a ConversionRequest, rejecting empty paths
func NewConversionRequest(sourcePath, destinationPath, bitrate string) (*ConversionRequest, error) {
	req := &ConversionRequest{
		SourcePath:      strings.TrimSpace(sourcePath),
		DestinationPath: strings.TrimSpace(destinationPath),
		Bitrate:         strings.TrimSpace(bitrate),
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks that both paths are set
func (r *ConversionRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fieldLabel(fe.Field()))
	}
	return fmt.Errorf("%w: missing %s", ErrMissingFields, strings.Join(missing, ", "))
}

func fieldLabel(field string) string {
	switch field {
	case "SourcePath":
		return "source"
	case "DestinationPath":
		return "destination"
	default:
		return strings.ToLower(field)
	}
}

// DefaultDestination suggests an output path next to the source with the audio extension
func DefaultDestination(sourcePath, extension string) string {
	if sourcePath == "" {
		return ""
	}
	if extension == "" {
		extension = DefaultAudioExtension
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + extension
}

// HasExtension reports whether path ends with one of the extensions (case-insensitive)
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
