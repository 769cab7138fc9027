package conversion

import (
	"context"
	"fmt"
	"log/slog"

	appnotification "audio-extractor/application/notification"
	"audio-extractor/domain/media"
	"audio-extractor/domain/notification"
	"audio-extractor/domain/session"
)

// Result contains the result of an extraction
type Result struct {
	SourcePath      string
	DestinationPath string
}

// Service coordinates a single audio extraction and reports its outcome
type Service struct {
	extractor media.AudioExtractor
	notifier  *appnotification.Service
	logger    *slog.Logger
	bitrate   string
}

// NewService creates a new conversion Service. An empty bitrate lets
// ffmpeg choose.
func NewService(extractor media.AudioExtractor, notifier *appnotification.Service, logger *slog.Logger, bitrate string) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		extractor: extractor,
		notifier:  notifier,
		logger:    logger,
		bitrate:   bitrate,
	}
}

// Input represents the two user-chosen paths
type Input struct {
	SourcePath      string
	DestinationPath string
	Bitrate         string // Optional, uses service default if empty
}

// Extract validates the paths and runs ffmpeg once. Empty paths never reach
// the extractor.
func (s *Service) Extract(ctx context.Context, input Input) (*Result, error) {
	bitrate := input.Bitrate
	if bitrate == "" {
		bitrate = s.bitrate
	}

	req, err := media.NewConversionRequest(input.SourcePath, input.DestinationPath, bitrate)
	if err != nil {
		s.notifier.Send(ctx, notification.NewMissingFields(err))
		return nil, err
	}

	return s.run(ctx, req)
}

// ExtractSession converts a Ready session
func (s *Service) ExtractSession(ctx context.Context, sess session.Session) (*Result, error) {
	req, err := sess.Request(s.bitrate)
	if err != nil {
		err = fmt.Errorf("%w: %w", media.ErrMissingFields, err)
		s.notifier.Send(ctx, notification.NewMissingFields(err))
		return nil, err
	}
	return s.run(ctx, req)
}

func (s *Service) run(ctx context.Context, req *media.ConversionRequest) (*Result, error) {
	s.logger.Debug("extracting audio", "source", req.SourcePath, "destination", req.DestinationPath, "bitrate", req.Bitrate)

	if err := s.extractor.Extract(ctx, req); err != nil {
		s.notifier.Send(ctx, notification.NewConversionFailed(req.DestinationPath, err))
		return nil, err
	}

	s.logger.Info("audio extraction completed", "destination", req.DestinationPath)
	s.notifier.Send(ctx, notification.NewConversionSucceeded(req.DestinationPath))

	return &Result{
		SourcePath:      req.SourcePath,
		DestinationPath: req.DestinationPath,
	}, nil
}
