package notification

import (
	"context"
	"log/slog"

	"audio-extractor/domain/notification"
)

// Service delivers user-facing outcomes. Delivery failures are logged and
// never change the outcome of the operation being reported.
type Service struct {
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewService creates a new notification service
func NewService(notifier notification.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		notifier: notifier,
		logger:   logger,
	}
}

// Send delivers msg
func (s *Service) Send(ctx context.Context, msg notification.Message) {
	if s == nil || s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("notification not delivered", "title", msg.Title, "error", err)
	}
}
