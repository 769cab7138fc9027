package notify

import (
	"context"
	"errors"

	"audio-extractor/domain/notification"
)

// Multi fans a message out to several notifiers
type Multi []notification.Notifier

// Notify delivers to every notifier and joins their errors
func (m Multi) Notify(ctx context.Context, msg notification.Message) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ensure Multi implements notification.Notifier
var _ notification.Notifier = Multi(nil)
