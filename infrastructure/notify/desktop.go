package notify

import (
	"context"

	"audio-extractor/domain/notification"

	"github.com/0xAX/notificator"
)

// AppName is shown as the sender of desktop notifications
const AppName = "Audio Extractor"

// pusher is the part of notificator.Notificator used here
type pusher interface {
	Push(title string, text string, iconPath string, urgency string) error
}

// Desktop sends messages through the platform notification daemon
type Desktop struct {
	push pusher
}

// NewDesktop creates a Desktop notifier
func NewDesktop() *Desktop {
	return &Desktop{
		push: notificator.New(notificator.Options{
			DefaultIcon: "audio-x-generic",
			AppName:     AppName,
		}),
	}
}

// Notify implements notification.Notifier
func (d *Desktop) Notify(ctx context.Context, msg notification.Message) error {
	urgency := notificator.UR_NORMAL
	if msg.Severity() == notification.Critical {
		urgency = notificator.UR_CRITICAL
	}
	return d.push.Push(msg.Title, msg.Text, "", urgency)
}

// Ensure Desktop implements notification.Notifier
var _ notification.Notifier = (*Desktop)(nil)
