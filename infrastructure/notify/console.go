// Package notify implements notification.Notifier for the terminal and the
// desktop notification daemon.
package notify

import (
	"context"
	"io"

	"audio-extractor/domain/notification"

	"github.com/fatih/color"
)

// Console prints messages to a writer, colored by severity
type Console struct {
	out    io.Writer
	colors map[notification.Severity]*color.Color
}

// NewConsole creates a Console notifier. Colors are dropped when noColor is set.
func NewConsole(out io.Writer, noColor bool) *Console {
	c := &Console{
		out: out,
		colors: map[notification.Severity]*color.Color{
			notification.Info:     color.New(color.FgGreen, color.Bold),
			notification.Warning:  color.New(color.FgYellow, color.Bold),
			notification.Critical: color.New(color.FgRed, color.Bold),
		},
	}
	if noColor {
		for _, col := range c.colors {
			col.DisableColor()
		}
	}
	return c
}

// Notify implements notification.Notifier
func (c *Console) Notify(ctx context.Context, msg notification.Message) error {
	if _, err := c.colors[msg.Severity()].Fprintf(c.out, "%s: ", msg.Title); err != nil {
		return err
	}
	_, err := io.WriteString(c.out, msg.Text+"\n")
	return err
}

// Ensure Console implements notification.Notifier
var _ notification.Notifier = (*Console)(nil)
