package notification

import (
	"errors"
	"strings"
	"testing"
)

func TestMessage_Severity(t *testing.T) {
	tests := []struct {
		msg  Message
		want Severity
	}{
		{NewToolMissing("ffmpeg"), Warning},
		{NewToolFound("/opt/ffmpeg"), Info},
		{NewToolStillMissing("ffmpeg", "/opt"), Critical},
		{NewConversionSucceeded("/tmp/in.mp3"), Info},
		{NewConversionFailed("/tmp/in.mp3", errors.New("exit status 1")), Critical},
		{NewMissingFields(nil), Warning},
	}

	for _, tt := range tests {
		t.Run(tt.msg.Title, func(t *testing.T) {
			if got := tt.msg.Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewConversionSucceeded_ReferencesDestination(t *testing.T) {
	msg := NewConversionSucceeded("/tmp/in.mp3")
	if !strings.Contains(msg.Text, "/tmp/in.mp3") || msg.Path != "/tmp/in.mp3" {
		t.Errorf("message = %+v, want reference to destination", msg)
	}
}

func TestNewConversionFailed_IsGeneric(t *testing.T) {
	msg := NewConversionFailed("/tmp/in.mp3", errors.New("Invalid data found when processing input"))
	if strings.Contains(msg.Text, "Invalid data") {
		t.Errorf("failure text leaks tool output: %q", msg.Text)
	}
	if msg.Err == nil {
		t.Error("Err not retained")
	}
}

func TestToolMessages_NameExecutable(t *testing.T) {
	if !strings.Contains(NewToolMissing("ffmpeg.exe").Text, "ffmpeg.exe") {
		t.Error("ToolMissing text does not name the executable")
	}
	if !strings.Contains(NewToolStillMissing("ffmpeg.exe", `C:\tools`).Text, "ffmpeg.exe") {
		t.Error("ToolStillMissing text does not name the executable")
	}
}
