package conversion

import (
	"context"
	"errors"
	"strings"
	"testing"

	appnotification "audio-extractor/application/notification"
	"audio-extractor/domain/media"
	"audio-extractor/domain/notification"
	"audio-extractor/domain/session"
)

// mockExtractor implements media.AudioExtractor for testing
type mockExtractor struct {
	calls      []*media.ConversionRequest
	shouldFail bool
	failError  error
}

func (m *mockExtractor) Extract(ctx context.Context, req *media.ConversionRequest) error {
	m.calls = append(m.calls, req)
	if m.shouldFail {
		return m.failError
	}
	return nil
}

type recordingNotifier struct {
	messages []notification.Message
}

func (r *recordingNotifier) Notify(ctx context.Context, msg notification.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func newTestService(ext *mockExtractor, bitrate string) (*Service, *recordingNotifier) {
	rec := &recordingNotifier{}
	return NewService(ext, appnotification.NewService(rec, nil), nil, bitrate), rec
}

func TestService_Extract(t *testing.T) {
	tests := []struct {
		name        string
		input       Input
		shouldFail  bool
		wantCalls   int
		wantErr     error
		wantKind    notification.Kind
		wantBitrate string
	}{
		{
			name:      "success",
			input:     Input{SourcePath: "/tmp/in.mp4", DestinationPath: "/tmp/in.mp3"},
			wantCalls: 1,
			wantKind:  notification.ConversionSucceeded,
		},
		{
			name:        "input bitrate overrides default",
			input:       Input{SourcePath: "/tmp/in.mp4", DestinationPath: "/tmp/in.mp3", Bitrate: "96k"},
			wantCalls:   1,
			wantKind:    notification.ConversionSucceeded,
			wantBitrate: "96k",
		},
		{
			name:       "non-zero exit",
			input:      Input{SourcePath: "/tmp/in.mp4", DestinationPath: "/tmp/in.mp3"},
			shouldFail: true,
			wantCalls:  1,
			wantErr:    media.ErrExtractionFailed,
			wantKind:   notification.ConversionFailed,
		},
		{
			name:     "empty destination",
			input:    Input{SourcePath: "/tmp/in.mp4"},
			wantErr:  media.ErrMissingFields,
			wantKind: notification.MissingFields,
		},
		{
			name:     "empty source",
			input:    Input{DestinationPath: "/tmp/in.mp3"},
			wantErr:  media.ErrMissingFields,
			wantKind: notification.MissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := &mockExtractor{shouldFail: tt.shouldFail, failError: media.ErrExtractionFailed}
			svc, rec := newTestService(ext, "")

			result, err := svc.Extract(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				if result != nil {
					t.Errorf("Extract() result = %+v, want nil", result)
				}
			} else {
				if err != nil {
					t.Fatalf("Extract() unexpected error: %v", err)
				}
				if result.DestinationPath != tt.input.DestinationPath {
					t.Errorf("DestinationPath = %q", result.DestinationPath)
				}
			}

			if len(ext.calls) != tt.wantCalls {
				t.Fatalf("extractor calls = %d, want %d", len(ext.calls), tt.wantCalls)
			}
			if tt.wantCalls > 0 && ext.calls[0].Bitrate != tt.wantBitrate {
				t.Errorf("Bitrate = %q, want %q", ext.calls[0].Bitrate, tt.wantBitrate)
			}
			if len(rec.messages) != 1 || rec.messages[0].Kind != tt.wantKind {
				t.Errorf("notifications = %+v, want one of kind %v", rec.messages, tt.wantKind)
			}
		})
	}
}

func TestService_ExtractEndToEndMessages(t *testing.T) {
	ext := &mockExtractor{}
	svc, rec := newTestService(ext, "")

	if _, err := svc.Extract(context.Background(), Input{SourcePath: "/tmp/in.mp4", DestinationPath: "/tmp/in.mp3"}); err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}

	req := ext.calls[0]
	if req.SourcePath != "/tmp/in.mp4" || req.DestinationPath != "/tmp/in.mp3" {
		t.Errorf("request = %+v", req)
	}
	if !strings.Contains(rec.messages[0].Text, "/tmp/in.mp3") {
		t.Errorf("success text = %q, want destination", rec.messages[0].Text)
	}
}

func TestService_ExtractSession(t *testing.T) {
	ext := &mockExtractor{}
	svc, rec := newTestService(ext, "192k")

	sess := session.New().ToolLocated()
	sess, _ = sess.ChooseSource("/tmp/in.mp4")

	if _, err := svc.ExtractSession(context.Background(), sess); !errors.Is(err, media.ErrMissingFields) {
		t.Fatalf("ExtractSession(SourceChosen) error = %v, want ErrMissingFields", err)
	}
	if len(ext.calls) != 0 {
		t.Fatal("extractor invoked for incomplete session")
	}

	sess, _ = sess.ChooseDestination("/tmp/in.mp3")
	result, err := svc.ExtractSession(context.Background(), sess)
	if err != nil {
		t.Fatalf("ExtractSession(Ready) unexpected error: %v", err)
	}
	if result.DestinationPath != "/tmp/in.mp3" || ext.calls[0].Bitrate != "192k" {
		t.Errorf("result = %+v, request = %+v", result, ext.calls[0])
	}
	if len(rec.messages) != 2 || rec.messages[1].Kind != notification.ConversionSucceeded {
		t.Errorf("notifications = %+v", rec.messages)
	}
}
