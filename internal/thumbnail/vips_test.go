package thumbnail

import (
	"errors"
	"testing"

	"pluto-gallery/internal/logging"

	"github.com/davidbyttow/govips/v2/vips"
)

func TestVipsLogSettings(t *testing.T) {
	tests := []struct {
		level logging.LogLevel
		want  vips.LogLevel
	}{
		{logging.LevelDebug, vips.LogLevelDebug},
		{logging.LevelInfo, vips.LogLevelWarning},
		{logging.LevelWarn, vips.LogLevelWarning},
		{logging.LevelError, vips.LogLevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			got, handler := vipsLogSettings(tt.level)
			if got != tt.want {
				t.Errorf("vipsLogSettings(%v) level = %v, want %v", tt.level, got, tt.want)
			}
			if handler == nil {
				t.Fatal("expected a log handler")
			}
			// must not panic for any message level
			handler("VIPS", vips.LogLevelDebug, "debug message")
			handler("VIPS", vips.LogLevelError, "error message")
		})
	}
}

func TestRenderWithVips_Unavailable(t *testing.T) {
	if IsVipsAvailable() {
		t.Skip("libvips initialized by another test")
	}

	if _, err := renderWithVips("missing.jpg", 10, 10, 85); !errors.Is(err, errVipsUnavailable) {
		t.Errorf("renderWithVips() error = %v, want errVipsUnavailable", err)
	}
}
