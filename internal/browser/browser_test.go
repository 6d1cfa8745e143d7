package browser

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if !opts.Headless {
		t.Error("Expected headless to be true by default")
	}

	if opts.NavTimeout != 30*time.Second {
		t.Errorf("Expected nav timeout to be 30s, got %v", opts.NavTimeout)
	}

	if opts.SettleDelay != 3*time.Second {
		t.Errorf("Expected settle delay to be 3s, got %v", opts.SettleDelay)
	}

	if opts.ViewportWidth != 1920 || opts.ViewportHeight != 1080 {
		t.Errorf("Expected viewport to be 1920x1080, got %dx%d", opts.ViewportWidth, opts.ViewportHeight)
	}
}

func TestCloseWithoutSession(t *testing.T) {
	s := NewSession(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := s.Close(); err != nil {
		t.Errorf("Close on an unused session should be a no-op, got %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close should be idempotent, got %v", err)
	}
}
