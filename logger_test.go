package fractal

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	c := NewController(DefaultViewState())
	mustApply(t, c, PrimaryDoubleClick{}, testViewport)
	_ = c.Apply(SliderSet{Field: Field(99)}, testViewport)

	out := buf.String()
	if !strings.Contains(out, "zoom level change") {
		t.Errorf("log lacks zoom change:\n%s", out)
	}
	if !strings.Contains(out, "event rejected") {
		t.Errorf("log lacks rejected event:\n%s", out)
	}
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
