package zoom

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.legacyDelta {
		t.Error("legacyDelta enabled by default")
	}
	if o.observer != nil || o.logger != nil {
		t.Error("observer or logger set by default")
	}
	if o.minZoom != 0 || o.maxZoom != 0 {
		t.Errorf("zoom limits = %g, %g, want unbounded", o.minZoom, o.maxZoom)
	}
}

func TestApplyOptions(t *testing.T) {
	l := slog.Default()
	called := false
	o := applyOptions([]Option{
		WithLegacyDelta(true),
		WithObserver(func(Snapshot) { called = true }),
		WithLogger(l),
		WithScaleLimits(0.25, 8),
	})

	if !o.legacyDelta {
		t.Error("WithLegacyDelta(true) not applied")
	}
	if o.logger != l {
		t.Error("WithLogger not applied")
	}
	if o.minZoom != 0.25 || o.maxZoom != 8 {
		t.Errorf("zoom limits = %g, %g, want 0.25, 8", o.minZoom, o.maxZoom)
	}
	o.observer(Snapshot{})
	if !called {
		t.Error("WithObserver not applied")
	}
}

func TestApplyOptions_LastWins(t *testing.T) {
	o := applyOptions([]Option{WithLegacyDelta(true), WithLegacyDelta(false)})
	if o.legacyDelta {
		t.Error("later WithLegacyDelta(false) did not override")
	}
}
