package zoom

import (
	"log/slog"
	"math"
)

// Viewer keeps the transform of a pan/zoom/rotate view in step with a Tracker.
//
// Each move is folded into the current transform as
//
//	next = translate(delta) * scaleAbout(changeScale, pivot) * prev
//
// where delta and pivot come from the primary contact in single mode and
// from the midpoint of both contacts in double mode.
//
// A Viewer is not safe for concurrent use.
type Viewer struct {
	tracker   *Tracker
	transform Params
	opts      options
}

// NewViewer creates a Viewer with the identity transform.
// The options are shared with the underlying Tracker.
func NewViewer(opts ...Option) *Viewer {
	o := applyOptions(opts)
	return &Viewer{
		tracker:   NewTracker(opts...),
		transform: Identity(),
		opts:      o,
	}
}

// Tracker returns the underlying gesture tracker.
func (v *Viewer) Tracker() *Tracker {
	return v.tracker
}

// Transform returns the current view transform.
func (v *Viewer) Transform() Params {
	return v.transform
}

// SetTransform replaces the current view transform.
func (v *Viewer) SetTransform(p Params) {
	v.transform = p
}

// Start begins a gesture. A one-finger touch arriving while the tracker still
// follows a two-finger gesture drops back to single mode, since the tracker
// resets on every one-finger start.
func (v *Viewer) Start(ev Event) error {
	return v.tracker.Start(ev)
}

// Move feeds a move event to the tracker and folds the resulting deltas into
// the view transform.
func (v *Viewer) Move(ev Event) error {
	if err := v.tracker.Move(ev); err != nil {
		return err
	}
	s := v.tracker.Snapshot()

	if ev.Kind() == InputMouse || s.Mode == ModeSingle {
		v.transform = Compose(Translate(s.ChangeX[0], s.ChangeY[0]), v.transform)
		return nil
	}

	pivot := s.LastOrigin.Sub(Pt(s.ChangeOriginX, s.ChangeOriginY))
	k := s.ChangeScale
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		v.log().Warn("zoom: skipping degenerate scale step", "changeScale", k)
		k = 1
	}
	k = v.clampStep(k)
	v.transform = Compose(
		Translate(s.ChangeOriginX, s.ChangeOriginY),
		ScaleAbout(k, pivot),
		v.transform,
	)
	return nil
}

// PanBy translates the view.
func (v *Viewer) PanBy(dx, dy float64) {
	v.transform = Compose(Translate(dx, dy), v.transform)
}

// ZoomBy scales the view by k about pivot, within the configured limits.
func (v *Viewer) ZoomBy(k float64, pivot Coordinate) {
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return
	}
	v.transform = Compose(ScaleAbout(v.clampStep(k), pivot), v.transform)
}

// Rotate rotates the view by angle radians about pivot.
func (v *Viewer) Rotate(angle float64, pivot Coordinate) {
	v.transform = Compose(RotateAbout(angle, pivot), v.transform)
}

// Reset restores the identity transform and re-arms the tracker.
func (v *Viewer) Reset() {
	v.transform = Identity()
	v.tracker.Reset()
}

// clampStep limits an incremental zoom k so that the cumulative zoom stays
// within the configured bounds.
func (v *Viewer) clampStep(k float64) float64 {
	z := v.transform.Zoom()
	if z == 0 {
		return k
	}
	switch target := z * k; {
	case v.opts.minZoom > 0 && target < v.opts.minZoom:
		return v.opts.minZoom / z
	case v.opts.maxZoom > 0 && target > v.opts.maxZoom:
		return v.opts.maxZoom / z
	}
	return k
}

func (v *Viewer) log() *slog.Logger {
	return pick(v.opts.logger)
}
