package zoom

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Mode is the arity of the gesture a Tracker is following.
type Mode int

const (
	// ModeSingle follows one contact: a mouse pointer or one finger.
	ModeSingle Mode = iota
	// ModeDouble follows a two-finger gesture.
	ModeDouble
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeDouble:
		return "double"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Snapshot is a copy of the gesture session state.
//
// Index 0 of the two-slot arrays is the primary contact and is always
// tracked. Index 1, the origins and the distances are meaningful only in
// ModeDouble.
type Snapshot struct {
	Mode Mode

	StartPoints [2]Coordinate
	LastPoints  [2]Coordinate

	// ChangeX and ChangeY are the per-contact deltas of the latest move.
	ChangeX [2]float64
	ChangeY [2]float64

	// StartOrigin and LastOrigin are the midpoints of the two contacts at
	// gesture start and after the latest move.
	StartOrigin Coordinate
	LastOrigin  Coordinate

	// ChangeOriginX and ChangeOriginY are the midpoint delta of the latest move.
	ChangeOriginX float64
	ChangeOriginY float64

	StartDistance float64
	LastDistance  float64

	// Scale is LastDistance / StartDistance, the zoom since gesture start.
	Scale float64
	// ChangeScale is the zoom of the latest move alone.
	ChangeScale float64
}

// Tracker converts mouse and touch input into translation deltas and scale
// ratios.
//
// The host calls Start on pointer or touch down, Move on every move event and
// reads the state between calls. A Tracker does not see touch-end events: when
// a two-finger gesture drops to one finger the host calls Reset before the next
// Start.
//
// A Tracker is not safe for concurrent use; give each widget its own.
type Tracker struct {
	s    Snapshot
	opts options
}

// NewTracker creates a Tracker in its reset state.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{opts: applyOptions(opts)}
	t.reset()
	return t
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() Snapshot {
	return t.s
}

// Mode returns the current gesture arity.
func (t *Tracker) Mode() Mode {
	return t.s.Mode
}

// Scale returns the zoom ratio since the two-finger gesture began.
func (t *Tracker) Scale() float64 {
	return t.s.Scale
}

// ChangeScale returns the zoom ratio of the latest move.
func (t *Tracker) ChangeScale() float64 {
	return t.s.ChangeScale
}

// Reset re-arms the tracker for a new gesture: ModeSingle, no primary delta,
// unit scale and zeroed last points.
func (t *Tracker) Reset() {
	t.reset()
	t.log().Debug("zoom: gesture reset")
	t.notify()
}

func (t *Tracker) reset() {
	t.s.LastPoints = [2]Coordinate{}
	t.s.Scale = 1
	t.s.ChangeScale = 1
	t.s.ChangeX[0] = 0
	t.s.ChangeY[0] = 0
	t.s.Mode = ModeSingle
}

// Start begins a gesture.
//
// A mouse event or a one-finger touch resets the tracker and records the
// primary contact. A two-finger touch switches to ModeDouble without a reset
// and records both contacts, their midpoint and their distance.
// Negative touch x readings are recorded as their absolute value.
func (t *Tracker) Start(ev Event) error {
	if err := ev.validate(); err != nil {
		t.log().Warn("zoom: start rejected", "event", ev.String(), "err", err)
		return err
	}

	switch {
	case ev.Kind() == InputMouse:
		t.reset()
		t.s.StartPoints[0] = ev.Point(0)
		t.s.LastPoints[0] = t.s.StartPoints[0]

	case ev.Len() == 1:
		t.reset()
		t.s.StartPoints[0] = ev.Point(0).normalizeX()
		t.s.LastPoints[0] = t.s.StartPoints[0]

	default:
		t.s.Mode = ModeDouble
		t.s.StartPoints[0] = ev.Point(0).normalizeX()
		t.s.StartPoints[1] = ev.Point(1).normalizeX()
		t.s.LastPoints = t.s.StartPoints
		t.s.StartOrigin = t.s.StartPoints[0].Mid(t.s.StartPoints[1])
		t.s.LastOrigin = t.s.StartOrigin
		t.s.StartDistance = distance(t.s.StartPoints[0], t.s.StartPoints[1])
		t.s.LastDistance = t.s.StartDistance
	}

	if l := t.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("zoom: gesture start",
			"event", ev.String(),
			"mode", t.s.Mode.String(),
			"distance", t.s.StartDistance)
	}
	t.notify()
	return nil
}

// Move updates the deltas from a move event.
//
// Mouse events always update the primary contact, whatever the mode. In
// ModeDouble a touch event must carry both contacts; the midpoint delta,
// ChangeScale and Scale are recomputed from them, rounded to four decimals.
func (t *Tracker) Move(ev Event) error {
	if err := ev.validate(); err != nil {
		t.log().Warn("zoom: move rejected", "event", ev.String(), "err", err)
		return err
	}

	switch {
	case ev.Kind() == InputMouse:
		p := ev.Point(0)
		t.s.ChangeX[0] = p.X - t.s.LastPoints[0].X
		t.s.ChangeY[0] = p.Y - t.s.LastPoints[0].Y
		t.s.LastPoints[0] = p

	case t.s.Mode == ModeSingle:
		t.moveContact(0, ev.Point(0))

	default:
		if ev.Len() != 2 {
			t.log().Warn("zoom: move rejected", "event", ev.String(), "err", ErrContactMismatch)
			return ErrContactMismatch
		}
		t.moveContact(0, ev.Point(0))
		t.moveContact(1, ev.Point(1))

		origin := t.s.LastPoints[0].Mid(t.s.LastPoints[1])
		t.s.ChangeOriginX = origin.X - t.s.LastOrigin.X
		t.s.ChangeOriginY = origin.Y - t.s.LastOrigin.Y
		t.s.LastOrigin = origin

		d := distance(t.s.LastPoints[0], t.s.LastPoints[1])
		t.s.ChangeScale = ratio(d, t.s.LastDistance)
		t.s.Scale = ratio(d, t.s.StartDistance)
		t.s.LastDistance = d
	}

	if l := t.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("zoom: gesture move",
			"event", ev.String(),
			"dx", t.s.ChangeX[0],
			"dy", t.s.ChangeY[0],
			"scale", t.s.Scale,
			"changeScale", t.s.ChangeScale)
	}
	t.notify()
	return nil
}

// moveContact updates the delta and last position of contact i.
func (t *Tracker) moveContact(i int, p Coordinate) {
	cur := p.normalizeX()
	if t.opts.legacyDelta && p.X < 0 {
		// Historical arithmetic: the previous position is not subtracted.
		t.s.ChangeX[i] = cur.X
	} else {
		t.s.ChangeX[i] = cur.X - t.s.LastPoints[i].X
	}
	t.s.ChangeY[i] = p.Y - t.s.LastPoints[i].Y
	t.s.LastPoints[i] = cur
}

func (t *Tracker) notify() {
	if t.opts.observer != nil {
		t.opts.observer(t.s)
	}
}

func (t *Tracker) log() *slog.Logger {
	return pick(t.opts.logger)
}

// distance returns the Euclidean distance between two contacts.
func distance(p1, p2 Coordinate) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// ratio returns d1/d2 rounded to four decimal places.
// A zero d2 yields +Inf or NaN.
func ratio(d1, d2 float64) float64 {
	return math.Round(d1/d2*1e4) / 1e4
}
