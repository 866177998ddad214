package zoom

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContacts is returned for a touch event without any contact point.
	ErrNoContacts = errors.New("zoom: touch event has no contact points")

	// ErrTooManyContacts is returned for a touch event with more than two contact points.
	ErrTooManyContacts = errors.New("zoom: touch event has more than two contact points")

	// ErrContactMismatch is returned when a two-finger gesture receives a
	// single-contact move without being reset first.
	ErrContactMismatch = errors.New("zoom: two-finger gesture moved with one contact")
)

// InputKind tells a mouse pointer event from a touch event.
type InputKind int

const (
	// InputMouse is a single mouse pointer.
	InputMouse InputKind = iota
	// InputTouch carries one or two touch contacts.
	InputTouch
)

// String returns the input kind name.
func (k InputKind) String() string {
	switch k {
	case InputMouse:
		return "mouse"
	case InputTouch:
		return "touch"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// Event is a pointer-down or pointer-move input, decided by the caller as
// either a mouse event or a touch event.
//
// The zero Event is a mouse event at (0, 0).
type Event struct {
	kind   InputKind
	points [2]Coordinate
	n      int
	extra  int // contacts beyond the two tracked slots
}

// MouseEvent creates a mouse pointer event at client coordinates (x, y).
func MouseEvent(x, y float64) Event {
	return Event{kind: InputMouse, points: [2]Coordinate{{X: x, Y: y}}, n: 1}
}

// TouchEvent creates a touch event from the active contacts in order.
// Events with zero or more than two contacts are rejected by the Tracker.
func TouchEvent(points ...Coordinate) Event {
	ev := Event{kind: InputTouch}
	ev.n = copy(ev.points[:], points)
	ev.extra = len(points) - ev.n
	return ev
}

// Kind returns whether ev is a mouse or a touch event.
func (ev Event) Kind() InputKind {
	return ev.kind
}

// Len returns the number of contacts carried by ev.
func (ev Event) Len() int {
	if ev.kind == InputMouse {
		return 1
	}
	return ev.n + ev.extra
}

// Point returns the i-th contact. i must be 0 or 1.
func (ev Event) Point(i int) Coordinate {
	return ev.points[i]
}

// validate checks the contact count of touch events.
func (ev Event) validate() error {
	if ev.kind != InputTouch {
		return nil
	}
	switch {
	case ev.n == 0:
		return ErrNoContacts
	case ev.extra > 0:
		return fmt.Errorf("%w: got %d", ErrTooManyContacts, ev.Len())
	}
	return nil
}

// String implements fmt.Stringer.
func (ev Event) String() string {
	if ev.kind == InputMouse {
		return fmt.Sprintf("mouse(%g, %g)", ev.points[0].X, ev.points[0].Y)
	}
	switch ev.Len() {
	case 1:
		return fmt.Sprintf("touch(%g, %g)", ev.points[0].X, ev.points[0].Y)
	case 2:
		return fmt.Sprintf("touch(%g, %g; %g, %g)",
			ev.points[0].X, ev.points[0].Y, ev.points[1].X, ev.points[1].Y)
	}
	return fmt.Sprintf("touch[%d]", ev.Len())
}
