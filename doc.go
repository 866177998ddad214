// Package zoom tracks pan and pinch gestures and composes the resulting 2D
// affine transforms for an interactive image viewer.
//
// # Overview
//
// The package has two leaf parts:
//
//   - Matrix algebra: MakeMatrix, Multiply, MakeTransformMatrix and
//     ResolveTransformMatrix convert between flat column-major arrays, dense
//     matrices and the six transform parameters [a b c d e f] used by 2D
//     canvas and CSS transforms.
//   - Gesture tracking: a Tracker turns mouse and one- or two-finger touch
//     events into per-move deltas, a midpoint delta and scale ratios.
//
// A Viewer ties both together and keeps the current view transform.
//
// # Quick Start
//
//	v := zoom.NewViewer()
//
//	// pointer/touch down
//	_ = v.Start(zoom.TouchEvent(zoom.Pt(100, 200), zoom.Pt(300, 200)))
//
//	// pointer/touch move
//	_ = v.Move(zoom.TouchEvent(zoom.Pt(50, 200), zoom.Pt(350, 200)))
//
//	el.Style.Transform = v.Transform().CSS() // "matrix(1.5, 0, 0, 1.5, -100, -100)"
//
// # Gesture Modes
//
// A Tracker is in ModeSingle or ModeDouble. Start with exactly two touch
// contacts is the only way into ModeDouble; Reset is the only way back. The
// tracker never sees touch-end events, so the host resets it when a pinch
// drops to one finger (Viewer.Start does this automatically).
//
// # Coordinate System
//
// Coordinates are client pixels: origin at the top-left, x to the right, y
// down. Negative touch x readings, reported by some platforms near a screen
// edge, are folded onto their absolute value.
//
// # Errors
//
// Multiply reports ErrDimensionMismatch for operands that cannot be composed.
// Malformed input (wrong flat array length, non-affine matrices, touch events
// with zero or more than two contacts) is rejected with a descriptive error
// instead of producing garbage coordinates.
package zoom
