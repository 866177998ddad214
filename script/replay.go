// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"fmt"
	"math"

	"github.com/gogpu/zoom"
)

// Frame is the viewer state after one replayed step.
type Frame struct {
	Index     int
	Op        Op
	State     zoom.Snapshot
	Transform zoom.Params
}

// NewViewer creates a viewer configured by the script header.
func (s *Script) NewViewer(opts ...zoom.Option) *zoom.Viewer {
	base := []zoom.Option{
		zoom.WithLegacyDelta(s.LegacyDelta),
		zoom.WithScaleLimits(s.MinZoom, s.MaxZoom),
	}
	return zoom.NewViewer(append(base, opts...)...)
}

// Replay runs every step of s through v and returns one Frame per step.
// Replay validates s first and stops at the first step the viewer rejects.
func Replay(s *Script, v *zoom.Viewer) ([]Frame, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("script %q: %w", s.Name, err)
	}
	log := zoom.Logger()
	frames := make([]Frame, 0, len(s.Steps))

	for i, st := range s.Steps {
		if err := apply(v, st); err != nil {
			return frames, fmt.Errorf("script %q: step %d (%s): %w", s.Name, i, st.Op, err)
		}
		frames = append(frames, Frame{
			Index:     i,
			Op:        st.Op,
			State:     v.Tracker().Snapshot(),
			Transform: v.Transform(),
		})
	}

	log.Debug("script: replayed", "name", s.Name, "steps", len(frames))
	return frames, nil
}

func apply(v *zoom.Viewer, st Step) error {
	switch st.Op {
	case OpStart:
		return v.Start(st.Event())
	case OpMove:
		return v.Move(st.Event())
	case OpReset:
		v.Tracker().Reset()
	case OpClear:
		v.Reset()
	case OpPan:
		v.PanBy(st.Pan[0], st.Pan[1])
	case OpZoom:
		v.ZoomBy(st.Factor, st.pivot())
	case OpRotate:
		v.Rotate(st.Angle*math.Pi/180, st.pivot())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	return nil
}
