// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package script loads recorded gesture sessions and replays them through a
// zoom.Viewer.
//
// A script is a YAML or JSON document:
//
//	name: pinch-out
//	width: 400
//	height: 300
//	steps:
//	  - op: start
//	    touches: [[100, 150], [200, 150]]
//	  - op: move
//	    touches: [[50, 150], [250, 150]]
//	  - op: reset
//	  - op: start
//	    mouse: [10, 10]
//	  - op: move
//	    mouse: [15, 12]
//	  - op: rotate
//	    angle: 90
//	    pivot: [200, 150]
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/zoom"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOp is returned for a step whose op is not recognized.
	ErrUnknownOp = errors.New("script: unknown op")

	// ErrBadStep is returned for a step whose fields do not match its op.
	ErrBadStep = errors.New("script: malformed step")

	// ErrUnknownFormat is returned when a file extension is neither YAML nor JSON.
	ErrUnknownFormat = errors.New("script: unknown format")
)

// Op is a script step operation.
type Op string

// Step operations.
const (
	OpStart  Op = "start"  // Tracker start with mouse or touches
	OpMove   Op = "move"   // Tracker move with mouse or touches
	OpReset  Op = "reset"  // re-arm the tracker, keep the view
	OpClear  Op = "clear"  // identity view and re-armed tracker
	OpPan    Op = "pan"    // programmatic pan by Pan
	OpZoom   Op = "zoom"   // programmatic zoom by Factor about Pivot
	OpRotate Op = "rotate" // programmatic rotation by Angle degrees about Pivot
)

// Format is a script encoding.
type Format int

// Supported encodings.
const (
	FormatYAML Format = iota
	FormatJSON
)

// Script is a recorded gesture session.
type Script struct {
	Name   string `json:"name" yaml:"name"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`

	// LegacyDelta replays with zoom.WithLegacyDelta.
	LegacyDelta bool `json:"legacy_delta,omitempty" yaml:"legacy_delta,omitempty"`

	// MinZoom and MaxZoom are passed to zoom.WithScaleLimits.
	MinZoom float64 `json:"min_zoom,omitempty" yaml:"min_zoom,omitempty"`
	MaxZoom float64 `json:"max_zoom,omitempty" yaml:"max_zoom,omitempty"`

	Steps []Step `json:"steps" yaml:"steps"`
}

// Step is one recorded input or view command.
type Step struct {
	Op      Op          `json:"op" yaml:"op"`
	Mouse   []float64   `json:"mouse,omitempty" yaml:"mouse,omitempty"`
	Touches [][]float64 `json:"touches,omitempty" yaml:"touches,omitempty"`
	Pan     []float64   `json:"pan,omitempty" yaml:"pan,omitempty"`
	Factor  float64     `json:"factor,omitempty" yaml:"factor,omitempty"`
	Angle   float64     `json:"angle,omitempty" yaml:"angle,omitempty"`
	Pivot   []float64   `json:"pivot,omitempty" yaml:"pivot,omitempty"`
}

// Load decodes a script from r.
func Load(r io.Reader, format Format) (*Script, error) {
	var s Script
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("script: decode YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("script: decode JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads a script, choosing the format from the file extension
// (.yaml, .yml or .json).
func LoadFile(path string) (*Script, error) {
	var format Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("script: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f, format)
}

// Validate checks every step against its op.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpStart, OpMove:
		hasMouse := st.Mouse != nil
		hasTouch := st.Touches != nil
		if hasMouse == hasTouch {
			return fmt.Errorf("%w: %s needs exactly one of mouse or touches", ErrBadStep, st.Op)
		}
		if hasMouse && len(st.Mouse) != 2 {
			return fmt.Errorf("%w: mouse needs 2 values, got %d", ErrBadStep, len(st.Mouse))
		}
		for j, p := range st.Touches {
			if len(p) != 2 {
				return fmt.Errorf("%w: touch %d needs 2 values, got %d", ErrBadStep, j, len(p))
			}
		}
	case OpPan:
		if len(st.Pan) != 2 {
			return fmt.Errorf("%w: pan needs 2 values", ErrBadStep)
		}
	case OpZoom:
		if st.Factor <= 0 {
			return fmt.Errorf("%w: zoom factor must be positive, got %g", ErrBadStep, st.Factor)
		}
		if st.Pivot != nil && len(st.Pivot) != 2 {
			return fmt.Errorf("%w: pivot needs 2 values", ErrBadStep)
		}
	case OpRotate:
		if st.Pivot != nil && len(st.Pivot) != 2 {
			return fmt.Errorf("%w: pivot needs 2 values", ErrBadStep)
		}
	case OpReset, OpClear:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	return nil
}

// Event converts a start or move step to a zoom.Event.
// Touch contact counts are validated later by the Tracker.
func (st Step) Event() zoom.Event {
	if st.Mouse != nil {
		return zoom.MouseEvent(st.Mouse[0], st.Mouse[1])
	}
	pts := make([]zoom.Coordinate, len(st.Touches))
	for i, p := range st.Touches {
		pts[i] = zoom.Pt(p[0], p[1])
	}
	return zoom.TouchEvent(pts...)
}

func (st Step) pivot() zoom.Coordinate {
	if len(st.Pivot) != 2 {
		return zoom.Coordinate{}
	}
	return zoom.Pt(st.Pivot[0], st.Pivot[1])
}
