package zoom

import "log/slog"

// Option configures a Tracker or a Viewer during creation.
//
// Example:
//
//	// Bit-for-bit parity with the legacy touch delta arithmetic
//	t := zoom.NewTracker(zoom.WithLegacyDelta(true))
//
//	// Redraw after every gesture update
//	v := zoom.NewViewer(zoom.WithObserver(func(s zoom.Snapshot) { redraw() }))
type Option func(*options)

// options holds optional configuration shared by Tracker and Viewer.
type options struct {
	legacyDelta bool
	observer    func(Snapshot)
	logger      *slog.Logger
	minZoom     float64
	maxZoom     float64
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		minZoom: 0, // unbounded
		maxZoom: 0,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLegacyDelta selects how a negative x reading enters a touch delta.
//
// By default both the current and the previous reading are normalized, so
// changeX = |x| - last.X. With legacy enabled the delta reproduces the
// historical arithmetic, where a negative reading yields changeX = |x| without
// subtracting the previous position. Use it only when exact numeric parity
// with recorded sessions is required.
func WithLegacyDelta(legacy bool) Option {
	return func(o *options) {
		o.legacyDelta = legacy
	}
}

// WithObserver registers fn to be called with the tracker state after every
// successful Start, Move and Reset. fn runs synchronously on the caller's
// goroutine and must not call back into the Tracker.
func WithObserver(fn func(Snapshot)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithLogger sets a per-instance logger. When unset, the package logger
// configured with SetLogger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithScaleLimits bounds the cumulative zoom a Viewer may reach.
// A zero bound is unlimited. It has no effect on a bare Tracker.
func WithScaleLimits(minZoom, maxZoom float64) Option {
	return func(o *options) {
		o.minZoom = minZoom
		o.maxZoom = maxZoom
	}
}
