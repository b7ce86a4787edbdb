package wave

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned when a caller supplies negative or inverted
// bounds. It is the only engine error a caller is expected to handle; the
// rest of the taxonomy (degenerate zooms, malformed values, stale fetches)
// is absorbed internally.
var ErrInvalidRange = errors.New("invalid time range")

// rangeEps is the single relative epsilon used for every boundary comparison
// in the engine. Times are real-valued ticks and sub-unit values are legal,
// so exact float comparisons are never used.
const rangeEps = 1e-9

// spanFloor is the smallest visible span a zoom may produce. Zooming past it
// is a no-op, not an error.
const spanFloor = 1.0

// TimeRange is an immutable half-open window [Start, End) in ticks.
// Start >= 0 and Start < End always hold for a constructed range.
type TimeRange struct {
	Start float64
	End   float64
}

// NewTimeRange validates bounds and returns the range.
func NewTimeRange(start, end float64) (TimeRange, error) {
	if start < 0 || end < 0 || start >= end {
		return TimeRange{}, errors.Wrapf(ErrInvalidRange, "start=%v end=%v", start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

func (r TimeRange) Span() float64 { return r.End - r.Start }

func (r TimeRange) Mid() float64 { return r.Start + r.Span()/2 }

// Contains reports whether t falls inside the window.
func (r TimeRange) Contains(t float64) bool {
	return t >= r.Start && t < r.End
}

// ApproxEqual compares two ranges under the engine epsilon, scaled by the
// larger span so the comparison behaves the same at picosecond and second
// magnitudes.
func (r TimeRange) ApproxEqual(o TimeRange) bool {
	scale := math.Max(r.Span(), o.Span())
	if scale < 1 {
		scale = 1
	}
	return math.Abs(r.Start-o.Start) <= rangeEps*scale &&
		math.Abs(r.End-o.End) <= rangeEps*scale
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%g, %g)", r.Start, r.End)
}

// clampTo shifts r so it fits inside bounds, preserving the span when
// possible. A window wider than bounds snaps to bounds.
func (r TimeRange) clampTo(bounds TimeRange) TimeRange {
	span := r.Span()
	if span >= bounds.Span()-rangeEps*bounds.Span() {
		return bounds
	}
	if r.Start < bounds.Start {
		return TimeRange{Start: bounds.Start, End: bounds.Start + span}
	}
	if r.End > bounds.End {
		return TimeRange{Start: bounds.End - span, End: bounds.End}
	}
	return r
}

// Viewport pairs the full extent of an open file with the window currently
// on screen. One Viewport exists per open file; every surface bound to that
// file shares it by reference through the Coordinator. Visible is always
// replaced, never mutated, so reads during a broadcast stay consistent.
type Viewport struct {
	Total   TimeRange
	Visible TimeRange
}

// placeholderTotal is the extent used before the file's real extent is
// known. Visible may transiently exceed a later, smaller Total until the
// first SetTotal.
const placeholderTotalEnd = 1_000_000

// NewViewport returns a viewport on the placeholder extent, fully zoomed out.
func NewViewport() *Viewport {
	full := TimeRange{Start: 0, End: placeholderTotalEnd}
	return &Viewport{Total: full, Visible: full}
}

// zoomed returns the visible range scaled by factor about its midpoint and
// clamped to Total. factor < 1 zooms in, > 1 zooms out. The boolean is false
// when the operation would collapse the window below the span floor; callers
// treat that as a no-op.
func (v Viewport) zoomed(factor float64) (TimeRange, bool) {
	cur := v.Visible
	newSpan := cur.Span() * factor
	if newSpan < spanFloor {
		return TimeRange{}, false
	}
	mid := cur.Mid()
	next := TimeRange{Start: mid - newSpan/2, End: mid + newSpan/2}
	// Zoom clamps each end independently; only pan preserves the span.
	if next.Start < v.Total.Start {
		next.Start = v.Total.Start
	}
	if next.End > v.Total.End {
		next.End = v.Total.End
	}
	if next.Span() >= v.Total.Span()*(1-rangeEps) {
		return v.Total, true
	}
	if next.Span() < spanFloor {
		return TimeRange{}, false
	}
	return next, true
}

// panned returns the visible range shifted by fraction of its own span in
// the given direction, clamped span-preserving to Total.
func (v Viewport) panned(direction int, fraction float64) TimeRange {
	cur := v.Visible
	sign := 1.0
	if direction < 0 {
		sign = -1.0
	}
	delta := cur.Span() * fraction * sign
	next := TimeRange{Start: cur.Start + delta, End: cur.End + delta}
	return next.clampTo(v.Total)
}
