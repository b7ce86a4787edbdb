package wave

import (
	"github.com/andareed/siftly-wave/logging"
)

// ViewSurface is anything bound to a shared Viewport: signal rows, the
// ruler, the overview strip. ViewRangeChanged is delivered after a commit
// originated by some other surface (or by the keyboard, origin "").
type ViewSurface interface {
	ID() string
	ViewRangeChanged(vp Viewport)
}

// RangeEvent is the upward range-changed notification: which surface moved
// the window and where it landed.
type RangeEvent struct {
	Origin  string
	Visible TimeRange
}

// Coordinator owns the single authoritative Viewport for one open file and
// keeps every bound surface synchronized with it. All mutation happens on
// the UI goroutine; the Viewport's ranges are replaced, never edited, so a
// broadcast always observes one consistent window.
type Coordinator struct {
	vp       *Viewport
	surfaces []ViewSurface
	onChange func(RangeEvent)
}

func NewCoordinator() *Coordinator {
	return &Coordinator{vp: NewViewport()}
}

// OnRangeChanged installs the shell's notification hook.
func (c *Coordinator) OnRangeChanged(fn func(RangeEvent)) { c.onChange = fn }

// Viewport returns the current viewport by value; callers never mutate the
// shared instance directly.
func (c *Coordinator) Viewport() Viewport { return *c.vp }

// VisibleRange returns the shared visible window.
func (c *Coordinator) VisibleRange() TimeRange { return c.vp.Visible }

// Attach binds a surface to the viewport and primes it with the current
// window. Membership changes as rows come and go; the Viewport itself is
// stable for the file's lifetime.
func (c *Coordinator) Attach(s ViewSurface) {
	c.surfaces = append(c.surfaces, s)
	s.ViewRangeChanged(*c.vp)
}

// Detach removes a surface by id.
func (c *Coordinator) Detach(id string) {
	for i, s := range c.surfaces {
		if s.ID() == id {
			c.surfaces = append(c.surfaces[:i], c.surfaces[i+1:]...)
			return
		}
	}
}

// SetTotal installs the file's real extent once known and re-fits the
// window to it.
func (c *Coordinator) SetTotal(total TimeRange) {
	c.vp = &Viewport{Total: total, Visible: total}
	c.broadcast("")
}

// SetVisible validates and commits a new visible window. Invalid bounds are
// rejected and surfaced to the caller, never silently corrected. The commit
// is rebroadcast to every bound surface except the origin, which already
// painted itself, so a surface never reacts to its own change.
func (c *Coordinator) SetVisible(origin string, start, end float64) error {
	next, err := NewTimeRange(start, end)
	if err != nil {
		return err
	}
	next = next.clampTo(c.vp.Total)
	c.commit(origin, next)
	return nil
}

// ZoomIn shrinks the window by factor about its midpoint. A zoom that would
// collapse below the span floor is reported and dropped.
func (c *Coordinator) ZoomIn(origin string, factor float64) {
	if factor <= 1 {
		return
	}
	next, ok := c.vp.zoomed(1 / factor)
	if !ok {
		logging.Debugf("zoom in by %v degenerate at %s, ignored", factor, c.vp.Visible)
		return
	}
	c.commit(origin, next)
}

// ZoomOut grows the window by factor; reaching the total extent snaps to
// exactly the total.
func (c *Coordinator) ZoomOut(origin string, factor float64) {
	if factor <= 1 {
		return
	}
	next, ok := c.vp.zoomed(factor)
	if !ok {
		logging.Debugf("zoom out by %v degenerate at %s, ignored", factor, c.vp.Visible)
		return
	}
	c.commit(origin, next)
}

// ZoomToFit makes the whole file visible.
func (c *Coordinator) ZoomToFit(origin string) {
	c.commit(origin, c.vp.Total)
}

// Pan shifts the window by fraction of its span in the given direction;
// the span is preserved against the extent edges.
func (c *Coordinator) Pan(origin string, direction int, fraction float64) {
	c.commit(origin, c.vp.panned(direction, fraction))
}

func (c *Coordinator) commit(origin string, next TimeRange) {
	if next.ApproxEqual(c.vp.Visible) {
		return
	}
	// Replace, never mutate: surfaces holding the old value keep a
	// consistent read while the broadcast runs.
	c.vp = &Viewport{Total: c.vp.Total, Visible: next}
	c.broadcast(origin)
	if c.onChange != nil {
		c.onChange(RangeEvent{Origin: origin, Visible: next})
	}
}

func (c *Coordinator) broadcast(origin string) {
	for _, s := range c.surfaces {
		if origin != "" && s.ID() == origin {
			continue
		}
		s.ViewRangeChanged(*c.vp)
	}
}
