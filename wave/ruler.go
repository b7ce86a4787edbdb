package wave

// minDragCells is the release threshold below which a drag is treated as a
// click and discarded.
const minDragCells = 5

// wheelZoomFactor is the per-notch zoom applied by a modifier-held wheel.
const wheelZoomFactor = 1.2

// wheelPanFraction is the per-notch pan applied by an unmodified wheel.
const wheelPanFraction = 0.1

// dragState is the ruler's two-state gesture machine.
type dragState int

const (
	dragIdle dragState = iota
	dragActive
)

// Ruler is the time-scale surface: major/minor ticks with labels on top,
// and the drag-to-zoom gesture owner. Dragging draws a selection overlay
// between the anchor and the pointer; releasing a span of at least
// minDragCells commits the selected time range through the shared viewport.
type Ruler struct {
	id      string
	surf    *Surface
	vp      Viewport
	coord   *Coordinator
	state   dragState
	anchorX int
	curX    int
	markers []float64
}

func NewRuler(id string, coord *Coordinator, width int) *Ruler {
	r := &Ruler{id: id, surf: NewSurface(width, 2), coord: coord}
	coord.Attach(r)
	return r
}

func (r *Ruler) ID() string { return r.id }

func (r *Ruler) ViewRangeChanged(vp Viewport) {
	r.vp = vp
	r.Paint()
}

// VisibleRange exposes the window this surface is currently drawn for.
func (r *Ruler) VisibleRange() TimeRange { return r.vp.Visible }

// Resize adjusts the surface width; height is fixed at two lines (labels
// over the tick rail). Repaints only on a real change.
func (r *Ruler) Resize(width int) {
	if r.surf.Resize(width, 2) {
		r.Paint()
	}
}

func (r *Ruler) Surface() *Surface { return r.surf }

// Paint lays the ruler out from the current window: a tick rail with '┴'
// marks at nice major intervals, '·' minors, and unit labels above.
func (r *Ruler) Paint() {
	s := r.surf
	s.Clear()
	w := s.Width()
	if w <= 0 {
		return
	}

	plan := PlanTicks(r.vp.Visible, w)
	s.HLine(0, w-1, 1, '─', StyleTickMinor)
	for _, t := range plan.Minor {
		s.Set(t.X, 1, '·', StyleTickMinor)
	}
	for _, t := range plan.Major {
		s.Set(t.X, 1, '┴', StyleTickMajor)
		lx := t.X
		lw := len([]rune(t.Label))
		if lx+lw > w {
			lx = w - lw
		}
		s.Text(lx, 0, t.Label, StyleTickMajor)
	}

	for _, t := range r.markers {
		if !r.vp.Visible.Contains(t) {
			continue
		}
		s.Set(xForTime(t, r.vp.Visible, w), 1, '▼', StyleIndicator)
	}

	if r.state == dragActive {
		x0, x1 := r.anchorX, r.curX
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			s.StyleAt(x, 0, StyleSelection)
			s.StyleAt(x, 1, StyleSelection)
		}
	}
}

// SetMarkers replaces the marker overlay times and repaints.
func (r *Ruler) SetMarkers(ts []float64) {
	r.markers = ts
	r.Paint()
}

// MouseDown anchors a drag gesture.
func (r *Ruler) MouseDown(x int) {
	r.state = dragActive
	r.anchorX = x
	r.curX = x
	r.Paint()
}

// MouseMove extends the selection overlay while dragging.
func (r *Ruler) MouseMove(x int) {
	if r.state != dragActive {
		return
	}
	r.curX = x
	r.Paint()
}

// MouseUp ends the gesture. Spans under minDragCells are a click and change
// nothing; anything wider converts to a time range and commits.
func (r *Ruler) MouseUp(x int) {
	if r.state != dragActive {
		return
	}
	r.state = dragIdle
	r.curX = x

	x0, x1 := r.anchorX, x
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1-x0 < minDragCells {
		r.Paint()
		return
	}

	w := r.surf.Width()
	start := timeForX(x0, r.vp.Visible, w)
	end := timeForX(x1+1, r.vp.Visible, w)
	if err := r.coord.SetVisible(r.id, start, end); err != nil {
		// A degenerate cell span at extreme zoom; leave the view alone.
		r.Paint()
		return
	}
	r.refresh()
}

// refresh repaints from the authoritative viewport. The origin of a commit
// is excluded from the coordinator's rebroadcast, so it pulls the new
// window itself.
func (r *Ruler) refresh() {
	r.vp = r.coord.Viewport()
	r.Paint()
}

// Wheel handles scroll input over the ruler: with a modifier held it zooms
// about the viewport (factor wheelZoomFactor), otherwise it pans by a tenth
// of the visible span per notch.
func (r *Ruler) Wheel(dir int, modifier bool) {
	if modifier {
		if dir > 0 {
			r.coord.ZoomIn(r.id, wheelZoomFactor)
		} else {
			r.coord.ZoomOut(r.id, wheelZoomFactor)
		}
		r.refresh()
		return
	}
	r.coord.Pan(r.id, dir, wheelPanFraction)
	r.refresh()
}
