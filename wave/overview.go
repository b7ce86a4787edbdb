package wave

// Overview is the minimap strip: the file's full extent compressed to the
// surface width with a draggable [===] window indicator. Dragging the
// indicator translates pointer movement through the total-to-cell scale and
// commits through the shared SetVisible path.
type Overview struct {
	id    string
	surf  *Surface
	vp    Viewport
	coord *Coordinator

	dragging  bool
	lastX     int
	dragStart TimeRange
}

func NewOverview(id string, coord *Coordinator, width int) *Overview {
	o := &Overview{id: id, surf: NewSurface(width, 1), coord: coord}
	coord.Attach(o)
	return o
}

func (o *Overview) ID() string { return o.id }

func (o *Overview) ViewRangeChanged(vp Viewport) {
	o.vp = vp
	o.Paint()
}

func (o *Overview) Surface() *Surface { return o.surf }

func (o *Overview) Resize(width int) {
	if o.surf.Resize(width, 1) {
		o.Paint()
	}
}

// indicatorCells maps the visible window onto the total extent in cells.
func (o *Overview) indicatorCells() (int, int) {
	w := o.surf.Width()
	total := o.vp.Total
	x0 := xForTime(o.vp.Visible.Start, total, w)
	x1 := xForTime(o.vp.Visible.End, total, w)
	if x1 >= w {
		x1 = w - 1
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 < x0 {
		x1 = x0
	}
	return x0, x1
}

// Paint draws the base rail and the window indicator. Indicator geometry is
// all this surface recomputes on a range change; it holds no signal data.
func (o *Overview) Paint() {
	s := o.surf
	w := s.Width()
	if w <= 0 {
		return
	}
	s.Clear()
	s.HLine(0, w-1, 0, '─', StyleTickMinor)

	x0, x1 := o.indicatorCells()
	s.HLine(x0, x1, 0, '═', StyleIndicator)
	s.Set(x0, 0, '[', StyleIndicator)
	s.Set(x1, 0, ']', StyleIndicator)
}

// HitsIndicator reports whether a cell lies on the window indicator.
func (o *Overview) HitsIndicator(x int) bool {
	x0, x1 := o.indicatorCells()
	return x >= x0 && x <= x1
}

// MouseDown starts dragging the indicator. A press outside the indicator
// centers the window on the pressed time first.
func (o *Overview) MouseDown(x int) {
	if !o.HitsIndicator(x) {
		o.centerOn(x)
	}
	o.dragging = true
	o.lastX = x
	o.dragStart = o.vp.Visible
}

// MouseMove translates the cell delta into a time delta via the total
// scale and shifts the window, span preserved, clamped to the extent.
func (o *Overview) MouseMove(x int) {
	if !o.dragging {
		return
	}
	w := o.surf.Width()
	if w <= 0 || x == o.lastX {
		return
	}
	scale := o.vp.Total.Span() / float64(w)
	delta := float64(x-o.lastX) * scale
	o.lastX = x

	next := TimeRange{Start: o.vp.Visible.Start + delta, End: o.vp.Visible.End + delta}
	next = next.clampTo(o.vp.Total)
	if err := o.coord.SetVisible(o.id, next.Start, next.End); err != nil {
		return
	}
	o.refresh()
}

func (o *Overview) MouseUp(int) { o.dragging = false }

func (o *Overview) centerOn(x int) {
	w := o.surf.Width()
	if w <= 0 {
		return
	}
	t := timeForX(x, o.vp.Total, w)
	span := o.vp.Visible.Span()
	next := TimeRange{Start: t - span/2, End: t + span/2}
	next = next.clampTo(o.vp.Total)
	if err := o.coord.SetVisible(o.id, next.Start, next.End); err != nil {
		return
	}
	o.refresh()
}

func (o *Overview) refresh() {
	o.vp = o.coord.Viewport()
	o.Paint()
}
