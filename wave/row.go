package wave

import (
	"github.com/andareed/siftly-wave/logging"
)

// RowKind selects the painter for a row.
type RowKind int

const (
	// RowBit rows draw the two-level step waveform.
	RowBit RowKind = iota
	// RowVector rows draw separators and numeric labels.
	RowVector
)

// Row is one signal's drawing surface, created when the signal is added to
// the file's selection and torn down when removed. Synthetic rows own an
// infinite ChangeSource and paint immediately; fetched rows ask the shell
// for data per visible range and apply latest-wins to the responses.
type Row struct {
	id       string
	Ref      uint32
	Name     string
	Kind     RowKind
	rowIndex int

	surf    *Surface
	vp      Viewport
	painter *Painter

	src ChangeSource // synthetic source, nil for fetched rows

	// Fetched-row state. Requests are keyed by the range they were
	// issued for; a response for anything but the current window is
	// stale and silently dropped (no cancellation is sent).
	fetched     bool
	data        []Change
	dataRange   TimeRange
	haveData    bool
	pending     TimeRange
	havePending bool
}

// NewSyntheticRow builds a row over a generator (clock or counter).
func NewSyntheticRow(id, name string, kind RowKind, src ChangeSource, rowIndex int, painter *Painter, width, height int) *Row {
	return &Row{
		id:       id,
		Name:     name,
		Kind:     kind,
		rowIndex: rowIndex,
		surf:     NewSurface(width, height),
		painter:  painter,
		src:      src,
	}
}

// NewFetchedRow builds a row whose changes come from the data service.
func NewFetchedRow(id, name string, ref uint32, kind RowKind, rowIndex int, painter *Painter, width, height int) *Row {
	return &Row{
		id:       id,
		Ref:      ref,
		Name:     name,
		Kind:     kind,
		rowIndex: rowIndex,
		surf:     NewSurface(width, height),
		painter:  painter,
		fetched:  true,
	}
}

func (r *Row) ID() string      { return r.id }
func (r *Row) RowIndex() int   { return r.rowIndex }
func (r *Row) Surface() *Surface { return r.surf }
func (r *Row) IsFetched() bool { return r.fetched }

// VisibleRange exposes the window this row is currently bound to.
func (r *Row) VisibleRange() TimeRange { return r.vp.Visible }

func (r *Row) ViewRangeChanged(vp Viewport) {
	r.vp = vp
	r.Paint()
}

// SetRowIndex is called on reorder; the background banding depends on it.
func (r *Row) SetRowIndex(i int) {
	if i == r.rowIndex {
		return
	}
	r.rowIndex = i
	r.Paint()
}

// Resize repaints only when the cell dimensions actually changed.
func (r *Row) Resize(width, height int) {
	if r.surf.Resize(width, height) {
		r.Paint()
	}
}

// Paint rasterizes the row for the current window. A fetched row without
// matching data paints a placeholder; its repaint is deferred until the
// fetch resolves.
func (r *Row) Paint() {
	r.painter.PaintBackground(r.surf, r.rowIndex)

	var src ChangeSource
	switch {
	case r.src != nil:
		src = r.src
	case r.haveData && r.dataRange.ApproxEqual(r.vp.Visible):
		src = NewFiniteSource(r.data)
	default:
		r.paintPending()
		return
	}

	if r.Kind == RowVector {
		r.painter.PaintVector(r.surf, src, r.vp.Visible)
	} else {
		r.painter.PaintBinary(r.surf, src, r.vp.Visible)
	}
}

func (r *Row) paintPending() {
	s := r.surf
	y := s.Height() / 2
	s.HLine(0, s.Width()-1, y, '┄', StyleWaveAbsent)
}

// WantsFetch reports the range this row needs data for, if any. The shell
// polls it after every range commit and issues the asynchronous fetch; the
// row remembers the issued range so the same request is not repeated.
func (r *Row) WantsFetch() (TimeRange, bool) {
	if !r.fetched {
		return TimeRange{}, false
	}
	want := r.vp.Visible
	if r.haveData && r.dataRange.ApproxEqual(want) {
		return TimeRange{}, false
	}
	if r.havePending && r.pending.ApproxEqual(want) {
		return TimeRange{}, false
	}
	r.pending = want
	r.havePending = true
	return want, true
}

// ResetFetch forgets the remembered in-flight request. Callers that drop a
// fetch command instead of running it use this so the next WantsFetch poll
// re-reports the range.
func (r *Row) ResetFetch() {
	r.havePending = false
	r.pending = TimeRange{}
}

// ValueAt resolves the value holding at time t, when the row has enough
// data to answer.
func (r *Row) ValueAt(t float64) (Value, bool) {
	var src ChangeSource
	switch {
	case r.src != nil:
		src = r.src
	case r.haveData && r.dataRange.Contains(t):
		src = NewFiniteSource(r.data)
	default:
		return Value{}, false
	}
	src.Begin(t)
	last, ok := src.Next()
	if !ok || last.Time > t {
		return Value{}, false
	}
	for {
		ch, ok := src.Next()
		if !ok || ch.Time > t {
			break
		}
		last = ch
	}
	return last.Value, true
}

// DeliverChanges lands a fetch response. Responses for a superseded range
// are discarded here, which is the whole of the stale-result policy: no
// cancellation is ever sent to the data service.
func (r *Row) DeliverChanges(rng TimeRange, changes []Change) {
	if r.havePending && r.pending.ApproxEqual(rng) {
		r.havePending = false
	}
	if !rng.ApproxEqual(r.vp.Visible) {
		logging.Debugf("row %s: stale fetch for %s dropped (visible %s)", r.id, rng, r.vp.Visible)
		return
	}
	r.data = changes
	r.dataRange = rng
	r.haveData = true
	r.Paint()
}
