package wave

// Painter rasterizes change sequences onto a Surface. Vertical geometry
// follows the scope convention: the high band sits at 20% of the row height
// and the low band at 80%, so a two-cell row puts high on the top line and
// low on the bottom.
type Painter struct {
	// BandPattern is how many consecutive rows share one background
	// shade before the tint alternates. Zero disables banding.
	BandPattern int
	// LabelPad is the clearance required on each side of a vector label.
	LabelPad int
}

func NewPainter(bandPattern int) *Painter {
	return &Painter{BandPattern: bandPattern, LabelPad: 1}
}

// bandY maps a logic level to a row on the surface.
func bandY(level uint8, height int) int {
	if height <= 1 {
		return 0
	}
	if level == 1 {
		return int(float64(height) * 0.2)
	}
	y := int(float64(height) * 0.8)
	if y >= height {
		y = height - 1
	}
	return y
}

// bandStyle picks the trace style for a level.
func bandStyle(v Value) StyleID {
	if v.Kind == ValueAbsent {
		return StyleWaveAbsent
	}
	if v.Level() == 1 {
		return StyleWaveHigh
	}
	return StyleWaveLow
}

// PaintBackground applies the alternating row banding: groups of
// BandPattern consecutive rows share a tint, independent of per-row zebra
// striping.
func (p *Painter) PaintBackground(s *Surface, rowIndex int) {
	s.Clear()
	if p.BandPattern <= 0 {
		return
	}
	if (rowIndex/p.BandPattern)%2 == 1 {
		s.Fill(' ', StyleBandAlt)
	}
}

// background returns the band style currently under the waveform so trace
// cells keep the row tint.
func (p *Painter) bg(rowIndex int) StyleID {
	if p.BandPattern > 0 && (rowIndex/p.BandPattern)%2 == 1 {
		return StyleBandAlt
	}
	return StyleDefault
}

// PaintBinary walks the change sequence and draws a two-level step
// function: a horizontal run at the previous level up to each change, then
// a vertical edge to the new level.
func (p *Painter) PaintBinary(s *Surface, src ChangeSource, visible TimeRange) {
	w := s.Width()
	h := s.Height()
	if w <= 0 || h <= 0 {
		return
	}

	src.Begin(visible.Start)
	prev, ok := src.Next()
	if !ok {
		return
	}
	prevX := 0 // carry-forward change starts at or before the left edge

	for {
		ch, ok := src.Next()
		if !ok {
			// Sequence exhausted: the last value runs to the right edge.
			s.HLine(prevX, w-1, bandY(prev.Value.Level(), h), '─', bandStyle(prev.Value))
			return
		}
		x := xForTime(ch.Time, visible, w)
		if x > w-1 {
			x = w - 1
		}
		s.HLine(prevX, x, bandY(prev.Value.Level(), h), '─', bandStyle(prev.Value))
		if ch.Time >= visible.End {
			// One look-ahead past the window finishes the boundary
			// segment; nothing after it can be visible.
			return
		}
		if ch.Value.Level() != prev.Value.Level() {
			y0 := bandY(prev.Value.Level(), h)
			y1 := bandY(ch.Value.Level(), h)
			s.VLine(x, y0, y1, '│', bandStyle(ch.Value))
		}
		prev = ch
		prevX = x
	}
}

// PaintVector draws a multi-bit signal: a separator tick at every change
// boundary and the decoded numeric label centered in each segment that has
// room for it. Segments clipped by the viewport edges anchor their label
// inward from the edge instead of the true segment center.
func (p *Painter) PaintVector(s *Surface, src ChangeSource, visible TimeRange) {
	w := s.Width()
	h := s.Height()
	if w <= 0 || h <= 0 {
		return
	}
	midY := h / 2

	src.Begin(visible.Start)
	prev, ok := src.Next()
	if !ok {
		return
	}
	prevX := 0
	firstSeg := true

	railY0, railY1 := 0, h-1

	emit := func(v Value, x0, x1 int, clippedLeft, clippedRight bool) {
		if x1 < x0 {
			return // segment narrower than one cell at this zoom
		}
		s.HLine(x0, x1, railY0, '─', bandStyle(v))
		if h > 1 {
			s.HLine(x0, x1, railY1, '─', bandStyle(v))
		}
		p.placeLabel(s, v.Label(), x0, x1, midY, clippedLeft, clippedRight)
	}

	for {
		ch, ok := src.Next()
		if !ok {
			emit(prev.Value, prevX, w-1, firstSeg, true)
			return
		}
		x := xForTime(ch.Time, visible, w)
		clippedRight := false
		segEnd := x - 1
		if x > w-1 {
			segEnd = w - 1
			clippedRight = true
		}
		emit(prev.Value, prevX, segEnd, firstSeg, clippedRight)
		if ch.Time >= visible.End {
			return
		}
		s.VLine(x, railY0, railY1, '│', StyleTickMinor)
		prev = ch
		prevX = x + 1
		firstSeg = false
	}
}

// placeLabel centers text in [x0, x1] when it fits with padding. For
// segments cut off by the viewport edge the label hugs the visible side,
// clamped so it never overlaps the adjacent separator.
func (p *Painter) placeLabel(s *Surface, label string, x0, x1, y int, clippedLeft, clippedRight bool) {
	segW := x1 - x0 + 1
	lw := len([]rune(label))
	if segW < lw+2*p.LabelPad {
		return
	}
	var lx int
	switch {
	case clippedLeft && !clippedRight:
		lx = x0 + p.LabelPad
	case clippedRight && !clippedLeft:
		lx = x1 - p.LabelPad - lw + 1
	default:
		lx = x0 + (segW-lw)/2
	}
	if lx < x0+p.LabelPad {
		lx = x0 + p.LabelPad
	}
	if lx+lw-1 > x1-p.LabelPad {
		lx = x1 - p.LabelPad - lw + 1
	}
	s.Text(lx, y, label, StyleLabel)
}
