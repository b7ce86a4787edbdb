package wave

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandY(t *testing.T) {
	assert.Equal(t, 0, bandY(1, 2))
	assert.Equal(t, 1, bandY(0, 2))
	assert.Equal(t, 1, bandY(1, 5))
	assert.Equal(t, 4, bandY(0, 5))
	assert.Equal(t, 0, bandY(0, 1))
}

func TestPaintBinaryClock(t *testing.T) {
	p := NewPainter(0)
	s := NewSurface(100, 2)
	clk := NewClockSource(20, 10, 0)

	p.PaintBinary(s, clk, TimeRange{Start: 0, End: 100})

	// Low segment [0, 10), then high [10, 20), and so on.
	assert.Equal(t, '─', s.RuneAt(5, 1))
	assert.Equal(t, ' ', s.RuneAt(5, 0))
	assert.Equal(t, '─', s.RuneAt(15, 0))
	assert.Equal(t, ' ', s.RuneAt(15, 1))
	assert.Equal(t, '│', s.RuneAt(10, 1), "edge connects the bands")
	assert.Equal(t, '─', s.RuneAt(10, 0), "run overwrites the edge corner")

	assert.Equal(t, StyleWaveLow, s.StyleIDAt(5, 1))
	assert.Equal(t, StyleWaveHigh, s.StyleIDAt(15, 0))

	// The last visible segment is high [90, 100); it is drawn in full
	// from the look-ahead change past the right edge.
	assert.Equal(t, '─', s.RuneAt(99, 0))
}

func TestPaintBinaryExhaustedSourceRunsToRightEdge(t *testing.T) {
	p := NewPainter(0)
	s := NewSurface(50, 2)
	src := NewFiniteSource([]Change{{Time: 0, Value: BitValue(1)}})

	p.PaintBinary(s, src, TimeRange{Start: 0, End: 50})

	assert.Equal(t, '─', s.RuneAt(0, 0))
	assert.Equal(t, '─', s.RuneAt(49, 0))
	assert.Equal(t, strings.Repeat(" ", 50), s.Line(1))
}

func TestPaintBinaryAbsentLeadIn(t *testing.T) {
	p := NewPainter(0)
	s := NewSurface(50, 2)
	src := NewFiniteSource([]Change{{Time: 30, Value: BitValue(1)}})

	p.PaintBinary(s, src, TimeRange{Start: 0, End: 50})

	assert.Equal(t, StyleWaveAbsent, s.StyleIDAt(5, 1), "region before the first recorded change paints absent")
	assert.Equal(t, StyleWaveHigh, s.StyleIDAt(40, 0))
}

func TestPaintVector(t *testing.T) {
	p := NewPainter(0)
	s := NewSurface(100, 3)
	src := NewFiniteSource([]Change{
		{Time: 0, Value: VectorValue("101")},
		{Time: 50, Value: VectorValue("111")},
	})

	p.PaintVector(s, src, TimeRange{Start: 0, End: 100})

	// Rails top and bottom, separator at the change boundary.
	assert.Equal(t, '─', s.RuneAt(25, 0))
	assert.Equal(t, '─', s.RuneAt(25, 2))
	assert.Equal(t, '│', s.RuneAt(50, 0))
	assert.Equal(t, '│', s.RuneAt(50, 1))
	assert.Equal(t, '│', s.RuneAt(50, 2))

	// Decoded labels on the middle line. The first segment hugs the left
	// edge (it is clipped there), the last hugs the right.
	assert.Equal(t, '5', s.RuneAt(1, 1))
	assert.Equal(t, '7', s.RuneAt(98, 1))
}

func TestPaintVectorNarrowSegmentSkipsLabel(t *testing.T) {
	p := NewPainter(0)
	s := NewSurface(100, 3)
	src := NewFiniteSource([]Change{
		{Time: 0, Value: VectorValue("1010")},
		{Time: 3, Value: VectorValue("0")},
	})

	p.PaintVector(s, src, TimeRange{Start: 0, End: 100})

	assert.NotContains(t, s.Line(1)[:3], "1", "label wider than the segment is dropped")
	assert.Equal(t, '0', s.RuneAt(98, 1), "the clipped-right segment anchors its label at the right edge")
}

func TestPaintVectorSubCellSegment(t *testing.T) {
	p := NewPainter(0)
	s := NewSurface(100, 3)
	src := NewFiniteSource([]Change{
		{Time: 0, Value: VectorValue("1")},
		{Time: 0.5, Value: VectorValue("10")},
		{Time: 60, Value: VectorValue("11")},
	})

	// The first segment collapses below one cell; nothing panics and the
	// following segments still paint.
	p.PaintVector(s, src, TimeRange{Start: 0, End: 100})
	assert.Equal(t, '│', s.RuneAt(60, 1))
}

func TestPaintBackgroundBanding(t *testing.T) {
	p := NewPainter(2)
	s := NewSurface(10, 2)

	p.PaintBackground(s, 0)
	assert.Equal(t, StyleDefault, s.StyleIDAt(0, 0))
	p.PaintBackground(s, 1)
	assert.Equal(t, StyleDefault, s.StyleIDAt(0, 0))
	p.PaintBackground(s, 2)
	assert.Equal(t, StyleBandAlt, s.StyleIDAt(0, 0))
	p.PaintBackground(s, 3)
	assert.Equal(t, StyleBandAlt, s.StyleIDAt(0, 0))
	p.PaintBackground(s, 4)
	assert.Equal(t, StyleDefault, s.StyleIDAt(0, 0))

	disabled := NewPainter(0)
	disabled.PaintBackground(s, 5)
	assert.Equal(t, StyleDefault, s.StyleIDAt(0, 0))
}

func TestPaintVectorExhaustedRunsToRightEdge(t *testing.T) {
	p := NewPainter(0)
	s := NewSurface(40, 3)
	src := NewFiniteSource([]Change{{Time: 0, Value: VectorValue("101")}})

	p.PaintVector(s, src, TimeRange{Start: 0, End: 100})

	require.Equal(t, '─', s.RuneAt(39, 0))
	assert.Equal(t, '─', s.RuneAt(39, 2))
	assert.Equal(t, '5', s.RuneAt(19, 1), "segment clipped on both sides centers its label")
}
