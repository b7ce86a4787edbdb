package wave

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeRange(t *testing.T) {
	r, err := NewTimeRange(10, 250)
	require.NoError(t, err)
	assert.Equal(t, 10.0, r.Start)
	assert.Equal(t, 250.0, r.End)
	assert.Equal(t, 240.0, r.Span())
	assert.Equal(t, 130.0, r.Mid())

	_, err = NewTimeRange(100, 50)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	_, err = NewTimeRange(-1, 50)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	_, err = NewTimeRange(50, 50)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{Start: 10, End: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(19.999))
	assert.False(t, r.Contains(20)) // half-open
	assert.False(t, r.Contains(9.999))
}

func TestTimeRangeApproxEqual(t *testing.T) {
	a := TimeRange{Start: 0, End: 1000}
	b := TimeRange{Start: 1e-8, End: 1000 + 1e-8}
	assert.True(t, a.ApproxEqual(b))

	c := TimeRange{Start: 0, End: 1000.1}
	assert.False(t, a.ApproxEqual(c))

	// Scales with magnitude: the same absolute drift that passes at a
	// 1000-tick span fails at a 1-tick span.
	d := TimeRange{Start: 0, End: 1}
	e := TimeRange{Start: 1e-8, End: 1 + 1e-8}
	assert.False(t, d.ApproxEqual(e))
}

func TestClampTo(t *testing.T) {
	bounds := TimeRange{Start: 0, End: 1000}

	inside := TimeRange{Start: 100, End: 300}
	assert.Equal(t, inside, inside.clampTo(bounds))

	left := TimeRange{Start: -50, End: 150}
	assert.Equal(t, TimeRange{Start: 0, End: 200}, left.clampTo(bounds))

	right := TimeRange{Start: 900, End: 1100}
	assert.Equal(t, TimeRange{Start: 800, End: 1000}, right.clampTo(bounds))

	wider := TimeRange{Start: -500, End: 2000}
	assert.Equal(t, bounds, wider.clampTo(bounds))
}

func TestViewportZoomed(t *testing.T) {
	vp := Viewport{
		Total:   TimeRange{Start: 0, End: 1000},
		Visible: TimeRange{Start: 0, End: 1000},
	}

	in, ok := vp.zoomed(0.5)
	require.True(t, ok)
	assert.Equal(t, TimeRange{Start: 250, End: 750}, in)

	vp.Visible = in
	out, ok := vp.zoomed(2)
	require.True(t, ok)
	assert.Equal(t, vp.Total, out, "zooming back out snaps to the total extent")
}

func TestViewportZoomedClampsEndsIndependently(t *testing.T) {
	vp := Viewport{
		Total:   TimeRange{Start: 0, End: 1000},
		Visible: TimeRange{Start: 0, End: 200},
	}
	// Midpoint 100, doubled span would reach -100; only the left end
	// clamps, the window does not slide right to preserve its span.
	out, ok := vp.zoomed(2)
	require.True(t, ok)
	assert.Equal(t, TimeRange{Start: 0, End: 300}, out)
}

func TestViewportZoomedSpanFloor(t *testing.T) {
	vp := Viewport{
		Total:   TimeRange{Start: 0, End: 1000},
		Visible: TimeRange{Start: 0, End: 1.2},
	}
	_, ok := vp.zoomed(0.5)
	assert.False(t, ok)
}

func TestViewportPanned(t *testing.T) {
	vp := Viewport{
		Total:   TimeRange{Start: 0, End: 1000},
		Visible: TimeRange{Start: 400, End: 600},
	}
	assert.Equal(t, TimeRange{Start: 420, End: 620}, vp.panned(1, 0.1))
	assert.Equal(t, TimeRange{Start: 380, End: 580}, vp.panned(-1, 0.1))

	vp.Visible = TimeRange{Start: 900, End: 1000}
	got := vp.panned(1, 0.1)
	assert.Equal(t, TimeRange{Start: 900, End: 1000}, got, "pan at the edge keeps the span")
}
