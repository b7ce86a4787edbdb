package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceSetAndClip(t *testing.T) {
	s := NewSurface(4, 2)
	s.Set(1, 0, 'a', StyleLabel)
	assert.Equal(t, 'a', s.RuneAt(1, 0))
	assert.Equal(t, StyleLabel, s.StyleIDAt(1, 0))

	// Out-of-bounds writes are dropped, not panics.
	s.Set(-1, 0, 'x', StyleLabel)
	s.Set(4, 0, 'x', StyleLabel)
	s.Set(0, 2, 'x', StyleLabel)
	assert.Equal(t, " a  ", s.Line(0))
	assert.Equal(t, "    ", s.Line(1))
}

func TestSurfaceLines(t *testing.T) {
	s := NewSurface(6, 2)
	s.HLine(1, 4, 0, '─', StyleWaveHigh)
	s.VLine(2, 0, 1, '│', StyleWaveLow)
	s.Text(3, 1, "abcdef", StyleLabel)

	assert.Equal(t, " ─│── ", s.Line(0))
	assert.Equal(t, "  │abc", s.Line(1), "text clips at the right edge")
}

func TestSurfaceResize(t *testing.T) {
	s := NewSurface(4, 2)
	s.Set(0, 0, 'a', StyleLabel)
	assert.False(t, s.Resize(4, 2))
	assert.Equal(t, 'a', s.RuneAt(0, 0))

	assert.True(t, s.Resize(8, 3))
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, ' ', s.RuneAt(0, 0))
}

func TestSurfaceStyleAtKeepsRune(t *testing.T) {
	s := NewSurface(4, 1)
	s.Set(1, 0, 'a', StyleLabel)
	s.StyleAt(1, 0, StyleSelection)
	assert.Equal(t, 'a', s.RuneAt(1, 0))
	assert.Equal(t, StyleSelection, s.StyleIDAt(1, 0))
}
