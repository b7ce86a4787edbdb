package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticRowPaintsImmediately(t *testing.T) {
	c := NewCoordinator()
	p := NewPainter(0)
	row := NewSyntheticRow("r-0", "clk", RowBit, NewClockSource(200, 100, 0), 0, p, 100, 2)
	c.Attach(row)
	c.SetTotal(TimeRange{Start: 0, End: 1000})

	_, ok := row.WantsFetch()
	assert.False(t, ok, "synthetic rows never fetch")
	assert.Equal(t, '─', row.Surface().RuneAt(5, 1))
}

func TestFetchedRowFetchLifecycle(t *testing.T) {
	c := NewCoordinator()
	p := NewPainter(0)
	row := NewFetchedRow("r-0", "sig", 3, RowBit, 0, p, 100, 2)
	c.Attach(row)
	c.SetTotal(TimeRange{Start: 0, End: 1000})

	rng, ok := row.WantsFetch()
	require.True(t, ok)
	assert.Equal(t, TimeRange{Start: 0, End: 1000}, rng)

	// The issued request is remembered; polling again does not repeat it.
	_, ok = row.WantsFetch()
	assert.False(t, ok)

	row.DeliverChanges(rng, []Change{{Time: 0, Value: BitValue(1)}})
	assert.Equal(t, '─', row.Surface().RuneAt(50, 0))

	// Satisfied range asks for nothing more.
	_, ok = row.WantsFetch()
	assert.False(t, ok)
}

func TestFetchedRowResetFetch(t *testing.T) {
	c := NewCoordinator()
	p := NewPainter(0)
	row := NewFetchedRow("r-0", "sig", 3, RowBit, 0, p, 100, 2)
	c.Attach(row)
	c.SetTotal(TimeRange{Start: 0, End: 1000})

	first, ok := row.WantsFetch()
	require.True(t, ok)
	_, ok = row.WantsFetch()
	require.False(t, ok, "range remembered as in flight")

	// A caller that dropped the request clears the mark and the row
	// reports the same range again.
	row.ResetFetch()
	again, ok := row.WantsFetch()
	require.True(t, ok)
	assert.Equal(t, first, again)
}

func TestFetchedRowStaleResponseDropped(t *testing.T) {
	c := NewCoordinator()
	p := NewPainter(0)
	row := NewFetchedRow("r-0", "sig", 3, RowBit, 0, p, 100, 2)
	c.Attach(row)
	c.SetTotal(TimeRange{Start: 0, End: 1000})

	first, ok := row.WantsFetch()
	require.True(t, ok)

	// The window moves before the response lands.
	require.NoError(t, c.SetVisible("keys", 0, 500))
	second, ok := row.WantsFetch()
	require.True(t, ok)
	assert.Equal(t, TimeRange{Start: 0, End: 500}, second)

	row.DeliverChanges(first, []Change{{Time: 0, Value: BitValue(1)}})
	_, have := row.ValueAt(10)
	assert.False(t, have, "stale response for the old window is discarded")

	row.DeliverChanges(second, []Change{{Time: 0, Value: BitValue(1)}})
	v, have := row.ValueAt(10)
	require.True(t, have)
	assert.Equal(t, BitValue(1), v)
}

func TestFetchedRowPendingPlaceholder(t *testing.T) {
	c := NewCoordinator()
	p := NewPainter(0)
	row := NewFetchedRow("r-0", "sig", 3, RowBit, 0, p, 40, 2)
	c.Attach(row)
	c.SetTotal(TimeRange{Start: 0, End: 1000})

	assert.Equal(t, '┄', row.Surface().RuneAt(5, 1), "no data yet paints the pending rail")
}

func TestRowValueAt(t *testing.T) {
	p := NewPainter(0)

	clk := NewSyntheticRow("r-0", "clk", RowBit, NewClockSource(2, 1, 0), 0, p, 40, 2)
	v, ok := clk.ValueAt(0.5)
	require.True(t, ok)
	assert.Equal(t, uint8(0), v.Level())
	v, ok = clk.ValueAt(1.5)
	require.True(t, ok)
	assert.Equal(t, uint8(1), v.Level())

	fetched := NewFetchedRow("r-1", "bus", 3, RowVector, 1, p, 40, 2)
	_, ok = fetched.ValueAt(10)
	assert.False(t, ok, "no data delivered yet")
}

func TestRowReorderAndResize(t *testing.T) {
	p := NewPainter(1)
	row := NewSyntheticRow("r-0", "clk", RowBit, NewClockSource(200, 100, 0), 0, p, 40, 2)
	row.ViewRangeChanged(Viewport{
		Total:   TimeRange{Start: 0, End: 1000},
		Visible: TimeRange{Start: 0, End: 1000},
	})

	assert.Equal(t, StyleDefault, row.Surface().StyleIDAt(0, 0))
	row.SetRowIndex(1)
	assert.Equal(t, 1, row.RowIndex())
	assert.Equal(t, StyleBandAlt, row.Surface().StyleIDAt(0, 0))

	row.Resize(60, 3)
	assert.Equal(t, 60, row.Surface().Width())
	assert.Equal(t, '─', row.Surface().RuneAt(2, 2), "repaint follows the resize")
}
