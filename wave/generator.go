package wave

import (
	"math"

	"github.com/andareed/siftly-wave/logging"
)

// ChangeSource produces an ordered sequence of value changes for one signal.
//
// Contract: after Begin(start), the first Next yields the change in effect
// at start (its time is <= start, carry-forward), and every later yield is
// strictly increasing in time. Consumers stop once a yielded time passes the
// right edge of their window; one extra look-ahead element is allowed so
// boundary segments can be drawn in full.
type ChangeSource interface {
	Begin(start float64)
	Next() (Change, bool)
}

// posMod computes x mod m with a non-negative result, which the period math
// needs even when offsets push times negative.
func posMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// ClockSource generates an infinite two-level clock. The value is 0 on
// [k*Period+Offset, k*Period+Offset+LowPeriod) and 1 for the rest of each
// period.
type ClockSource struct {
	Period    float64
	LowPeriod float64
	Offset    float64

	cursor float64 // time of the next change to yield
	level  uint8   // level that begins at cursor
}

// NewClockSource validates the shape parameters. A non-positive period is
// corrected to 1 with a warning; LowPeriod is clamped into [0, Period).
func NewClockSource(period, lowPeriod, offset float64) *ClockSource {
	if period <= 0 {
		logging.Warnf("clock: non-positive period %v corrected to 1", period)
		period = 1
	}
	if lowPeriod < 0 {
		lowPeriod = 0
	}
	if lowPeriod >= period {
		lowPeriod = period
	}
	return &ClockSource{Period: period, LowPeriod: lowPeriod, Offset: offset}
}

func (c *ClockSource) Begin(start float64) {
	// Start of the period containing start, via positive modulo.
	phase := posMod(start-c.Offset, c.Period)
	periodStart := start - phase
	if phase < c.LowPeriod {
		c.cursor = periodStart
		c.level = 0
	} else {
		c.cursor = periodStart + c.LowPeriod
		c.level = 1
	}
}

func (c *ClockSource) Next() (Change, bool) {
	ch := Change{Time: c.cursor, Value: BitValue(c.level)}
	// Advance past the current segment. A zero-length follow-up segment
	// (LowPeriod of 0, or a full-period low) is skipped so times stay
	// strictly increasing.
	for {
		if c.level == 0 {
			c.cursor += c.LowPeriod
		} else {
			c.cursor += c.Period - c.LowPeriod
		}
		c.level = 1 - c.level
		next := c.LowPeriod
		if c.level == 1 {
			next = c.Period - c.LowPeriod
		}
		if next > 0 {
			break
		}
	}
	return ch, true
}

// CounterSource generates an infinite wrapping counter: the value steps by
// Increment every IncrementPeriod ticks and wraps modulo IncrementCount
// steps.
type CounterSource struct {
	StartValue      uint64
	Increment       uint64
	IncrementCount  uint64
	IncrementPeriod float64

	cursor float64
	step   uint64
}

// NewCounterSource validates parameters. A non-positive increment period is
// corrected to 1 with a warning rather than rejected.
func NewCounterSource(startValue, increment, incrementCount uint64, incrementPeriod float64) *CounterSource {
	if incrementPeriod <= 0 {
		logging.Warnf("counter: non-positive increment period %v corrected to 1", incrementPeriod)
		incrementPeriod = 1
	}
	if incrementCount == 0 {
		incrementCount = 1
	}
	return &CounterSource{
		StartValue:      startValue,
		Increment:       increment,
		IncrementCount:  incrementCount,
		IncrementPeriod: incrementPeriod,
	}
}

func (c *CounterSource) valueAt(step uint64) Value {
	v := c.StartValue + c.Increment*(step%c.IncrementCount)
	return VectorValue(formatBinary(v))
}

func (c *CounterSource) Begin(start float64) {
	k := math.Floor(start / c.IncrementPeriod)
	if k < 0 {
		k = 0
	}
	c.step = uint64(k)
	c.cursor = k * c.IncrementPeriod
}

func (c *CounterSource) Next() (Change, bool) {
	ch := Change{Time: c.cursor, Value: c.valueAt(c.step)}
	c.step++
	c.cursor += c.IncrementPeriod
	return ch, true
}

// FiniteSource adapts an externally fetched, ascending list of changes for a
// fixed query window. It exhausts at the last supplied change. When the
// supplied list starts after the query start, an absent-value lead-in is
// synthesized so the carry-forward contract still holds.
type FiniteSource struct {
	changes []Change

	idx     int
	leadIn  bool
	leadInT float64
}

func NewFiniteSource(changes []Change) *FiniteSource {
	return &FiniteSource{changes: changes}
}

func (f *FiniteSource) Begin(start float64) {
	f.idx = 0
	f.leadIn = false
	// Skip to the last change at or before start; everything earlier is
	// superseded by the carry-forward value.
	for f.idx+1 < len(f.changes) && f.changes[f.idx+1].Time <= start {
		f.idx++
	}
	if len(f.changes) == 0 || f.changes[0].Time > start {
		f.leadIn = true
		f.leadInT = start
		f.idx = 0
	}
}

func (f *FiniteSource) Next() (Change, bool) {
	if f.leadIn {
		f.leadIn = false
		return Change{Time: f.leadInT, Value: AbsentValue()}, true
	}
	if f.idx >= len(f.changes) {
		return Change{}, false
	}
	ch := f.changes[f.idx]
	f.idx++
	return ch, true
}

func formatBinary(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [64]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v&1)
		v >>= 1
	}
	return string(buf[i:])
}
