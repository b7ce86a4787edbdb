package wave

import (
	"fmt"
	"math"
	"strconv"
)

// minCellsPerTick is how much horizontal room a labelled major tick wants.
const minCellsPerTick = 12

// minorSubdivisions is the fixed number of slots between two major ticks.
const minorSubdivisions = 5

// TimeUnit is the display unit chosen for ruler labels. The base tick is a
// nanosecond; sub-unit spans fall back to picoseconds.
type TimeUnit struct {
	Suffix string
	Scale  float64 // ticks per displayed unit
}

var timeUnits = []TimeUnit{
	{Suffix: "ps", Scale: 1e-3},
	{Suffix: "ns", Scale: 1},
	{Suffix: "us", Scale: 1e3},
	{Suffix: "ms", Scale: 1e6},
	{Suffix: "s", Scale: 1e9},
}

// Tick is one ruler tick, positioned in time and in surface cells.
type Tick struct {
	Time  float64
	X     int
	Label string // empty for minor ticks
}

// TickPlan is the layout for one ruler paint: the chosen nice interval, the
// display unit, and the resulting major and minor ticks.
type TickPlan struct {
	Interval float64
	Unit     TimeUnit
	Major    []Tick
	Minor    []Tick
}

// PlanTicks computes a ruler layout for the visible range across width
// cells. The interval is snapped to the nice {1,2,5}x10^k family so labels
// land on round numbers regardless of zoom level.
func PlanTicks(visible TimeRange, width int) TickPlan {
	span := visible.Span()
	if width <= 0 || span <= 0 {
		return TickPlan{}
	}

	targetTicks := width / minCellsPerTick
	if targetTicks < 1 {
		targetTicks = 1
	}
	interval := niceInterval(span / float64(targetTicks))
	unit := unitFor(interval)

	plan := TickPlan{Interval: interval, Unit: unit}

	// First major tick at or after the left edge.
	first := math.Ceil(visible.Start/interval-rangeEps) * interval
	minorStep := interval / minorSubdivisions

	// Walk minor steps from one major slot before the window so minors
	// left of the first major are not lost.
	for t := first - interval; t < visible.End+interval*rangeEps; t += minorStep {
		if t < visible.Start-interval*rangeEps {
			continue
		}
		x := xForTime(t, visible, width)
		if x < 0 || x >= width {
			continue
		}
		if isMajor(t, interval) {
			// Snap the label to the interval grid; t itself carries
			// drift accumulated by the minor-step walk.
			lt := math.Round(t/interval) * interval
			plan.Major = append(plan.Major, Tick{Time: t, X: x, Label: formatTime(lt, unit)})
		} else {
			plan.Minor = append(plan.Minor, Tick{Time: t, X: x})
		}
	}
	return plan
}

// niceInterval snaps a rough interval to the nearest value from the
// {1, 2, 5} x 10^k sequence.
func niceInterval(rough float64) float64 {
	if rough <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	norm := rough / mag
	switch {
	case norm < 1.5:
		return 1 * mag
	case norm < 3.5:
		return 2 * mag
	case norm < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// unitFor picks the display unit that keeps the interval's number readable
// (roughly in [1, 1000) displayed units).
func unitFor(interval float64) TimeUnit {
	chosen := timeUnits[0]
	for _, u := range timeUnits {
		if interval >= u.Scale {
			chosen = u
		}
	}
	return chosen
}

// isMajor reports whether t sits on a multiple of the major interval, under
// the relative epsilon so floating point drift from the minor walk cannot
// miss a coincidence.
func isMajor(t, interval float64) bool {
	r := math.Abs(math.Mod(t, interval))
	return r < interval*1e-6 || interval-r < interval*1e-6
}

// xForTime is the linear time-to-cell mapping shared by every surface.
func xForTime(t float64, visible TimeRange, width int) int {
	return int((t - visible.Start) / visible.Span() * float64(width))
}

// timeForX inverts xForTime for gesture handling.
func timeForX(x int, visible TimeRange, width int) float64 {
	if width <= 0 {
		return visible.Start
	}
	return visible.Start + float64(x)/float64(width)*visible.Span()
}

// FormatTimeLabel renders an absolute time with an auto-selected unit, for
// status lines and notices.
func FormatTimeLabel(t float64) string {
	return formatTime(t, unitFor(math.Abs(t)))
}

// formatTime renders a tick label in the plan's unit, trimming trailing
// zeros so "250ns" never shows as "250.000ns".
func formatTime(t float64, unit TimeUnit) string {
	v := t / unit.Scale
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) > 9 {
		s = fmt.Sprintf("%.3g", v)
	}
	return s + unit.Suffix
}
