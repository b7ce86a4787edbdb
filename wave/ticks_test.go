package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNiceInterval(t *testing.T) {
	assert.Equal(t, 200.0, niceInterval(166.7))
	assert.Equal(t, 100.0, niceInterval(120))
	assert.Equal(t, 500.0, niceInterval(400))
	assert.Equal(t, 1000.0, niceInterval(900))
	assert.InDelta(t, 0.05, niceInterval(0.0667), 1e-12)
	assert.Equal(t, 1.0, niceInterval(0))
}

func TestUnitFor(t *testing.T) {
	assert.Equal(t, "ps", unitFor(0.05).Suffix)
	assert.Equal(t, "ns", unitFor(200).Suffix)
	assert.Equal(t, "us", unitFor(5e3).Suffix)
	assert.Equal(t, "ms", unitFor(2e6).Suffix)
	assert.Equal(t, "s", unitFor(1e9).Suffix)
}

func TestPlanTicks(t *testing.T) {
	plan := PlanTicks(TimeRange{Start: 0, End: 1000}, 80)

	assert.Equal(t, 200.0, plan.Interval)
	assert.Equal(t, "ns", plan.Unit.Suffix)

	require.Len(t, plan.Major, 5)
	labels := make([]string, len(plan.Major))
	for i, tick := range plan.Major {
		labels[i] = tick.Label
	}
	assert.Equal(t, []string{"0ns", "200ns", "400ns", "600ns", "800ns"}, labels)
	assert.Equal(t, 0, plan.Major[0].X)
	assert.Equal(t, 16, plan.Major[1].X)

	// Five slots per major interval, majors excluded.
	assert.Len(t, plan.Minor, 20)
	for _, tick := range plan.Minor {
		assert.Empty(t, tick.Label)
		assert.GreaterOrEqual(t, tick.X, 0)
		assert.Less(t, tick.X, 80)
	}
}

func TestPlanTicksSubUnitSpan(t *testing.T) {
	plan := PlanTicks(TimeRange{Start: 0, End: 0.4}, 80)

	assert.Equal(t, "ps", plan.Unit.Suffix)
	assert.InDelta(t, 0.05, plan.Interval, 1e-12)
	require.NotEmpty(t, plan.Major)
	assert.Equal(t, "0ps", plan.Major[0].Label, "labels snap to the grid despite walk drift")
	require.Greater(t, len(plan.Major), 1)
	assert.Equal(t, "50ps", plan.Major[1].Label)
}

func TestPlanTicksOffsetWindow(t *testing.T) {
	plan := PlanTicks(TimeRange{Start: 130, End: 1130}, 80)
	require.NotEmpty(t, plan.Major)
	assert.Equal(t, "200ns", plan.Major[0].Label, "first major lands at the first multiple inside the window")
}

func TestPlanTicksDegenerate(t *testing.T) {
	assert.Empty(t, PlanTicks(TimeRange{Start: 0, End: 1000}, 0).Major)
	assert.Empty(t, PlanTicks(TimeRange{}, 80).Major)
}

func TestXForTimeRoundTrip(t *testing.T) {
	visible := TimeRange{Start: 100, End: 1100}
	assert.Equal(t, 0, xForTime(100, visible, 80))
	assert.Equal(t, 40, xForTime(600, visible, 80))
	assert.InDelta(t, 600, timeForX(40, visible, 80), 1e-9)
	assert.Equal(t, 100.0, timeForX(5, visible, 0))
}

func TestFormatTimeLabel(t *testing.T) {
	assert.Equal(t, "250ns", FormatTimeLabel(250))
	assert.Equal(t, "1.5ms", FormatTimeLabel(1_500_000))
	assert.Equal(t, "500ps", FormatTimeLabel(0.5))
	assert.Equal(t, "2s", FormatTimeLabel(2e9))
}
