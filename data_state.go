package main

import (
	"sort"

	"github.com/andareed/siftly-wave/wave"
)

type dataState struct {
	rows []*wave.Row
	// rowSpecs[i] is the add spec that recreates rows[i], kept in lockstep
	// for session snapshots.
	rowSpecs []string
	markers  []float64
}

func (d *dataState) addMarker(t float64) {
	for _, m := range d.markers {
		if m == t {
			return
		}
	}
	d.markers = append(d.markers, t)
	sort.Float64s(d.markers)
}

func (d *dataState) removeMarker(t float64) {
	for i, m := range d.markers {
		if m == t {
			d.markers = append(d.markers[:i], d.markers[i+1:]...)
			return
		}
	}
}

// nextMarker returns the first marker strictly after t.
func (d *dataState) nextMarker(t float64) (float64, bool) {
	for _, m := range d.markers {
		if m > t {
			return m, true
		}
	}
	return 0, false
}

// prevMarker returns the last marker strictly before t.
func (d *dataState) prevMarker(t float64) (float64, bool) {
	for i := len(d.markers) - 1; i >= 0; i-- {
		if d.markers[i] < t {
			return d.markers[i], true
		}
	}
	return 0, false
}

func (d *dataState) markersIn(rng wave.TimeRange) []float64 {
	var out []float64
	for _, m := range d.markers {
		if rng.Contains(m) {
			out = append(out, m)
		}
	}
	return out
}
