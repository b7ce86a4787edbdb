package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/logging"
	"github.com/andareed/siftly-wave/wave"
)

// addSignalSpec appends a row for the given entry: a hierarchical signal
// path from the open trace, or a generator spec.
func (m *model) addSignalSpec(spec string) tea.Cmd {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil
	}

	switch {
	case strings.HasPrefix(spec, "clock:"):
		return m.addClock(strings.TrimPrefix(spec, "clock:"))
	case strings.HasPrefix(spec, "counter:"):
		return m.addCounter(strings.TrimPrefix(spec, "counter:"))
	default:
		return m.addTraceSignal(spec)
	}
}

// addClock parses <period>[,<low>[,<offset>]] and adds a square-wave row.
// The low period defaults to half the period.
func (m *model) addClock(args string) tea.Cmd {
	fields := strings.Split(args, ",")
	if len(fields) < 1 || len(fields) > 3 {
		return m.startNotice("clock wants <period>[,<low>[,<offset>]]", noticeWarn)
	}
	nums, err := parseFloats(fields)
	if err != nil {
		return m.startNotice("Invalid clock spec: "+err.Error(), noticeWarn)
	}
	period := nums[0]
	low := period / 2
	offset := 0.0
	if len(nums) > 1 {
		low = nums[1]
	}
	if len(nums) > 2 {
		offset = nums[2]
	}

	src := wave.NewClockSource(period, low, offset)
	name := fmt.Sprintf("clock %s", wave.FormatTimeLabel(period))
	row := wave.NewSyntheticRow(m.rowID("clock"), name, wave.RowBit, src,
		len(m.data.rows), m.painter, m.waveWidth, m.cfg.RowHeight)
	spec := fmt.Sprintf("clock:%g,%g,%g", period, low, offset)
	logging.Infof("added synthetic clock period=%g low=%g offset=%g", period, low, offset)
	return tea.Batch(m.addRow(row, spec), m.startNotice("Added "+name, noticeSuccess))
}

// addCounter parses <start>,<inc>,<count>,<period> and adds a wrapping
// counter row.
func (m *model) addCounter(args string) tea.Cmd {
	fields := strings.Split(args, ",")
	if len(fields) != 4 {
		return m.startNotice("counter wants <start>,<inc>,<count>,<period>", noticeWarn)
	}
	start, err1 := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 64)
	inc, err2 := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 64)
	count, err3 := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 64)
	period, err4 := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return m.startNotice("Invalid counter spec", noticeWarn)
	}

	src := wave.NewCounterSource(start, inc, count, period)
	name := fmt.Sprintf("counter %d+%d", start, inc)
	row := wave.NewSyntheticRow(m.rowID("counter"), name, wave.RowVector, src,
		len(m.data.rows), m.painter, m.waveWidth, m.cfg.RowHeight)
	spec := fmt.Sprintf("counter:%d,%d,%d,%g", start, inc, count, period)
	logging.Infof("added synthetic counter start=%d inc=%d count=%d period=%g", start, inc, count, period)
	return tea.Batch(m.addRow(row, spec), m.startNotice("Added "+name, noticeSuccess))
}

func (m *model) addTraceSignal(path string) tea.Cmd {
	if m.fileID == "" {
		return m.startNotice("No trace file open", noticeWarn)
	}
	v, ok := m.provider.ResolveVar(m.fileID, path)
	if !ok {
		return m.startNotice(fmt.Sprintf("No signal %q in %s", path, m.fileID), noticeWarn)
	}
	for _, r := range m.data.rows {
		if r.IsFetched() && r.Ref == v.Ref {
			return m.startNotice(v.Name+" is already shown", noticeInfo)
		}
	}

	kind := wave.RowBit
	if v.Width > 1 {
		kind = wave.RowVector
	}
	row := wave.NewFetchedRow(m.rowID("sig"), v.Name, v.Ref, kind,
		len(m.data.rows), m.painter, m.waveWidth, m.cfg.RowHeight)
	logging.Infof("added trace signal %s (ref=%d width=%d)", v.Name, v.Ref, v.Width)
	return tea.Batch(m.addRow(row, path), m.startNotice("Added "+v.Name, noticeSuccess))
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", strings.TrimSpace(f))
		}
		out[i] = v
	}
	return out, nil
}
