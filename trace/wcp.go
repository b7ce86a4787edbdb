// Package trace loads digital-signal trace files and serves ordered
// value-change queries and signal hierarchies to the viewer.
//
// The on-disk format is WCP, a simple text format for digital signals:
// a HEADER section (version/timescale/date), a SIGNALS section declaring
// one signal per line ("clk: /top/clk width:1 type:wire"), and a WAVEFORM
// section of change lines ("10: clk=1, data=00").
package trace

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Header carries the WCP file metadata.
type Header struct {
	Version   string
	Timescale string
	Date      string
}

// Signal is one declared signal: its short id, full hierarchical path,
// bit width and wire type.
type Signal struct {
	Name  string
	Path  string
	Width int
	Type  string
}

// Change is one recorded value change. Time is in ticks of the file's
// timescale; Value is the raw text from the file.
type Change struct {
	Time  float64
	Value string
}

// Waveform is a fully parsed trace: declarations plus per-signal change
// sequences, each ascending in time.
type Waveform struct {
	Header  Header
	Signals []Signal

	// changes[i] belongs to Signals[i].
	changes [][]Change
	lastT   float64
}

// LastTime is the time of the latest change in the file.
func (w *Waveform) LastTime() float64 { return w.lastT }

// ParseWCP reads a WCP document. A missing HEADER or empty SIGNALS section
// is an error; unknown keys and out-of-section lines are ignored, matching
// the format's lenient spirit.
func ParseWCP(r io.Reader) (*Waveform, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		haveHeader bool
		wf         = &Waveform{}
		section    string
		sigIndex   = map[string]int{}
	)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch line {
		case "HEADER", "SIGNALS", "WAVEFORM":
			section = line
			continue
		case "END_HEADER", "END_SIGNALS", "END_WAVEFORM":
			section = ""
			continue
		}

		switch section {
		case "HEADER":
			haveHeader = true
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			switch key {
			case "version":
				wf.Header.Version = value
			case "timescale":
				wf.Header.Timescale = value
			case "date":
				wf.Header.Date = value
			}

		case "SIGNALS":
			name, rest, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			name = strings.TrimSpace(name)
			parts := strings.Fields(rest)
			if len(parts) == 0 {
				continue
			}
			sig := Signal{Name: name, Path: parts[0], Width: 1, Type: "wire"}
			for _, part := range parts[1:] {
				k, v, ok := strings.Cut(part, ":")
				if !ok {
					continue
				}
				switch k {
				case "width":
					if n, err := strconv.Atoi(v); err == nil {
						sig.Width = n
					}
				case "type":
					sig.Type = v
				}
			}
			sigIndex[sig.Name] = len(wf.Signals)
			wf.Signals = append(wf.Signals, sig)
			wf.changes = append(wf.changes, nil)

		case "WAVEFORM":
			timeStr, values, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			t, err := strconv.ParseFloat(strings.TrimSpace(timeStr), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid time %q", strings.TrimSpace(timeStr))
			}
			if t > wf.lastT {
				wf.lastT = t
			}
			for _, chunk := range strings.Split(values, ",") {
				chunk = strings.TrimSpace(chunk)
				sigName, value, ok := strings.Cut(chunk, "=")
				if !ok {
					continue
				}
				sigName = strings.TrimSpace(sigName)
				value = strings.TrimSpace(value)
				idx, known := sigIndex[sigName]
				if !known {
					// Changes for undeclared signals are dropped,
					// not fatal.
					continue
				}
				wf.changes[idx] = append(wf.changes[idx], Change{Time: t, Value: value})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading wcp input")
	}

	if !haveHeader {
		return nil, errors.New("missing section: HEADER")
	}
	if len(wf.Signals) == 0 {
		return nil, errors.New("missing section: SIGNALS")
	}

	// Change lines may arrive out of order; each signal's sequence must
	// ascend strictly.
	for i := range wf.changes {
		cs := wf.changes[i]
		sort.SliceStable(cs, func(a, b int) bool { return cs[a].Time < cs[b].Time })
		wf.changes[i] = dedupeSameTime(cs)
	}
	return wf, nil
}

// dedupeSameTime keeps the last value when a signal changes twice at the
// same instant, preserving strict time ordering for consumers.
func dedupeSameTime(cs []Change) []Change {
	if len(cs) < 2 {
		return cs
	}
	out := cs[:1]
	for _, c := range cs[1:] {
		if c.Time == out[len(out)-1].Time {
			out[len(out)-1] = c
			continue
		}
		out = append(out, c)
	}
	return out
}
