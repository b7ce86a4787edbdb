package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/andareed/siftly-wave/logging"
)

// --- Wire format ---

const snapshotVersion = 1

type rowDTO struct {
	Spec string `json:"spec"` // signal path or generator spec, replayable
}

type snapshotDTO struct {
	Version  int       `json:"version"`
	File     string    `json:"file"`
	Rows     []rowDTO  `json:"rows"`
	Markers  []float64 `json:"markers"`
	Visible  []float64 `json:"visible"` // [start, end]
	Note     string    `json:"note,omitempty"`
}

// --- Public API ---

// SaveSession writes the view state (shown signals, markers, window) to a
// JSON sidecar so a later run can pick up where this one left off.
func SaveSession(m *model, path string) error {
	vis := m.coord.VisibleRange()
	dto := snapshotDTO{
		Version: snapshotVersion,
		File:    m.fileID,
		Rows:    make([]rowDTO, 0, len(m.data.rows)),
		Markers: append([]float64(nil), m.data.markers...),
		Visible: []float64{vis.Start, vis.End},
	}
	for _, spec := range m.data.rowSpecs {
		dto.Rows = append(dto.Rows, rowDTO{Spec: spec})
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	logging.Infof("session saved to %s (%d rows)", path, len(dto.Rows))
	return nil
}

// LoadSession replays a saved session into m: rows are re-added through the
// normal add path, then the markers and window are restored.
func LoadSession(m *model, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	if dto.Version != snapshotVersion {
		return fmt.Errorf("session version %d not supported (want %d)", dto.Version, snapshotVersion)
	}
	if dto.File != "" && dto.File != m.fileID {
		return fmt.Errorf("session was recorded against %q, not %q", dto.File, m.fileID)
	}

	for _, r := range dto.Rows {
		m.addSignalSpec(r.Spec)
	}
	for _, t := range dto.Markers {
		m.data.addMarker(t)
	}
	m.ruler.SetMarkers(m.data.markers)

	if len(dto.Visible) == 2 {
		if err := m.coord.SetVisible("keys", dto.Visible[0], dto.Visible[1]); err != nil {
			logging.Warnf("session window %v rejected: %v", dto.Visible, err)
		}
	}
	// The replay discards the add commands, so drop their pending marks
	// and leave the first fetch batch to Init.
	m.resetPendingFetches()
	m.ui.noticeMsg = ""
	logging.Infof("session loaded from %s (%d rows)", path, len(dto.Rows))
	return nil
}

// sessionPath is the sidecar file next to the trace.
func sessionPath(tracePath string) string {
	return tracePath + ".sfwave.json"
}
