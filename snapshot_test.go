package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-wave/wave"
)

func TestSessionRoundtrip(t *testing.T) {
	m := newTestModel(t)
	m.addSignalSpec("clock:10")
	m.addSignalSpec("counter:0,1,16,2")
	m.addSignalSpec("top/clk")
	m.data.addMarker(5)
	m.data.addMarker(12)
	require.NoError(t, m.coord.SetVisible("keys", 2, 9))

	path := filepath.Join(t.TempDir(), "view.sfwave.json")
	require.NoError(t, SaveSession(m, path))

	restored := newTestModel(t)
	require.NoError(t, LoadSession(restored, path))

	assert.Equal(t, m.data.rowSpecs, restored.data.rowSpecs)
	require.Len(t, restored.data.rows, 3)
	assert.Equal(t, []float64{5, 12}, restored.data.markers)
	assert.Equal(t, wave.TimeRange{Start: 2, End: 9}, restored.coord.VisibleRange())
}

func TestLoadSessionIssuesStartupFetch(t *testing.T) {
	donor := newTestModel(t)
	donor.addSignalSpec("top/clk")
	require.NoError(t, donor.coord.SetVisible("keys", 2, 9))

	path := filepath.Join(t.TempDir(), "view.sfwave.json")
	require.NoError(t, SaveSession(donor, path))

	m := newTestModel(t)
	require.NoError(t, LoadSession(m, path))
	require.Len(t, m.data.rows, 1)

	cmd := m.Init()
	require.NotNil(t, cmd, "restored sessions fetch their data on startup")

	msg, isLoaded := cmd().(changesLoadedMsg)
	require.True(t, isLoaded)
	require.NoError(t, msg.err)
	m.handleChangesLoaded(msg)

	v, ok := m.data.rows[0].ValueAt(7)
	require.True(t, ok)
	assert.Equal(t, uint8(1), v.Level())
}

func TestLoadSessionRejectsOtherFile(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.coord.SetVisible("keys", 2, 9))

	path := filepath.Join(t.TempDir(), "view.sfwave.json")
	require.NoError(t, SaveSession(m, path))

	other := newTestModel(t)
	other.fileID = "other.wcp"
	err := LoadSession(other, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recorded against")
	assert.Empty(t, other.data.rows)
}

func TestLoadSessionRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.sfwave.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99}`), 0o600))

	m := newTestModel(t)
	err := LoadSession(m, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestLoadSessionMissingFile(t *testing.T) {
	m := newTestModel(t)
	assert.Error(t, LoadSession(m, filepath.Join(t.TempDir(), "absent.json")))
}

func TestSessionPath(t *testing.T) {
	assert.Equal(t, "/tmp/trace.wcp.sfwave.json", sessionPath("/tmp/trace.wcp"))
}
