package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) (*Provider, string) {
	t.Helper()
	wf := parseSample(t)
	p := NewProvider()
	p.Register("sample.wcp", wf)
	return p, "sample.wcp"
}

func TestProviderOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.wcp")
	require.NoError(t, os.WriteFile(path, []byte(sampleWCP), 0o644))

	p := NewProvider()
	id, err := p.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "trace.wcp", id)

	last, err := p.LastTime(id)
	require.NoError(t, err)
	assert.Equal(t, 15.0, last)

	_, err = p.Open(filepath.Join(dir, "missing.wcp"))
	assert.Error(t, err)
}

func TestProviderUnknownFile(t *testing.T) {
	p := NewProvider()
	_, err := p.LastTime("nope.wcp")
	assert.Error(t, err)
	_, err = p.FetchChanges("nope.wcp", 0, 0, 10)
	assert.Error(t, err)
	_, ok := p.ResolveVar("nope.wcp", "clk")
	assert.False(t, ok)
}

func TestFetchChangesIncludesCarryIn(t *testing.T) {
	p, id := newTestProvider(t)

	// clk changes at 0, 5, 10, 15. A window opening at 7 needs the
	// change at 5 to know the value in effect at the left edge.
	got, err := p.FetchChanges(id, 0, 7, 12)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 5.0, got[0].Time)
	assert.Equal(t, 10.0, got[1].Time)
}

func TestFetchChangesWindowEdges(t *testing.T) {
	p, id := newTestProvider(t)

	// Start exactly on a change keeps that change as the carry-in.
	got, err := p.FetchChanges(id, 0, 5, 15)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 5.0, got[0].Time)
	assert.Equal(t, 15.0, got[2].Time, "end is inclusive")

	// A window before all data is empty.
	got, err = p.FetchChanges(id, 1, 20, 30)
	require.NoError(t, err)
	require.Len(t, got, 1, "only the carry-in survives past the last change")
	assert.Equal(t, 10.0, got[0].Time)
}

func TestFetchChangesInvalidRef(t *testing.T) {
	p, id := newTestProvider(t)
	_, err := p.FetchChanges(id, 99, 0, 10)
	assert.Error(t, err)
}

func TestFetchChangesDoesNotAliasInternalState(t *testing.T) {
	p, id := newTestProvider(t)
	got, err := p.FetchChanges(id, 0, 0, 15)
	require.NoError(t, err)
	got[0].Value = "mutated"

	again, err := p.FetchChanges(id, 0, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, "0", again[0].Value)
}

func TestFetchHierarchy(t *testing.T) {
	p, id := newTestProvider(t)

	root, err := p.FetchHierarchy(id)
	require.NoError(t, err)
	require.Len(t, root.Scopes, 1)

	top := root.Scopes[0]
	assert.Equal(t, "top", top.Name)
	require.Len(t, top.Vars, 2)
	assert.Equal(t, "clk", top.Vars[0].Name)
	assert.Equal(t, "rst", top.Vars[1].Name)

	require.Len(t, top.Scopes, 1)
	bus := top.Scopes[0]
	assert.Equal(t, "bus", bus.Name)
	require.Len(t, bus.Vars, 1)
	assert.Equal(t, Var{Name: "data", Ref: 1, Width: 8}, bus.Vars[0])
}

func TestResolveVar(t *testing.T) {
	p, id := newTestProvider(t)

	v, ok := p.ResolveVar(id, "/top/bus/data")
	require.True(t, ok)
	assert.Equal(t, Var{Name: "data", Ref: 1, Width: 8}, v)

	v, ok = p.ResolveVar(id, "top/clk")
	require.True(t, ok)
	assert.Equal(t, uint32(0), v.Ref)

	v, ok = p.ResolveVar(id, "rst")
	require.True(t, ok, "short name resolves too")
	assert.Equal(t, uint32(2), v.Ref)

	_, ok = p.ResolveVar(id, "/top/nope")
	assert.False(t, ok)
}

func TestSignalWidth(t *testing.T) {
	p, id := newTestProvider(t)

	w, err := p.SignalWidth(id, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, w)

	_, err = p.SignalWidth(id, 99)
	assert.Error(t, err)
}

func TestProviderRegisterOverwrites(t *testing.T) {
	p, id := newTestProvider(t)

	const doc = `HEADER
version: 2.0
END_HEADER
SIGNALS
x: /x
END_SIGNALS
WAVEFORM
3: x=1
END_WAVEFORM
`
	wf, err := ParseWCP(strings.NewReader(doc))
	require.NoError(t, err)
	p.Register(id, wf)

	last, err := p.LastTime(id)
	require.NoError(t, err)
	assert.Equal(t, 3.0, last)
}
