package trace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Var is a leaf in the signal hierarchy; Ref keys FetchChanges.
type Var struct {
	Name  string
	Ref   uint32
	Width int
}

// Scope is one level of the signal hierarchy tree.
type Scope struct {
	Name   string
	Ref    uint32
	Vars   []Var
	Scopes []*Scope
}

// Provider is the data-retrieval service: it holds parsed waveforms keyed
// by file id and answers ordered change queries and hierarchy lookups.
// Queries are read-only and never retain references into caller state.
type Provider struct {
	files map[string]*Waveform
}

func NewProvider() *Provider {
	return &Provider{files: map[string]*Waveform{}}
}

// Open parses a WCP file from disk and registers it under its base name,
// which becomes the file id for all later queries.
func (p *Provider) Open(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "open trace file")
	}
	defer f.Close()

	wf, err := ParseWCP(f)
	if err != nil {
		return "", errors.Wrapf(err, "parse %s", path)
	}
	id := filepath.Base(path)
	p.files[id] = wf
	return id, nil
}

// Register installs an already parsed waveform, mostly for tests.
func (p *Provider) Register(id string, wf *Waveform) { p.files[id] = wf }

func (p *Provider) file(fileID string) (*Waveform, error) {
	wf, ok := p.files[fileID]
	if !ok {
		return nil, errors.Errorf("file not found: %s", fileID)
	}
	return wf, nil
}

// LastTime reports the time of the file's final change, which the viewer
// uses as the total extent.
func (p *Provider) LastTime(fileID string) (float64, error) {
	wf, err := p.file(fileID)
	if err != nil {
		return 0, err
	}
	return wf.LastTime(), nil
}

// FetchChanges returns the signal's changes ordered by time: the latest
// change at or before start (the value in effect when the window opens),
// then everything in (start, end].
func (p *Provider) FetchChanges(fileID string, ref uint32, start, end float64) ([]Change, error) {
	wf, err := p.file(fileID)
	if err != nil {
		return nil, err
	}
	if int(ref) >= len(wf.Signals) {
		return nil, errors.Errorf("invalid signal reference: %d", ref)
	}
	cs := wf.changes[ref]

	// First index with time > start; the element before it is the
	// carry-in.
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Time > start })
	lo := i
	if lo > 0 {
		lo--
	}
	hi := sort.Search(len(cs), func(i int) bool { return cs[i].Time > end })

	out := make([]Change, hi-lo)
	copy(out, cs[lo:hi])
	return out, nil
}

// FetchHierarchy builds the scope tree from the declared signal paths.
// The shape matches what the viewer's selection tree consumes:
// {name, ref, vars, scopes} with a synthetic root.
func (p *Provider) FetchHierarchy(fileID string) (*Scope, error) {
	wf, err := p.file(fileID)
	if err != nil {
		return nil, err
	}

	root := &Scope{Name: "root"}
	byPath := map[string]*Scope{"": root}
	nextScopeRef := uint32(0)

	scopeFor := func(path string) *Scope {
		if s, ok := byPath[path]; ok {
			return s
		}
		cur := root
		curPath := ""
		for _, part := range strings.Split(path, "/") {
			if part == "" {
				continue
			}
			if curPath == "" {
				curPath = part
			} else {
				curPath = curPath + "/" + part
			}
			s, ok := byPath[curPath]
			if !ok {
				nextScopeRef++
				s = &Scope{Name: part, Ref: nextScopeRef}
				cur.Scopes = append(cur.Scopes, s)
				byPath[curPath] = s
			}
			cur = s
		}
		return cur
	}

	for i, sig := range wf.Signals {
		dir, leaf := splitSignalPath(sig.Path)
		scope := scopeFor(dir)
		scope.Vars = append(scope.Vars, Var{Name: leaf, Ref: uint32(i), Width: sig.Width})
	}
	return root, nil
}

// ResolveVar finds a signal by its full path ("/top/clk" or "top/clk") and
// returns its reference. The viewer uses it to validate that a reference
// still exists before binding a row.
func (p *Provider) ResolveVar(fileID, path string) (Var, bool) {
	wf, err := p.file(fileID)
	if err != nil {
		return Var{}, false
	}
	norm := strings.Trim(path, "/")
	for i, sig := range wf.Signals {
		if strings.Trim(sig.Path, "/") == norm || sig.Name == path {
			return Var{Name: sig.Name, Ref: uint32(i), Width: sig.Width}, true
		}
	}
	return Var{}, false
}

// SignalWidth reports the declared width for a reference.
func (p *Provider) SignalWidth(fileID string, ref uint32) (int, error) {
	wf, err := p.file(fileID)
	if err != nil {
		return 0, err
	}
	if int(ref) >= len(wf.Signals) {
		return 0, errors.Errorf("invalid signal reference: %d", ref)
	}
	return wf.Signals[ref].Width, nil
}

func splitSignalPath(path string) (dir, leaf string) {
	trimmed := strings.Trim(path, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[:idx], trimmed[idx+1:]
	}
	return "", trimmed
}
