package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/logging"
	"github.com/andareed/siftly-wave/trace"
	"github.com/andareed/siftly-wave/wave"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// autoAddLimit caps the number of signals shown on first open; the rest
// stay available through the add dialog.
const autoAddLimit = 8

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	demoFlag := flag.Bool("demo", false, "start with synthetic demo signals, no trace file")
	configFlag := flag.String("config", "", "path to config.toml")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("siftly-wave: started")

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	args := flag.Args()
	if len(args) < 1 && !*demoFlag {
		fmt.Println("Usage: sfwave [--debug debug.log] [--config config.toml] <file.wcp>")
		fmt.Println("       sfwave --demo")
		os.Exit(1)
	}

	var m *model
	if *demoFlag {
		m = newDemoModel(cfg)
	} else {
		m, err = newModelFromFile(cfg, args[0])
		if err != nil {
			log.Fatalf("failed to load %q: %v", args[0], err)
		}
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		logging.Warnf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

func newModelFromFile(cfg Config, path string) (*model, error) {
	provider := trace.NewProvider()
	fileID, err := provider.Open(path)
	if err != nil {
		return nil, err
	}

	m := newModel(cfg, provider, fileID)
	m.tracePath = path

	// A sidecar session takes precedence over the default selection.
	if _, statErr := os.Stat(sessionPath(path)); statErr == nil {
		if err := LoadSession(m, sessionPath(path)); err == nil {
			return m, nil
		}
		logging.Warnf("ignoring unusable session %s", sessionPath(path))
	}
	autoAddSignals(m, autoAddLimit)
	return m, nil
}

// newDemoModel starts without a trace: a clock and a counter over a fixed
// window, enough to exercise every gesture.
func newDemoModel(cfg Config) *model {
	m := newModel(cfg, trace.NewProvider(), "")
	m.coord.SetTotal(wave.TimeRange{Start: 0, End: 1000})
	m.addSignalSpec("clock:10")
	m.addSignalSpec("clock:40,10")
	m.addSignalSpec("counter:0,1,16,10")
	m.ui.noticeMsg = ""
	return m
}

// autoAddSignals shows the first signals of the trace in declaration order.
func autoAddSignals(m *model, limit int) {
	root, err := m.provider.FetchHierarchy(m.fileID)
	if err != nil {
		logging.Warnf("hierarchy fetch failed: %v", err)
		return
	}
	added := 0
	var walk func(s *trace.Scope)
	walk = func(s *trace.Scope) {
		for _, v := range s.Vars {
			if added >= limit {
				return
			}
			m.addTraceSignal(v.Name)
			added++
		}
		for _, child := range s.Scopes {
			if added >= limit {
				return
			}
			walk(child)
		}
	}
	walk(root)
	// The add commands are discarded here, so drop their pending marks
	// and leave the first fetch batch to Init.
	m.resetPendingFetches()
	m.ui.noticeMsg = ""
}
