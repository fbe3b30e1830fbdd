package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpack/pkg/grid"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name       string
		level      log.Level
		debug      bool
		wantOutput bool
	}{
		{name: "info at info level", level: log.InfoLevel, wantOutput: true},
		{name: "debug at info level", level: log.InfoLevel, debug: true, wantOutput: false},
		{name: "debug at debug level", level: log.DebugLevel, debug: true, wantOutput: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			if tt.debug {
				logger.Debug("derived layout", "breakpoint", "sm")
			} else {
				logger.Info("derived layout", "breakpoint", "sm")
			}
			if got := buf.Len() > 0; got != tt.wantOutput {
				t.Errorf("wrote output = %v, want %v", got, tt.wantOutput)
			}
		})
	}
}

func TestNewLoggerReportsCallerAtDebug(t *testing.T) {
	var info, debug bytes.Buffer
	newLogger(&info, log.InfoLevel).Info("resolved")
	newLogger(&debug, log.DebugLevel).Info("resolved")

	if strings.Contains(info.String(), "log_test.go") {
		t.Errorf("info logger reported its caller: %q", info.String())
	}
	if !strings.Contains(debug.String(), "log_test.go") {
		t.Errorf("debug logger did not report its caller: %q", debug.String())
	}

	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("resolved")
	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("SetLogLevel(debug) did not turn on caller reporting: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel), "Compacted")
	prog.done(3, true)

	out := buf.String()
	for _, want := range []string{"INFO", "Compacted", "items=3", "cached=true", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("done() output %q missing %q", out, want)
		}
	}
}

func TestProgressFailed(t *testing.T) {
	var info, debug bytes.Buffer
	err := errors.New("no item \"x\" in layout")

	newProgress(newLogger(&info, log.InfoLevel), "Moved x").failed(err)
	if info.Len() != 0 {
		t.Errorf("failed() logged at info level: %q", info.String())
	}

	newProgress(newLogger(&debug, log.DebugLevel), "Moved x").failed(err)
	if out := debug.String(); !strings.Contains(out, "Moved x failed") || !strings.Contains(out, "no item") {
		t.Errorf("failed() output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext() did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}
}

func TestCommandLogsProgress(t *testing.T) {
	isolate(t)
	path := writeLayout(t, grid.Layout{{ID: "a", X: 0, Y: 3, W: 2, H: 1}, {ID: "b", X: 2, Y: 0, W: 2, H: 1}})

	var logs bytes.Buffer
	root := New(&logs, log.InfoLevel).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"compact", "--no-cache", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("compact error = %v", err)
	}

	out := logs.String()
	for _, want := range []string{"Compacted", "items=2", "cached=false"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestCommandLogsConfigAtDebug(t *testing.T) {
	isolate(t)
	cfgPath := writeConfig(t, "vertical_compact = false\n")
	path := writeLayout(t, grid.Layout{{ID: "a", X: 0, Y: 0, W: 1, H: 1}})

	var logs bytes.Buffer
	root := New(&logs, log.DebugLevel).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfgPath, "move", "--id", "missing", path})
	if err := root.Execute(); err == nil {
		t.Fatal("move of unknown item: expected error")
	}

	out := logs.String()
	for _, want := range []string{"loaded config", cfgPath, "Moved missing failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log %q missing %q", out, want)
		}
	}
}
