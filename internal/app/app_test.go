package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/vix/internal/ui"
)

func TestRunUntilQuit(t *testing.T) {
	surface := ui.NewNoop()
	a, err := New(surface, Options{})
	if err != nil {
		t.Fatal(err)
	}

	surface.Feed("ihello<Escape>")
	surface.Feed(":q!<Enter>")

	if got := a.Run(); got != 0 {
		t.Errorf("exit status = %d, want 0", got)
	}
}

func TestRunExitsOnClosedSurface(t *testing.T) {
	surface := ui.NewNoop()
	a, err := New(surface, Options{})
	if err != nil {
		t.Fatal(err)
	}
	surface.Feed("x")
	surface.Finish()
	if got := a.Run(); got != 0 {
		t.Errorf("exit status = %d, want 0", got)
	}
}

func TestStdinBuffer(t *testing.T) {
	surface := ui.NewNoop()
	a, err := New(surface, Options{Stdin: []byte("from stdin\n")})
	if err != nil {
		t.Fatal(err)
	}
	ed := a.Editor()
	if ed.Window() == nil {
		t.Fatal("no window")
	}
	var out bytes.Buffer
	if _, err := ed.Window().File.Text.Write(&out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "from stdin\n" {
		t.Errorf("buffer = %q", out.String())
	}
}

func TestStartupCommands(t *testing.T) {
	surface := ui.NewNoop()
	a, err := New(surface, Options{
		Stdin:    []byte("l1\nl2\nl3\nl4\n"),
		Commands: []string{"3"},
	})
	if err != nil {
		t.Fatal(err)
	}
	ed := a.Editor()
	txt := ed.Window().File.Text
	pos := ed.Window().View.Primary().Pos
	if got := txt.Lineno(pos); got != 3 {
		t.Errorf("startup +3 line = %d, want 3", got)
	}
}

func TestStartupSearchCommand(t *testing.T) {
	surface := ui.NewNoop()
	a, err := New(surface, Options{
		Stdin:    []byte("aaa\nneedle here\n"),
		Commands: []string{"/needle"},
	})
	if err != nil {
		t.Fatal(err)
	}
	ed := a.Editor()
	pos := ed.Window().View.Primary().Pos
	if pos != 4 {
		t.Errorf("startup search cursor = %d, want 4", pos)
	}
}

func TestLoggerLevels(t *testing.T) {
	var out strings.Builder
	log := NewLogger(&out, LogLevelWarn)
	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown %d", 1)
	log.Error("shown %d", 2)

	s := out.String()
	if strings.Contains(s, "hidden") {
		t.Errorf("low-severity output leaked: %q", s)
	}
	if !strings.Contains(s, "shown 1") || !strings.Contains(s, "shown 2") {
		t.Errorf("missing output: %q", s)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"WARN", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
