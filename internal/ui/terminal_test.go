package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"bracket is literal", tcell.NewEventKey(tcell.KeyRune, '<', tcell.ModNone), "<"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<Enter>"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "<Escape>"},
		{"control", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModNone), "<C-a>"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "<M-x>"},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "<Up>"},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "<F5>"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "<S-Tab>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertKey(tt.ev); got != tt.want {
				t.Errorf("convertKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	s := Status{Mode: "NORMAL", Name: "main.go", Line: 3, Col: 7, Modified: true}
	line := statusLine(s, 60)
	if len(line) != 60 {
		t.Errorf("status line length = %d, want 60", len(line))
	}
	if want := "-- NORMAL -- main.go [+]"; line[:len(want)] != want {
		t.Errorf("status line = %q", line)
	}
}

func TestNoopCapturesFrames(t *testing.T) {
	n := NewNoop()
	if err := n.Init(); err != nil {
		t.Fatal(err)
	}
	n.Draw(Frame{Info: "hello"})
	if n.LastFrame.Info != "hello" {
		t.Errorf("LastFrame.Info = %q", n.LastFrame.Info)
	}
	n.Feed("x")
	select {
	case ev := <-n.Events():
		if ev.Keys != "x" {
			t.Errorf("event keys = %q", ev.Keys)
		}
	default:
		t.Error("no event delivered")
	}
}
