package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// compile-time interface check
var _ UI = (*Terminal)(nil)

// Terminal renders to a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	events chan Event
	done   chan struct{}
	closed bool
}

// NewTerminal creates a terminal surface. Init must be called before use.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{
		screen: screen,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}, nil
}

// Init acquires the terminal and starts the event pump.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	go t.pump()
	return nil
}

// pump converts tcell events into editor events.
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if keys := convertKey(ev); keys != "" {
				t.events <- Event{Type: EventKey, Keys: keys}
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			t.events <- Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventPaste:
			// Paste boundaries are invisible to the core; the pasted
			// runes arrive as ordinary key events.
		}
	}
}

// convertKey renders a tcell key event in the editor's textual syntax.
func convertKey(ev *tcell.EventKey) string {
	mods := ""
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = "M-"
	}

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods != "" {
			return fmt.Sprintf("<%s%c>", mods, r)
		}
		if r == '<' {
			return "<"
		}
		return string(r)
	case tcell.KeyEnter:
		return "<" + mods + "Enter>"
	case tcell.KeyEscape:
		return "<" + mods + "Escape>"
	case tcell.KeyTab:
		return "<" + mods + "Tab>"
	case tcell.KeyBacktab:
		return "<S-Tab>"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "<" + mods + "Backspace>"
	case tcell.KeyDelete:
		return "<" + mods + "Delete>"
	case tcell.KeyInsert:
		return "<" + mods + "Insert>"
	case tcell.KeyHome:
		return "<" + mods + "Home>"
	case tcell.KeyEnd:
		return "<" + mods + "End>"
	case tcell.KeyPgUp:
		return "<" + mods + "PageUp>"
	case tcell.KeyPgDn:
		return "<" + mods + "PageDown>"
	case tcell.KeyUp:
		return "<" + mods + "Up>"
	case tcell.KeyDown:
		return "<" + mods + "Down>"
	case tcell.KeyLeft:
		return "<" + mods + "Left>"
	case tcell.KeyRight:
		return "<" + mods + "Right>"
	}

	if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF20 {
		return fmt.Sprintf("<%sF%d>", mods, int(ev.Key()-tcell.KeyF1)+1)
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return fmt.Sprintf("<%sC-%c>", mods, 'a'+rune(ev.Key()-tcell.KeyCtrlA))
	}
	return ""
}

// Events delivers converted input events.
func (t *Terminal) Events() <-chan Event {
	return t.events
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Draw renders the frame.
func (t *Terminal) Draw(f Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	if h == 0 || w == 0 {
		return
	}
	t.screen.Clear()

	content := h - 1
	for row := 0; row < content; row++ {
		line := ""
		if row < len(f.Lines) {
			line = f.Lines[row]
		} else {
			line = "~"
		}
		drawString(t.screen, 0, row, w, line, tcell.StyleDefault)
	}

	bottom := h - 1
	switch {
	case f.Prompt != "":
		drawString(t.screen, 0, bottom, w, f.Prompt, tcell.StyleDefault)
		t.screen.ShowCursor(len(f.Prompt), bottom)
	case f.Info != "":
		drawString(t.screen, 0, bottom, w, f.Info, tcell.StyleDefault.Reverse(true))
		t.screen.ShowCursor(f.CursorCol, f.CursorRow)
	default:
		status := statusLine(f.Status, w)
		drawString(t.screen, 0, bottom, w, status, tcell.StyleDefault.Reverse(true))
		t.screen.ShowCursor(f.CursorCol, f.CursorRow)
	}

	t.screen.Show()
}

// statusLine formats the status bar.
func statusLine(s Status, width int) string {
	name := s.Name
	if name == "" {
		name = "[No Name]"
	}
	flags := ""
	if s.Modified {
		flags = " [+]"
	}
	rec := ""
	if s.Recording {
		rec = " recording"
	}
	left := fmt.Sprintf("-- %s --%s %s%s", s.Mode, rec, name, flags)
	right := fmt.Sprintf("%s %d,%d", s.Pending, s.Line, s.Col)
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return left + spaces(pad) + right
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func drawString(s tcell.Screen, x, y, maxWidth int, str string, style tcell.Style) {
	col := x
	for _, r := range str {
		if col >= maxWidth {
			return
		}
		if r == '\t' {
			col += 8 - (col % 8)
			continue
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

// Suspend stops the screen so the process can be backgrounded.
func (t *Terminal) Suspend() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.screen.Suspend()
	_ = t.screen.Resume()
}

// Close releases the terminal.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
	t.screen.Fini()
}

// Die restores the terminal and prints a fatal message.
func (t *Terminal) Die(msg string) {
	t.Close()
	fmt.Fprintln(os.Stderr, msg)
}
