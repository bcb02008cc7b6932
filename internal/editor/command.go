package editor

import (
	"strconv"
	"strings"

	"github.com/dshills/vix/internal/input/mode"
	"github.com/dshills/vix/internal/text"
)

// promptState is the single prompt line shared by ex commands and
// searches.
type promptState struct {
	active bool
	prefix rune
	line   []byte
}

// PromptLine returns the prompt content for rendering, or "" when the
// prompt is hidden.
func (ed *Editor) PromptLine() string {
	if !ed.prompt.active {
		return ""
	}
	return string(ed.prompt.prefix) + string(ed.prompt.line)
}

// promptShow opens the prompt with the given prefix and switches to
// prompt mode.
func (ed *Editor) promptShow(prefix rune) {
	ed.prompt = promptState{active: true, prefix: prefix}
	ed.InfoClear()
	ed.SetMode(mode.Prompt)
}

// promptHide closes the prompt.
func (ed *Editor) promptHide() {
	ed.prompt = promptState{}
}

// promptAppend adds typed text to the prompt line.
func (ed *Editor) promptAppend(k string) {
	if len(k) > 1 && k[0] == '<' {
		return
	}
	ed.prompt.line = append(ed.prompt.line, k...)
}

// promptBackspace removes the last character; an empty line cancels.
func (ed *Editor) promptBackspace() {
	if len(ed.prompt.line) == 0 {
		ed.promptCancel()
		return
	}
	line := ed.prompt.line
	cut := len(line) - 1
	for cut > 0 && line[cut]&0xc0 == 0x80 {
		cut--
	}
	ed.prompt.line = line[:cut]
}

// promptCancel abandons the prompt.
func (ed *Editor) promptCancel() {
	ed.SetMode(mode.Normal)
}

// promptSubmit evaluates the prompt line.
func (ed *Editor) promptSubmit() {
	prefix := ed.prompt.prefix
	line := string(ed.prompt.line)
	ed.SetMode(mode.Normal)

	switch prefix {
	case ':':
		ed.ExCommand(line)
	case '/':
		ed.searchExec(line, true)
	case '?':
		ed.searchExec(line, false)
	}
}

// searchExec installs the pattern and moves to the next match.
func (ed *Editor) searchExec(pattern string, forward bool) {
	if pattern != "" {
		if !ed.SearchPattern(pattern, forward) {
			return
		}
	} else if ed.search.re == nil {
		ed.Info("no previous search pattern")
		ed.action.Reset()
		return
	} else {
		ed.search.forward = forward
	}
	ed.action.Movement = &MotionSearchNext
	ed.actionDo(&ed.action)
}

// ExCommand evaluates a minimal ex command line.
func (ed *Editor) ExCommand(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	// A bare line number jumps to it.
	if n, err := strconv.Atoi(line); err == nil {
		ed.gotoLineno(n)
		return
	}

	name := line
	arg := ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		name = line[:i]
		arg = strings.TrimSpace(line[i+1:])
	}

	switch name {
	case "q", "quit":
		ed.quitWindow(false)
	case "q!", "quit!":
		ed.quitWindow(true)
	case "w", "write":
		ed.writeFile(arg)
	case "wq", "x":
		if ed.writeFile(arg) {
			ed.quitWindow(true)
		}
	case "e", "edit", "e!", "edit!":
		if arg == "" {
			ed.Info("file name required")
			return
		}
		if _, err := ed.NewWindow(arg); err != nil {
			ed.Info("cannot open %s: %v", arg, err)
		}
	case "new":
		if _, err := ed.NewWindow(""); err != nil {
			ed.Info("cannot open new window: %v", err)
		}
	default:
		ed.Info("not an editor command: %s", name)
	}
}

// gotoLineno jumps the primary cursor to a 1-based line number.
func (ed *Editor) gotoLineno(n int) {
	if ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	pos := txt.PosByLineno(n)
	if pos == text.EPOS {
		if txt.Size() == 0 {
			pos = 0
		} else {
			pos = txt.LineBegin(txt.Size() - 1)
		}
	}
	c := ed.win.View.Primary()
	ed.win.JumplistPush(c.Pos)
	c.Pos = txt.LineStart(pos)
	c.col = -1
}

// quitWindow closes the focused window. Unsaved changes hold it open
// unless forced.
func (ed *Editor) quitWindow(force bool) {
	w := ed.win
	if w == nil {
		ed.Exit(0)
		return
	}
	if !force && w.File.Text.Modified() && w.File.refs == 1 {
		ed.Info("unsaved changes (add ! to override)")
		return
	}
	ed.CloseWindow(w)
}

// writeFile saves the focused buffer, optionally under a new name.
func (ed *Editor) writeFile(name string) bool {
	w := ed.win
	if w == nil {
		return false
	}
	if name == "" {
		name = w.File.Name
	}
	if name == "" {
		ed.Info("no file name")
		return false
	}
	if err := w.File.Text.Save(name); err != nil {
		ed.Info("write failed: %v", err)
		return false
	}
	w.File.Name = name
	ed.Info("%q %d bytes written", name, w.File.Text.Size())
	return true
}

// StartupCommand runs a +CMD argument after files are loaded:
// +/pat searches forward, +?pat backward, +:cmd runs an ex command,
// and +N jumps to a line.
func (ed *Editor) StartupCommand(cmd string) {
	if cmd == "" {
		return
	}
	switch cmd[0] {
	case '/':
		ed.searchExec(cmd[1:], true)
	case '?':
		ed.searchExec(cmd[1:], false)
	case ':':
		ed.ExCommand(cmd[1:])
	default:
		ed.ExCommand(cmd)
	}
}
