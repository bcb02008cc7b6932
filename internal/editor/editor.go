package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/vix/internal/input/keymap"
	"github.com/dshills/vix/internal/input/macro"
	"github.com/dshills/vix/internal/input/mode"
	"github.com/dshills/vix/internal/ui"
)

// Options are the editing options the core consults.
type Options struct {
	// Tabwidth is the shift width; bounded to 8 where it expands.
	Tabwidth int

	// Expandtab inserts spaces instead of tab characters when shifting.
	Expandtab bool

	// Autoindent copies the indent of the current line on newline.
	Autoindent bool
}

// DefaultOptions returns the option defaults.
func DefaultOptions() Options {
	return Options{Tabwidth: 8}
}

// Editor is the top-level value threaded through every handler.
type Editor struct {
	ui ui.UI

	files   []*File
	windows *Window
	win     *Window

	modes    [mode.Count]*mode.Mode
	mode     *mode.Mode
	modePrev *mode.Mode

	action     Action
	actionPrev Action

	registers map[rune]*Register

	macros        *macro.Store
	recording     *macro.Macro
	recordingName rune
	macroOperator *macro.Macro
	dotReplay     bool
	lastMacro     rune

	queue       []byte
	processing  bool
	replayBytes int

	actions map[string]*keymap.Binding

	search searchState
	prompt promptState

	options Options

	// CancelFilter is set by SIGINT and consulted by long-running
	// collaborator operations.
	CancelFilter bool

	running    bool
	exitStatus int
	info       string
}

// New creates an editor bound to the given surface.
func New(surface ui.UI) *Editor {
	ed := &Editor{
		ui:        surface,
		registers: make(map[rune]*Register),
		macros:    macro.NewStore(),
		actions:   make(map[string]*keymap.Binding),
		options:   DefaultOptions(),
		running:   true,
	}
	ed.buildModes()
	ed.bindDefaults()
	ed.mode = ed.modes[mode.Normal]
	ed.modePrev = ed.mode
	return ed
}

// UI returns the rendering surface.
func (ed *Editor) UI() ui.UI {
	return ed.ui
}

// Options returns a pointer to the live option set.
func (ed *Editor) Options() *Options {
	return &ed.options
}

// Mode returns the current mode.
func (ed *Editor) Mode() *mode.Mode {
	return ed.mode
}

// ModeByID returns the mode node for id.
func (ed *Editor) ModeByID(id mode.ID) *mode.Mode {
	return ed.modes[id]
}

// SetMode switches to the mode named by id, running leave and enter hooks.
func (ed *Editor) SetMode(id mode.ID) {
	ed.setMode(ed.modes[id])
}

func (ed *Editor) setMode(m *mode.Mode) {
	if m == nil || m == ed.mode {
		return
	}
	cur := ed.mode
	if cur != nil {
		if cur.Leave != nil {
			cur.Leave(m)
		}
		if cur.IsUser {
			ed.modePrev = cur
		}
	}
	ed.mode = m
	if m.Enter != nil {
		m.Enter(cur)
	}
}

// inVisual returns true when the current mode is a visual mode.
func (ed *Editor) inVisual() bool {
	return ed.mode.ID == mode.Visual || ed.mode.ID == mode.VisualLine
}

// Register returns the named register, creating it on first use.
// Uppercase names resolve to their lowercase register.
func (ed *Editor) Register(name rune) *Register {
	name, _ = normalizeRegister(name)
	if !IsValidRegister(name) {
		name = DefaultRegister
	}
	reg, ok := ed.registers[name]
	if !ok {
		reg = &Register{}
		ed.registers[name] = reg
	}
	return reg
}

// Macros returns the macro store.
func (ed *Editor) Macros() *macro.Store {
	return ed.macros
}

// Window returns the focused window, or nil.
func (ed *Editor) Window() *Window {
	return ed.win
}

// Windows calls f for every window until f returns false.
func (ed *Editor) Windows(f func(*Window) bool) {
	for w := ed.windows; w != nil; w = w.next {
		if !f(w) {
			return
		}
	}
}

// Info displays a one-line message.
func (ed *Editor) Info(format string, args ...any) {
	ed.info = fmt.Sprintf(format, args...)
}

// InfoClear hides the message line.
func (ed *Editor) InfoClear() {
	ed.info = ""
}

// Exit requests a clean shutdown with the given status.
func (ed *Editor) Exit(status int) {
	ed.exitStatus = status
	ed.running = false
}

// Die reports a fatal condition and shuts down non-zero.
func (ed *Editor) Die(format string, args ...any) {
	ed.ui.Die(fmt.Sprintf(format, args...))
	ed.exitStatus = 1
	ed.running = false
}

// Running reports whether the mainloop should continue.
func (ed *Editor) Running() bool {
	return ed.running
}

// ExitStatus returns the status set by Exit or Die.
func (ed *Editor) ExitStatus() int {
	return ed.exitStatus
}

// actionSet adapts the action registry for the key tokenizer.
type actionSet struct{ ed *Editor }

func (s actionSet) Has(name string) bool {
	_, ok := s.ed.actions[name]
	return ok
}

func (s actionSet) HasPrefix(partial string) bool {
	for name := range s.ed.actions {
		if strings.HasPrefix(name, partial) {
			return true
		}
	}
	return false
}

// RegisterAction makes b addressable as <name> in input and aliases.
func (ed *Editor) RegisterAction(b *keymap.Binding) {
	if b != nil && b.Name != "" {
		ed.actions[b.Name] = b
	}
}
