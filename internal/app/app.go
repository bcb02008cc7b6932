package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/vix/internal/config"
	"github.com/dshills/vix/internal/editor"
	"github.com/dshills/vix/internal/text"
	"github.com/dshills/vix/internal/ui"
)

// Options configure a run of the editor.
type Options struct {
	// Files to open, one window each. Duplicate names share a buffer.
	Files []string

	// Commands are +CMD startup commands run after loading.
	Commands []string

	// Stdin holds pre-read standard input for the "-" argument; nil
	// when unused.
	Stdin []byte

	// ConfigPath overrides the rc file location.
	ConfigPath string

	// LogPath enables debug logging to a file.
	LogPath string
	// LogLevel filters log output.
	LogLevel string
}

// App owns the mainloop.
type App struct {
	ed  *editor.Editor
	ui  ui.UI
	log *Logger

	sigs   chan os.Signal
	sigbus bool
}

// New builds the application: config, editor, windows.
func New(surface ui.UI, opts Options) (*App, error) {
	log := NewLogger(nil, LogLevelInfo)
	if opts.LogPath != "" {
		fileLog, err := OpenLogFile(opts.LogPath, ParseLogLevel(opts.LogLevel))
		if err != nil {
			return nil, err
		}
		log = fileLog
	}

	ed := editor.New(surface)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		// A broken rc file must not keep the editor from starting.
		log.Warn("config: %v", err)
	}
	if cfg != nil {
		cfg.Apply(ed)
	}

	if opts.Stdin != nil {
		ed.NewWindowForText(text.NewFromBytes(opts.Stdin), "")
	}
	for i := len(opts.Files) - 1; i >= 0; i-- {
		if _, err := ed.NewWindow(opts.Files[i]); err != nil {
			log.Warn("open %s: %v", opts.Files[i], err)
			ed.Info("cannot open %s: %v", opts.Files[i], err)
		}
	}
	if ed.Window() == nil {
		if _, err := ed.NewWindow(""); err != nil {
			return nil, err
		}
	}

	for _, cmd := range opts.Commands {
		ed.StartupCommand(cmd)
	}

	app := &App{
		ed:   ed,
		ui:   surface,
		log:  log,
		sigs: make(chan os.Signal, 8),
	}
	return app, nil
}

// Editor exposes the editor, for tests.
func (a *App) Editor() *editor.Editor {
	return a.ed
}

// Run drives the select loop until the editor exits. It multiplexes UI
// events with the current mode's idle timer, polls for storage faults
// after every wakeup, and treats interrupt as a cancellation request
// rather than an unwind.
func (a *App) Run() int {
	signal.Notify(a.sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGBUS, syscall.SIGCONT)
	defer signal.Stop(a.sigs)

	events := a.ui.Events()
	var idle *time.Timer
	var idleC <-chan time.Time

	armIdle := func() {
		if idle != nil {
			idle.Stop()
			idle = nil
			idleC = nil
		}
		if timeout := a.ed.Mode().IdleTimeout; timeout > 0 {
			idle = time.NewTimer(timeout)
			idleC = idle.C
		}
	}
	armIdle()
	a.ed.Draw()

	for a.ed.Running() {
		select {
		case ev, ok := <-events:
			if !ok {
				a.ed.Exit(a.ed.ExitStatus())
				break
			}
			a.handleEvent(ev)
			// Drain whatever else already arrived before redrawing.
		drain:
			for {
				select {
				case ev, ok := <-events:
					if !ok {
						break drain
					}
					a.handleEvent(ev)
				default:
					break drain
				}
			}
			armIdle()

		case sig := <-a.sigs:
			a.handleSignal(sig)

		case <-idleC:
			if hook := a.ed.Mode().Idle; hook != nil {
				hook()
			}
			idleC = nil
		}

		a.checkSigbus()
		if a.ed.Running() {
			a.ed.Draw()
		}
	}

	if idle != nil {
		idle.Stop()
	}
	return a.ed.ExitStatus()
}

func (a *App) handleEvent(ev ui.Event) {
	switch ev.Type {
	case ui.EventKey:
		a.ed.InfoClear()
		a.ed.Input(ev.Keys)
	case ui.EventResize:
		// The next draw picks the new size up from the surface.
	}
}

func (a *App) handleSignal(sig os.Signal) {
	switch sig {
	case syscall.SIGINT:
		a.ed.CancelFilter = true
	case syscall.SIGBUS:
		a.sigbus = true
	case syscall.SIGCONT:
		// Resumed from suspend; the next draw repaints.
	case syscall.SIGTERM:
		a.log.Info("terminated")
		a.ed.Exit(1)
	}
}

// checkSigbus closes windows whose backing file was truncated under a
// memory map. With no window left the editor dies.
func (a *App) checkSigbus() {
	if !a.sigbus {
		return
	}
	a.sigbus = false

	var lost []string
	var victims []*editor.Window
	a.ed.Windows(func(w *editor.Window) bool {
		if w.File.Text.SigBus(0) || w.File.Truncated() {
			w.File.SetTruncated()
			lost = append(lost, w.File.Name)
			victims = append(victims, w)
		}
		return true
	})
	for _, w := range victims {
		a.ed.CloseWindow(w)
	}
	for _, name := range lost {
		a.log.Error("file truncated: %s", name)
		a.ed.Info("file %s truncated, window closed", name)
	}
	if len(victims) > 0 && a.ed.Window() == nil {
		a.ed.Die("all windows lost their backing files")
	}
}
