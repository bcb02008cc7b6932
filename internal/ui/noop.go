package ui

// compile-time interface check
var _ UI = (*Noop)(nil)

// Noop is a UI that discards all output. It serves headless tests and
// the degenerate case of running with no terminal attached.
type Noop struct {
	events chan Event

	// LastFrame keeps the most recent draw for inspection in tests.
	LastFrame Frame
	Died      string
}

// NewNoop creates a noop surface with a buffered event channel so tests
// can push input before the mainloop starts.
func NewNoop() *Noop {
	return &Noop{events: make(chan Event, 64)}
}

func (n *Noop) Init() error { return nil }

func (n *Noop) Close() {}

func (n *Noop) Events() <-chan Event { return n.events }

func (n *Noop) Size() (int, int) { return 80, 24 }

func (n *Noop) Draw(f Frame) { n.LastFrame = f }

func (n *Noop) Suspend() {}

func (n *Noop) Die(msg string) { n.Died = msg }

// Feed pushes a key event, for tests.
func (n *Noop) Feed(keys string) {
	n.events <- Event{Type: EventKey, Keys: keys}
}

// Finish closes the event channel, ending a mainloop reading from it.
func (n *Noop) Finish() {
	close(n.events)
}
