package mode

import (
	"time"

	"github.com/dshills/vix/internal/input/keymap"
)

// ID enumerates the static mode nodes.
type ID int

const (
	Basic ID = iota
	Move
	TextObjects
	OperatorOption
	Operator
	Normal
	Visual
	VisualLine
	Readline
	Prompt
	Insert
	Replace

	// Count is the number of mode nodes.
	Count
)

// String returns the mode's display name.
func (id ID) String() string {
	switch id {
	case Basic:
		return "basic"
	case Move:
		return "move"
	case TextObjects:
		return "text-objects"
	case OperatorOption:
		return "operator-option"
	case Operator:
		return "operator-pending"
	case Normal:
		return "normal"
	case Visual:
		return "visual"
	case VisualLine:
		return "visual-line"
	case Readline:
		return "readline"
	case Prompt:
		return "prompt"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Mode is one node of the graph.
type Mode struct {
	// ID identifies the node.
	ID ID

	// Name is the display name shown on the status line.
	Name string

	// Parent is the lookup fallback. Mutable: hooks retarget it.
	Parent *Mode

	// IsUser marks modes the user can rest in (normal, visual, insert...).
	IsUser bool

	// Bindings is this node's own key table.
	Bindings *keymap.Map

	// Hooks. All optional.
	Enter func(prev *Mode)
	Leave func(next *Mode)
	Input func(key string)
	Idle  func()

	// IdleTimeout triggers Idle after this much input silence. Zero
	// disables the timer.
	IdleTimeout time.Duration
}

// New creates a mode node with an empty binding table.
func New(id ID, name string) *Mode {
	return &Mode{
		ID:       id,
		Name:     name,
		Bindings: keymap.New(),
	}
}

// Status classifies a lookup result.
type Status int

const (
	// None: no binding in the chain matches or extends the prefix.
	None Status = iota

	// Prefix: some binding extends the prefix; more input is needed.
	Prefix

	// Exact: a binding matches the prefix exactly.
	Exact
)

// Lookup resolves prefix against this mode's chain. An exact binding in
// the innermost mode that has one wins; otherwise any strict extension
// anywhere in the chain reports Prefix.
func (m *Mode) Lookup(prefix string) (*keymap.Binding, Status) {
	for mo := m; mo != nil; mo = mo.Parent {
		if b := mo.Bindings.Get(prefix); b != nil {
			return b, Exact
		}
	}
	for mo := m; mo != nil; mo = mo.Parent {
		if mo.Bindings.HasPrefix(prefix) {
			return nil, Prefix
		}
	}
	return nil, None
}

// InChain returns true if target is reachable from m via parent edges.
func (m *Mode) InChain(target *Mode) bool {
	for mo := m; mo != nil; mo = mo.Parent {
		if mo == target {
			return true
		}
	}
	return false
}

// UserMode returns the nearest user-visible mode in the chain, or nil.
func (m *Mode) UserMode() *Mode {
	for mo := m; mo != nil; mo = mo.Parent {
		if mo.IsUser {
			return mo
		}
	}
	return nil
}
