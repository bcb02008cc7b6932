package keymap

import (
	"sort"
	"strings"
)

// Func handles a matched binding. keys holds the unconsumed input that
// follows the match; the handler returns the input it leaves behind,
// having consumed any extra keys it needs (a find-char motion reads one
// more). ok == false means the handler needs more input than is
// available; the interpreter will retry with the same binding once more
// arrives.
type Func func(keys string) (rest string, ok bool)

// Binding maps one key sequence to an action or an alias.
type Binding struct {
	// Keys is the normalized key sequence that triggers the binding.
	Keys string

	// Func is the action handler. Nil for alias bindings.
	Func Func

	// Alias replaces the matched keys and is re-parsed. Only consulted
	// when Func is nil.
	Alias string

	// Name optionally registers the binding as an editor action,
	// addressable as <Name> in input and alias strings.
	Name string

	// Help is a one-line description for listings.
	Help string
}

// IsAlias returns true for alias bindings.
func (b *Binding) IsAlias() bool {
	return b.Func == nil && b.Alias != ""
}

// Map is one mode's binding table.
type Map struct {
	bindings map[string]*Binding
}

// New creates an empty binding table.
func New() *Map {
	return &Map{bindings: make(map[string]*Binding)}
}

// Bind installs b, replacing any binding with the same keys.
func (m *Map) Bind(b *Binding) {
	if b == nil || b.Keys == "" {
		return
	}
	m.bindings[b.Keys] = b
}

// Unbind removes the binding for keys. Returns true if one existed.
func (m *Map) Unbind(keys string) bool {
	if _, ok := m.bindings[keys]; !ok {
		return false
	}
	delete(m.bindings, keys)
	return true
}

// Get returns the exact binding for keys, or nil.
func (m *Map) Get(keys string) *Binding {
	return m.bindings[keys]
}

// HasPrefix returns true if some binding's keys strictly extend prefix.
func (m *Map) HasPrefix(prefix string) bool {
	for keys := range m.bindings {
		if len(keys) > len(prefix) && strings.HasPrefix(keys, prefix) {
			return true
		}
	}
	return false
}

// Len returns the number of bindings.
func (m *Map) Len() int {
	return len(m.bindings)
}

// Keys returns all bound key sequences in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.bindings))
	for k := range m.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
