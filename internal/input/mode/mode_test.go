package mode

import (
	"testing"

	"github.com/dshills/vix/internal/input/keymap"
)

func noop(keys string) (string, bool) { return keys, true }

// graph builds a reduced chain: basic <- move <- operator <- normal,
// with textobj <- move on the side, mirroring the editor's layout.
func graph() (basic, move, textobj, operator, normal *Mode) {
	basic = New(Basic, "basic")
	move = New(Move, "move")
	textobj = New(TextObjects, "text-objects")
	operator = New(Operator, "operator-pending")
	normal = New(Normal, "normal")
	normal.IsUser = true

	move.Parent = basic
	textobj.Parent = move
	operator.Parent = move
	normal.Parent = operator

	move.Bindings.Bind(&keymap.Binding{Keys: "w", Func: noop})
	move.Bindings.Bind(&keymap.Binding{Keys: "gg", Func: noop})
	textobj.Bindings.Bind(&keymap.Binding{Keys: "iw", Func: noop})
	operator.Bindings.Bind(&keymap.Binding{Keys: "d", Func: noop})
	normal.Bindings.Bind(&keymap.Binding{Keys: "u", Func: noop})
	return
}

func TestLookupWalksChain(t *testing.T) {
	_, _, _, _, normal := graph()

	tests := []struct {
		name   string
		prefix string
		want   Status
	}{
		{"own binding", "u", Exact},
		{"operator via parent", "d", Exact},
		{"motion via grandparent", "w", Exact},
		{"prefix of gg", "g", Prefix},
		{"unknown", "q", None},
		{"textobj not in chain", "iw", None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := normal.Lookup(tt.prefix); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestLookupInnermostWins(t *testing.T) {
	_, _, _, operator, normal := graph()

	inner := &keymap.Binding{Keys: "w", Func: noop, Help: "inner"}
	operator.Bindings.Bind(inner)

	b, status := normal.Lookup("w")
	if status != Exact || b.Help != "inner" {
		t.Errorf("Lookup(w) = (%v, %v), want the innermost binding", b, status)
	}
}

func TestReparentExposesTextObjects(t *testing.T) {
	_, move, textobj, operator, normal := graph()

	if _, status := normal.Lookup("iw"); status != None {
		t.Fatal("iw resolvable before reparenting")
	}
	// The operator's enter hook swings its parent toward text objects.
	operator.Parent = textobj
	if _, status := normal.Lookup("iw"); status != Exact {
		t.Error("iw not resolvable after reparenting")
	}
	if _, status := normal.Lookup("w"); status != Exact {
		t.Error("motions lost after reparenting")
	}
	operator.Parent = move
	if _, status := normal.Lookup("iw"); status != None {
		t.Error("iw still resolvable after restore")
	}
}

func TestUserMode(t *testing.T) {
	_, _, _, operator, normal := graph()

	if got := operator.UserMode(); got != nil {
		t.Errorf("operator chain has no user mode, got %v", got)
	}
	if got := normal.UserMode(); got != normal {
		t.Errorf("UserMode = %v, want normal", got)
	}
	if !normal.InChain(operator) {
		t.Error("InChain(operator) = false")
	}
	if operator.InChain(normal) {
		t.Error("InChain must follow parent edges only")
	}
}
