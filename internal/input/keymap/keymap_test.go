package keymap

import (
	"reflect"
	"testing"
)

func action(keys string) (string, bool) { return keys, true }

func TestBindGetUnbind(t *testing.T) {
	m := New()
	m.Bind(&Binding{Keys: "d", Func: action})
	m.Bind(&Binding{Keys: "gg", Func: action})

	if m.Get("d") == nil {
		t.Error("Get(d) = nil")
	}
	if m.Get("g") != nil {
		t.Error("Get(g) should not match a prefix")
	}
	if !m.Unbind("d") {
		t.Error("Unbind(d) = false")
	}
	if m.Unbind("d") {
		t.Error("second Unbind(d) = true")
	}
	if m.Get("d") != nil {
		t.Error("binding survived Unbind")
	}
}

func TestBindReplaces(t *testing.T) {
	m := New()
	m.Bind(&Binding{Keys: "x", Func: action, Help: "old"})
	m.Bind(&Binding{Keys: "x", Func: action, Help: "new"})
	if got := m.Get("x").Help; got != "new" {
		t.Errorf("Help = %q, want %q", got, "new")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestHasPrefix(t *testing.T) {
	m := New()
	m.Bind(&Binding{Keys: "gg", Func: action})
	m.Bind(&Binding{Keys: "g;", Func: action})

	if !m.HasPrefix("g") {
		t.Error("HasPrefix(g) = false")
	}
	if m.HasPrefix("gg") {
		t.Error("HasPrefix(gg) should require a strict extension")
	}
	if m.HasPrefix("x") {
		t.Error("HasPrefix(x) = true")
	}
}

func TestAlias(t *testing.T) {
	b := &Binding{Keys: "x", Alias: "dl"}
	if !b.IsAlias() {
		t.Error("IsAlias = false")
	}
	withFunc := &Binding{Keys: "y", Func: action, Alias: "ignored"}
	if withFunc.IsAlias() {
		t.Error("binding with Func must not be an alias")
	}
}

func TestKeysSorted(t *testing.T) {
	m := New()
	for _, k := range []string{"z", "a", "gg"} {
		m.Bind(&Binding{Keys: k, Func: action})
	}
	want := []string{"a", "gg", "z"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}
