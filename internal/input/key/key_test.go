package key

import (
	"reflect"
	"strings"
	"testing"
)

// stubActions is a minimal ActionSet for tests.
type stubActions []string

func (s stubActions) Has(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}

func (s stubActions) HasPrefix(partial string) bool {
	for _, n := range s {
		if strings.HasPrefix(n, partial) {
			return true
		}
	}
	return false
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"simple name", "Enter", "Enter", true},
		{"alias cr", "CR", "Enter", true},
		{"alias esc", "esc", "Escape", true},
		{"control char", "C-a", "C-a", true},
		{"control uppercase folds", "C-A", "C-a", true},
		{"alt is meta", "A-x", "M-x", true},
		{"modifier order", "S-C-Tab", "C-S-Tab", true},
		{"function key", "f5", "F5", true},
		{"high function key", "F12", "F12", true},
		{"bare char is not named", "a", "", false},
		{"unknown name", "Bogus", "", false},
		{"dangling modifier", "C-", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalName(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("CanonicalName(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKey  string
		wantSize int
	}{
		{"ascii", "abc", "a", 1},
		{"utf8", "éx", "é", 2},
		{"named key", "<Enter>x", "<Enter>", 7},
		{"alias normalized", "<esc>", "<Escape>", 5},
		{"control", "<C-a>w", "<C-a>", 5},
		{"space name", "<Space>", " ", 7},
		{"literal bracket", "<x>", "<", 1},
		{"bracket then garbage", "<=>", "<", 1},
		{"unknown name literal", "<bogus>", "<", 1},
		{"hopeless partial is literal", "<xy", "<", 1},
		{"empty", "", "", 0},
		{"open bracket pending", "<", "", 0},
		{"name pending", "<Ent", "", 0},
		{"modifier pending", "<C-", "", 0},
		{"modified char pending", "<C-a", "", 0},
		{"truncated utf8 pending", "\xc3", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, size := Next(tt.in, nil)
			if key != tt.wantKey || size != tt.wantSize {
				t.Errorf("Next(%q) = (%q, %d), want (%q, %d)", tt.in, key, size, tt.wantKey, tt.wantSize)
			}
		})
	}
}

func TestNextActionName(t *testing.T) {
	actions := stubActions{"editor-redraw"}

	key, size := Next("<editor-redraw>", actions)
	if key != "<editor-redraw>" || size != 15 {
		t.Errorf("got (%q, %d)", key, size)
	}
	// Without the registry the same input degrades to a literal bracket.
	key, size = Next("<editor-redraw>", nil)
	if key != "<" || size != 1 {
		t.Errorf("without registry: got (%q, %d), want literal bracket", key, size)
	}
	// A partial action name holds for more input.
	key, size = Next("<editor-re", actions)
	if key != "" || size != 0 {
		t.Errorf("partial action name: got (%q, %d), want pending", key, size)
	}
}

// TestNextFragmentationInvariance verifies the property the editor's
// protocol tests rely on: the token decision for a complete buffer never
// contradicts the decision made while it arrived byte by byte.
func TestNextFragmentationInvariance(t *testing.T) {
	inputs := []string{"<Enter>", "<C-a>", "<x>", "<bogus>", "dw", "é<esc>", "<", "5dd"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			whole := Split(in, nil)

			var got []string
			buf := ""
			for i := 0; i < len(in); i++ {
				buf += in[i : i+1]
				for {
					k, size := Next(buf, nil)
					if size == 0 {
						break
					}
					got = append(got, k)
					buf = buf[size:]
				}
			}
			// Trailing pending input is dropped in both runs.
			if !reflect.DeepEqual(got, whole) {
				t.Errorf("byte-wise %v != whole %v", got, whole)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	got := Split("dw<Enter>é", nil)
	want := []string{"d", "w", "<Enter>", "é"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("<esc><cr>", nil); got != "<Escape><Enter>" {
		t.Errorf("Normalize = %q", got)
	}
	if got := Normalize("gg", nil); got != "gg" {
		t.Errorf("Normalize = %q", got)
	}
}
