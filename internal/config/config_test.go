package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/vix/internal/editor"
	"github.com/dshills/vix/internal/ui"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vixrc.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.lua"))
	if err != nil {
		t.Fatalf("missing file is not an error: %v", err)
	}
	if cfg != nil {
		t.Fatalf("cfg = %v, want nil", cfg)
	}
}

func TestLoadOptions(t *testing.T) {
	path := writeRC(t, `
options = {
	tabwidth = 4,
	expandtab = true,
	autoindent = true,
}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tabwidth != 4 || !cfg.Expandtab || !cfg.Autoindent {
		t.Errorf("cfg = %+v", cfg)
	}

	ed := editor.New(ui.NewNoop())
	cfg.Apply(ed)
	opts := ed.Options()
	if opts.Tabwidth != 4 || !opts.Expandtab || !opts.Autoindent {
		t.Errorf("applied options = %+v", opts)
	}
}

func TestLoadPartialOptionsKeepDefaults(t *testing.T) {
	path := writeRC(t, `options = { expandtab = true }`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	ed := editor.New(ui.NewNoop())
	cfg.Apply(ed)
	if got := ed.Options().Tabwidth; got != 8 {
		t.Errorf("tabwidth = %d, want default 8", got)
	}
	if !ed.Options().Expandtab {
		t.Error("expandtab not applied")
	}
}

func TestLoadAliases(t *testing.T) {
	path := writeRC(t, `alias = { ["Q"] = ":q<Enter>" }`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Aliases["Q"]; got != ":q<Enter>" {
		t.Errorf("alias Q = %q", got)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	path := writeRC(t, `this is not lua ===`)
	if _, err := Load(path); err == nil {
		t.Error("broken rc file did not report an error")
	}
}

func TestPathPrecedence(t *testing.T) {
	if got := Path("/explicit/rc.lua"); got != "/explicit/rc.lua" {
		t.Errorf("explicit override = %q", got)
	}
	t.Setenv("VIXRC", "/from/env.lua")
	if got := Path(""); got != "/from/env.lua" {
		t.Errorf("env path = %q", got)
	}
}
