// Package config loads the optional Lua rc file. The file can set
// editing options and install alias bindings:
//
//	options = { tabwidth = 4, expandtab = true, autoindent = true }
//	alias = { ["q"] = ":q<Enter>" }   -- normal-mode aliases
//
// A missing rc file is not an error; a broken one is reported and
// otherwise ignored.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vix/internal/editor"
)

// DefaultName is the rc file name searched for under the config home.
const DefaultName = "vixrc.lua"

// Config is the evaluated rc file content.
type Config struct {
	Tabwidth   int
	Expandtab  bool
	Autoindent bool

	hasTabwidth   bool
	hasExpandtab  bool
	hasAutoindent bool

	// Aliases are normal-mode alias bindings, keys to replacement.
	Aliases map[string]string
}

// Path resolves the rc file location: the explicit override, $VIXRC, or
// vixrc.lua under the user config directory.
func Path(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv("VIXRC"); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vix", DefaultName)
}

// Load evaluates the rc file at the resolved path. A missing file
// yields (nil, nil).
func Load(override string) (*Config, error) {
	path := Path(override)
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", path, err)
	}

	cfg := &Config{Aliases: make(map[string]string)}

	if opts, ok := L.GetGlobal("options").(*lua.LTable); ok {
		if v, ok := opts.RawGetString("tabwidth").(lua.LNumber); ok {
			cfg.Tabwidth = int(v)
			cfg.hasTabwidth = true
		}
		if v, ok := opts.RawGetString("expandtab").(lua.LBool); ok {
			cfg.Expandtab = bool(v)
			cfg.hasExpandtab = true
		}
		if v, ok := opts.RawGetString("autoindent").(lua.LBool); ok {
			cfg.Autoindent = bool(v)
			cfg.hasAutoindent = true
		}
	}

	if aliases, ok := L.GetGlobal("alias").(*lua.LTable); ok {
		aliases.ForEach(func(k, v lua.LValue) {
			ks, kok := k.(lua.LString)
			vs, vok := v.(lua.LString)
			if kok && vok && ks != "" {
				cfg.Aliases[string(ks)] = string(vs)
			}
		})
	}

	return cfg, nil
}

// Apply writes the configuration into the editor.
func (c *Config) Apply(ed *editor.Editor) {
	opts := ed.Options()
	if c.hasTabwidth && c.Tabwidth > 0 {
		opts.Tabwidth = c.Tabwidth
	}
	if c.hasExpandtab {
		opts.Expandtab = c.Expandtab
	}
	if c.hasAutoindent {
		opts.Autoindent = c.Autoindent
	}
	for keys, alias := range c.Aliases {
		ed.AliasNormal(keys, alias)
	}
}
