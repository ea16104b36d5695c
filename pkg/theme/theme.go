// Package theme resolves byte-category palettes: built-in definitions
// compiled into the binary, YAML theme files, and HEXANE_COLOR_*
// environment overrides layered on top.
package theme

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/hexane-dev/hexane/pkg/dump"
)

// Default is the theme loaded when none is requested.
const Default = "hexanamine"

// Loader resolves themes by built-in name or file path.
type Loader struct {
	fs fs.FS // embedded filesystem for built-in themes
}

// NewLoader creates a loader with built-in themes from the embedded
// filesystem.
func NewLoader() *Loader {
	return &Loader{fs: builtinThemesFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// Load resolves a palette. Values containing a path separator or a YAML
// suffix are read from disk; anything else names a built-in theme. The
// HEXANE_COLOR_* environment overrides apply on top of the result.
func (l *Loader) Load(nameOrPath string) (*dump.Palette, error) {
	data, err := l.read(nameOrPath)
	if err != nil {
		return nil, err
	}

	var doc yamlTheme
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", nameOrPath, err)
	}

	p, err := convertColors(doc.Colors)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", nameOrPath, err)
	}
	applyEnvOverrides(p)
	return p, nil
}

// Builtins lists the embedded theme names, sorted.
func (l *Loader) Builtins() []string {
	entries, err := fs.ReadDir(l.fs, "themes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yml"))
	}
	sort.Strings(names)
	return names
}

func (l *Loader) read(nameOrPath string) ([]byte, error) {
	if isPath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read theme file: %w", err)
		}
		return data, nil
	}
	data, err := fs.ReadFile(l.fs, "themes/"+nameOrPath+".yml")
	if err != nil {
		return nil, fmt.Errorf("unknown theme %q, built-in themes: %s",
			nameOrPath, strings.Join(l.Builtins(), ", "))
	}
	return data, nil
}

func isPath(s string) bool {
	return strings.ContainsAny(s, `/\`) ||
		strings.HasSuffix(s, ".yml") || strings.HasSuffix(s, ".yaml")
}

// convertColors builds a palette from the document colors, starting from
// the default palette so absent categories keep their stock color.
func convertColors(c yamlColors) (*dump.Palette, error) {
	p := dump.NewPalette()
	for _, f := range []struct {
		name  string
		value string
		slot  **color.Color
	}{
		{"offset", c.Offset, &p.Offset},
		{"null", c.Null, &p.Null},
		{"printable", c.Printable, &p.Printable},
		{"whitespace", c.Whitespace, &p.Whitespace},
		{"control", c.Control, &p.Control},
		{"non-ascii", c.NonASCII, &p.NonASCII},
	} {
		if f.value == "" {
			continue
		}
		col, err := ParseColor(f.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.slot = col
	}
	return p, nil
}

// applyEnvOverrides layers the HEXANE_COLOR_* variables over a palette.
// Unparseable values keep the theme color.
func applyEnvOverrides(p *dump.Palette) {
	for _, o := range []struct {
		env  string
		slot **color.Color
	}{
		{"HEXANE_COLOR_OFFSET", &p.Offset},
		{"HEXANE_COLOR_NULL", &p.Null},
		{"HEXANE_COLOR_PRINTABLE", &p.Printable},
		{"HEXANE_COLOR_WHITESPACE", &p.Whitespace},
		{"HEXANE_COLOR_CONTROL", &p.Control},
		{"HEXANE_COLOR_NONASCII", &p.NonASCII},
	} {
		raw, ok := os.LookupEnv(o.env)
		if !ok {
			continue
		}
		col, err := ParseColor(raw)
		if err != nil {
			continue
		}
		*o.slot = col
	}
}
