package dump

import "github.com/fatih/color"

// Palette holds one color formatter per byte category plus the offset
// column. A nil palette disables coloring entirely.
type Palette struct {
	Offset     *color.Color
	Null       *color.Color
	Printable  *color.Color
	Whitespace *color.Color
	Control    *color.Color
	NonASCII   *color.Color
}

// NewPalette returns the default scheme: gray offsets and null bytes, cyan
// printable characters, green whitespace, magenta control characters and
// yellow non-ASCII bytes.
func NewPalette() *Palette {
	return &Palette{
		Offset:     Color256(242),
		Null:       Color256(242),
		Printable:  color.New(color.FgCyan),
		Whitespace: color.New(color.FgGreen),
		Control:    color.New(color.FgMagenta),
		NonASCII:   color.New(color.FgYellow),
	}
}

// Color256 builds a formatter for an xterm-256 foreground color.
func Color256(n uint8) *color.Color {
	return color.New(38, 5, color.Attribute(n))
}

// SetEnabled forces colors on or off for every formatter, overriding the
// package-level TTY detection in fatih/color.
func (p *Palette) SetEnabled(enabled bool) {
	for _, c := range p.formatters() {
		if c == nil {
			continue
		}
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (p *Palette) formatters() []*color.Color {
	return []*color.Color{p.Offset, p.Null, p.Printable, p.Whitespace, p.Control, p.NonASCII}
}

// category returns the formatter for a byte category. Safe on a nil
// palette.
func (p *Palette) category(c ByteCategory) *color.Color {
	if p == nil {
		return nil
	}
	switch c {
	case CategoryNull:
		return p.Null
	case CategoryPrintable:
		return p.Printable
	case CategoryWhitespace:
		return p.Whitespace
	case CategoryControl:
		return p.Control
	case CategoryNonASCII:
		return p.NonASCII
	default:
		return nil
	}
}
