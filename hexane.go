// Package hexane renders binary data as a hex dump: a position panel on
// the left, one or two columns of numeric byte values in a configurable
// base, and a matching character panel on the right, all inside an
// 80-column border.
//
// # Basic Usage
//
// Render a byte slice with the default layout:
//
//	out, err := hexane.Dump([]byte("hello, world"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out)
//
// # Custom Layout
//
// Create a Printer to control grouping, base, borders and color:
//
//	p, err := hexane.New(
//	    hexane.WithGroupSize(2),
//	    hexane.WithEndianness(hexane.EndianBig),
//	    hexane.WithBorder(hexane.BorderASCII),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = p.Print(context.Background(), os.Stdin, os.Stdout)
//
// # Line Iteration
//
// Lines yields the rendered output one line at a time, in the manner of
// bufio.Scanner:
//
//	lines := p.Lines(f)
//	for lines.Next() {
//	    fmt.Println(lines.Text())
//	}
//	if err := lines.Err(); err != nil {
//	    log.Fatal(err)
//	}
package hexane

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/hexane-dev/hexane/pkg/dump"
	"github.com/hexane-dev/hexane/pkg/theme"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/hexane-dev/hexane" without subpackages.
type (
	// Base selects the radix of the numeric panels.
	Base = dump.Base

	// Endianness controls byte order inside a multi-byte group.
	Endianness = dump.Endianness

	// BorderStyle selects the frame drawn around the dump.
	BorderStyle = dump.BorderStyle

	// PanelsMode fixes the panel count or leaves it to the terminal width.
	PanelsMode = dump.PanelsMode

	// CharTable maps bytes to the glyphs of the character panel.
	CharTable = dump.CharTable

	// ByteCategory classifies a byte for coloring and glyph selection.
	ByteCategory = dump.ByteCategory

	// Palette holds the color assigned to each byte category.
	Palette = dump.Palette

	// Layout is the resolved shape of every rendered line.
	Layout = dump.Layout

	// Lines iterates over rendered output one line at a time.
	Lines = dump.Lines
)

// Re-export the layout constants.
const (
	BaseHexadecimal = dump.BaseHexadecimal
	BaseBinary      = dump.BaseBinary
	BaseOctal       = dump.BaseOctal
	BaseDecimal     = dump.BaseDecimal

	EndianLittle = dump.EndianLittle
	EndianBig    = dump.EndianBig

	BorderUnicode = dump.BorderUnicode
	BorderASCII   = dump.BorderASCII
	BorderNone    = dump.BorderNone

	PanelsAuto    = dump.PanelsAuto
	PanelsHex     = dump.PanelsHex
	PanelsHexChar = dump.PanelsHexChar

	CharsDefault = dump.CharsDefault
	CharsASCII   = dump.CharsASCII
	CharsCP437   = dump.CharsCP437
)

// Option configures a Printer.
type Option func(*dump.Config)

// WithBase renders the numeric panels in the given base.
// Default is hexadecimal.
func WithBase(b Base) Option {
	return func(c *dump.Config) {
		c.Base = b
	}
}

// WithGroupSize groups the given number of bytes into one numeric token.
// Valid sizes are 1, 2, 4 and 8. Default is 1.
func WithGroupSize(n int) Option {
	return func(c *dump.Config) {
		c.GroupSize = n
	}
}

// WithEndianness sets the byte order inside multi-byte groups.
// Only has an effect with a group size larger than 1. Default is little.
func WithEndianness(e Endianness) Option {
	return func(c *dump.Config) {
		c.Endianness = e
	}
}

// WithBorder draws the frame and panel separators in the given style.
// Default is the unicode box-drawing style.
func WithBorder(b BorderStyle) Option {
	return func(c *dump.Config) {
		c.Border = b
	}
}

// WithPanels fixes the panel count instead of the auto behavior, which
// drops the character panel when the terminal is too narrow for both.
func WithPanels(m PanelsMode) Option {
	return func(c *dump.Config) {
		c.Panels = m
	}
}

// WithBytesPerLine sets the window size of each rendered line.
// Must be a positive multiple of 8. Default is 16.
func WithBytesPerLine(n int) Option {
	return func(c *dump.Config) {
		c.BytesPerLine = n
	}
}

// WithColors enables colored output using the given palette.
// Load a palette with LoadTheme, or pass nil for the stock colors.
// Colors still follow the usual terminal detection; call
// Palette.SetEnabled to force them on or off.
func WithColors(p *Palette) Option {
	return func(c *dump.Config) {
		c.ShowColor = true
		c.Colors = p
	}
}

// WithCharTable selects the glyph set of the character panel.
// Default shows printable ASCII and placeholder glyphs per category.
func WithCharTable(t CharTable) Option {
	return func(c *dump.Config) {
		c.Chars = t
	}
}

// WithoutCharacters drops the character panels from the output.
func WithoutCharacters() Option {
	return func(c *dump.Config) {
		c.ShowChars = false
	}
}

// WithoutOffsets drops the position panel from the output.
func WithoutOffsets() Option {
	return func(c *dump.Config) {
		c.ShowOffset = false
	}
}

// WithoutSqueezing renders every line even when identical to the
// preceding one. By default repeated lines collapse into an asterisk.
func WithoutSqueezing() Option {
	return func(c *dump.Config) {
		c.Squeeze = false
	}
}

// WithSkip labels the first rendered byte with the given stream
// position. It does not consume input; skip the reader beforehand.
func WithSkip(pos uint64) Option {
	return func(c *dump.Config) {
		c.Skip = pos
	}
}

// WithLength stops reading after n bytes. Default reads to EOF.
func WithLength(n int64) Option {
	return func(c *dump.Config) {
		c.Length = n
	}
}

// WithDisplayOffset adds a signed bias to every displayed position.
func WithDisplayOffset(n int64) Option {
	return func(c *dump.Config) {
		c.DisplayOffset = n
	}
}

// WithTerminalWidth tells the auto panel mode how many columns are
// available. Zero means unknown, which keeps both panels.
func WithTerminalWidth(w int) Option {
	return func(c *dump.Config) {
		c.TerminalWidth = w
	}
}

// WithWarnf receives advisory diagnostics such as the empty input
// notice. Default discards them.
func WithWarnf(fn func(format string, args ...any)) Option {
	return func(c *dump.Config) {
		c.Warnf = fn
	}
}

// Printer renders hex dump lines from a byte stream.
type Printer struct {
	p *dump.Printer
}

// New creates a Printer with the given options.
//
// By default, the printer:
//   - Renders 16 hexadecimal bytes per line in two panels
//   - Draws unicode borders and a position panel
//   - Squeezes repeated lines into an asterisk
//   - Does NOT color the output (enable with WithColors)
//
// Example:
//
//	// Default printer
//	p, err := hexane.New()
//
//	// Binary base, no character panel
//	p, err := hexane.New(hexane.WithBase(hexane.BaseBinary), hexane.WithoutCharacters())
func New(opts ...Option) (*Printer, error) {
	cfg := dump.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := dump.NewPrinter(cfg)
	if err != nil {
		return nil, err
	}
	return &Printer{p: p}, nil
}

// Print renders r as a complete dump to w, header and footer included.
// The context cancels a run early, for example on SIGINT.
func (p *Printer) Print(ctx context.Context, r io.Reader, w io.Writer) error {
	return p.p.Print(ctx, r, w)
}

// Lines returns an iterator over the rendered lines of r, frame
// excluded.
func (p *Printer) Lines(r io.Reader) *Lines {
	return p.p.Lines(r)
}

// Layout reports the resolved line shape of this printer.
func (p *Printer) Layout() Layout {
	return p.p.Layout()
}

// Dump renders data with the default layout and no color.
//
// Example:
//
//	out, err := hexane.Dump(header)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(out)
func Dump(data []byte) (string, error) {
	var sb strings.Builder
	if err := DumpTo(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DumpTo renders data to w with the default layout and no color.
func DumpTo(w io.Writer, data []byte) error {
	p, err := New()
	if err != nil {
		return err
	}
	return p.Print(context.Background(), bytes.NewReader(data), w)
}

// LoadTheme resolves a builtin theme name or a path to a theme file into
// a Palette. Use it with WithColors to render a colored dump.
//
// Example:
//
//	palette, err := hexane.LoadTheme("grayscale")
//	if err != nil {
//	    return err
//	}
//	p, err := hexane.New(hexane.WithColors(palette))
func LoadTheme(nameOrPath string) (*Palette, error) {
	return theme.NewLoader().Load(nameOrPath)
}

// BuiltinThemes lists the theme names accepted by LoadTheme.
func BuiltinThemes() []string {
	return theme.NewLoader().Builtins()
}
