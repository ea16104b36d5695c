package dump

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Line is one window of input bytes positioned in the stream.
type Line struct {
	// Offset is the stream position of the first byte, before any
	// display bias.
	Offset uint64
	// Bytes holds between 1 and BytesPerLine bytes. Only the final line
	// of a stream may hold fewer than BytesPerLine.
	Bytes []byte
	// Last marks the final line of the stream.
	Last bool
}

// LineBuilder renders windows as fixed-width text lines. Missing byte
// slots on a short final line render as blanks of the same cell width, so
// every line of a run has identical column structure.
type LineBuilder struct {
	cfg    Config
	layout Layout
	cells  *[256]string
	glyphs *[256]string
	colors *Palette // nil when coloring is off
	blank  string   // one empty digit cell
	width  int      // rendered line width, for the builder size hint
	sb     strings.Builder
}

// NewLineBuilder builds lines for one resolved configuration. The
// configuration must already be validated.
func NewLineBuilder(cfg Config, layout Layout) *LineBuilder {
	b := &LineBuilder{
		cfg:    cfg,
		layout: layout,
		cells:  cfg.Base.cells(),
		glyphs: cfg.Chars.glyphs(),
		blank:  strings.Repeat(" ", cfg.Base.DigitsPerByte()),
		width:  lineWidth(cfg, layout.ShowChars),
	}
	if cfg.ShowColor {
		b.colors = cfg.Colors
	}
	return b
}

// Build renders one output line without a trailing newline.
func (b *LineBuilder) Build(line Line) string {
	b.sb.Reset()
	b.sb.Grow(b.width)
	outer := b.cfg.Border.outerSep()
	inner := b.cfg.Border.innerSep()
	cols := b.layout.BytesPerLine / 8

	if b.cfg.ShowOffset {
		b.sb.WriteString(outer)
		off := uint64(int64(line.Offset) + b.cfg.DisplayOffset)
		b.paint(b.offsetColor(), fmt.Sprintf("%08x", off))
	}

	for col := 0; col < cols; col++ {
		if col == 0 {
			b.sb.WriteString(outer)
		} else {
			b.sb.WriteString(inner)
		}
		b.sb.WriteByte(' ')
		for g := col * 8; g < (col+1)*8; g += b.cfg.GroupSize {
			b.writeGroup(line, g)
			b.sb.WriteByte(' ')
		}
	}
	b.sb.WriteString(outer)

	if b.layout.ShowChars {
		for col := 0; col < cols; col++ {
			if col > 0 {
				b.sb.WriteString(inner)
			}
			for pos := col * 8; pos < (col+1)*8; pos++ {
				if pos < len(line.Bytes) {
					v := line.Bytes[pos]
					b.paint(b.colors.category(Classify(v)), b.glyphs[v])
				} else {
					b.sb.WriteByte(' ')
				}
			}
		}
		b.sb.WriteString(outer)
	}

	return b.sb.String()
}

// writeGroup renders the digit cells of one group. Big endianness reverses
// cell positions, empty cells included, so a byte's cell never moves on
// the short final line.
func (b *LineBuilder) writeGroup(line Line, start int) {
	gs := b.cfg.GroupSize
	for i := 0; i < gs; i++ {
		pos := start + i
		if b.cfg.Endianness == EndianBig {
			pos = start + gs - 1 - i
		}
		if pos < len(line.Bytes) {
			v := line.Bytes[pos]
			b.paint(b.colors.category(Classify(v)), b.cells[v])
		} else {
			b.sb.WriteString(b.blank)
		}
	}
}

func (b *LineBuilder) offsetColor() *color.Color {
	if b.colors == nil {
		return nil
	}
	return b.colors.Offset
}

// paint writes s wrapped in c's escape codes, or bare when c is nil.
func (b *LineBuilder) paint(c *color.Color, s string) {
	if c == nil {
		b.sb.WriteString(s)
		return
	}
	b.sb.WriteString(c.Sprint(s))
}
