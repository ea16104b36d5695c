// Package dump renders byte streams as terminal hex dump lines: offsets,
// grouped byte values in a configurable base, a categorized character
// panel, borders and run-length squeezing of repeated lines.
package dump

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Config describes one rendering run. Construct with DefaultConfig and
// override fields as needed; NewPrinter validates the result.
type Config struct {
	Base         Base
	GroupSize    int // bytes per numeric token: 1, 2, 4 or 8 (0 = 1)
	Endianness   Endianness
	Border       BorderStyle
	Panels       PanelsMode
	BytesPerLine int // window size, a positive multiple of 8 (0 = 16)
	Chars        CharTable

	ShowColor bool
	Colors    *Palette // nil with ShowColor set falls back to NewPalette

	ShowChars  bool
	ShowOffset bool
	Squeeze    bool

	Skip          uint64 // stream position of the first byte read
	Length        int64  // maximum bytes to read; negative means unbounded
	DisplayOffset int64  // signed bias added to every displayed offset

	TerminalWidth int // 0 when unknown; consulted only by PanelsAuto

	// Warnf receives advisory diagnostics, currently only the empty
	// input notice. Nil discards them.
	Warnf func(format string, args ...any)
}

// DefaultConfig returns the canonical 80-column rendering: 16 hex bytes
// per line in two panels, offsets, unicode borders, squeezing on, no
// color.
func DefaultConfig() Config {
	return Config{
		GroupSize:  1,
		ShowChars:  true,
		ShowOffset: true,
		Squeeze:    true,
		Length:     -1,
	}
}

func (c Config) withDefaults() Config {
	if c.GroupSize == 0 {
		c.GroupSize = 1
	}
	if c.BytesPerLine == 0 {
		c.BytesPerLine = DefaultBytesPerLine
	}
	if c.ShowColor && c.Colors == nil {
		c.Colors = NewPalette()
	}
	return c
}

func (c Config) validate() error {
	switch c.GroupSize {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("group size must be 1, 2, 4 or 8, got %d", c.GroupSize)
	}
	if c.BytesPerLine <= 0 || c.BytesPerLine%8 != 0 {
		return fmt.Errorf("bytes per line must be a positive multiple of 8, got %d", c.BytesPerLine)
	}
	switch c.Panels {
	case PanelsAuto, PanelsHex, PanelsHexChar:
	default:
		return fmt.Errorf("invalid panels mode %d", int(c.Panels))
	}
	return nil
}

// Printer renders a byte stream as formatted lines.
type Printer struct {
	cfg     Config
	layout  Layout
	builder *LineBuilder
}

// NewPrinter validates cfg and resolves the line layout. Configuration
// problems surface here, never mid-stream.
func NewPrinter(cfg Config) (*Printer, error) {
	cfg = cfg.withDefaults()
	layout, err := ResolveLayout(cfg)
	if err != nil {
		return nil, err
	}
	return &Printer{
		cfg:     cfg,
		layout:  layout,
		builder: NewLineBuilder(cfg, layout),
	}, nil
}

// Layout returns the resolved line shape of this printer.
func (p *Printer) Layout() Layout {
	return p.layout
}

// Lines returns the lazy line sequence for one input stream: a single
// pass, forward only, in the style of bufio.Scanner. Reading is bounded by
// Config.Length when set.
func (p *Printer) Lines(r io.Reader) *Lines {
	if p.cfg.Length >= 0 {
		r = io.LimitReader(r, p.cfg.Length)
	}
	return &Lines{
		p:  p,
		r:  r,
		sq: NewSqueezer(p.cfg.Squeeze, p.layout.BytesPerLine),
	}
}

// Lines iterates over the rendered lines of one stream.
type Lines struct {
	p          *Printer
	r          io.Reader
	sq         *Squeezer
	cur        string
	queued     string // second line of a marker-then-line pair
	hasQueued  bool
	pending    []byte // next window, read one step ahead
	pendingErr error
	primed     bool
	done       bool
	err        error
	consumed   uint64
}

// Next advances to the next output line. It returns false when the stream
// is exhausted or a read failed; Err separates the two.
func (l *Lines) Next() bool {
	if l.hasQueued {
		l.cur = l.queued
		l.hasQueued = false
		return true
	}
	if l.done {
		return false
	}
	if !l.primed {
		l.pending, l.pendingErr = l.readWindow()
		l.primed = true
	}

	for {
		if l.pendingErr != nil {
			l.err = fmt.Errorf("read input: %w", l.pendingErr)
			l.done = true
			return false
		}
		if l.pending == nil {
			l.done = true
			return false
		}
		window := l.pending
		l.pending, l.pendingErr = l.readWindow()

		line := Line{
			Offset: l.p.cfg.Skip + l.consumed,
			Bytes:  window,
			Last:   len(window) < l.p.layout.BytesPerLine || (l.pending == nil && l.pendingErr == nil),
		}
		l.consumed += uint64(len(window))

		switch l.sq.Process(line) {
		case SqueezePrint:
			l.cur = l.p.builder.Build(line)
			return true
		case SqueezeMarker:
			l.cur = SqueezeMarkerLine
			return true
		case SqueezeMarkerThenPrint:
			l.cur = SqueezeMarkerLine
			l.queued = l.p.builder.Build(line)
			l.hasQueued = true
			return true
		case SqueezeSuppress:
			// Keep reading.
		}
	}
}

// Text returns the line produced by the last successful Next.
func (l *Lines) Text() string {
	return l.cur
}

// Err returns the read error that ended the sequence, if any.
func (l *Lines) Err() error {
	return l.err
}

// BytesRead returns the number of input bytes consumed so far, suppressed
// lines included.
func (l *Lines) BytesRead() uint64 {
	return l.consumed
}

// readWindow reads the next full or partial window. A nil window with a
// nil error means a clean end of stream. A window interrupted by a read
// failure is discarded.
func (l *Lines) readWindow() ([]byte, error) {
	buf := make([]byte, l.p.layout.BytesPerLine)
	n, err := io.ReadFull(l.r, buf)
	switch err {
	case nil:
		return buf, nil
	case io.ErrUnexpectedEOF:
		return buf[:n], nil
	case io.EOF:
		return nil, nil
	default:
		return nil, err
	}
}

// Print renders everything from r to w, framing the output per the border
// style. The context is checked between lines so an interrupted run stops
// promptly; every line already written is complete. An empty stream
// produces no output and reports through Config.Warnf.
func (p *Printer) Print(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := p.Lines(r)
	headerDone := false

	for lines.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !headerDone {
			headerDone = true
			if err := p.writeRule(w, true); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, lines.Text()+"\n"); err != nil {
			return err
		}
	}
	if err := lines.Err(); err != nil {
		return err
	}

	if lines.BytesRead() == 0 {
		if p.cfg.Warnf != nil {
			p.cfg.Warnf("no data to display")
		}
		return nil
	}
	if headerDone {
		return p.writeRule(w, false)
	}
	return nil
}

func (p *Printer) writeRule(w io.Writer, top bool) error {
	rule := p.frame(top)
	if rule == "" {
		return nil
	}
	_, err := io.WriteString(w, rule+"\n")
	return err
}

// frame renders the header or footer rule matching the line layout, or ""
// when the border style draws no frame.
func (p *Printer) frame(top bool) string {
	var elems frameElems
	var ok bool
	if top {
		elems, ok = p.cfg.Border.headerElems()
	} else {
		elems, ok = p.cfg.Border.footerElems()
	}
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(elems.leftCorner)
	for i, seg := range p.segments() {
		if i > 0 {
			sb.WriteString(elems.separator)
		}
		sb.WriteString(strings.Repeat(elems.horizontal, seg))
	}
	sb.WriteString(elems.rightCorner)
	return sb.String()
}

// segments lists the widths between frame separators, in line order.
func (p *Printer) segments() []int {
	cols := p.layout.BytesPerLine / 8
	var segs []int
	if p.cfg.ShowOffset {
		segs = append(segs, 8)
	}
	colWidth := hexColumnWidth(p.cfg.Base, p.cfg.GroupSize)
	for i := 0; i < cols; i++ {
		segs = append(segs, colWidth)
	}
	if p.layout.ShowChars {
		for i := 0; i < cols; i++ {
			segs = append(segs, 8)
		}
	}
	return segs
}
