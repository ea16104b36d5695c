package dump

import "fmt"

// BorderStyle selects the glyphs framing the panels.
type BorderStyle uint8

const (
	// BorderUnicode draws box-drawing borders.
	BorderUnicode BorderStyle = iota
	// BorderASCII draws borders with +, - and |.
	BorderASCII
	// BorderNone renders spaces in separator positions and no frame.
	BorderNone
)

func (b BorderStyle) String() string {
	switch b {
	case BorderASCII:
		return "ascii"
	case BorderNone:
		return "none"
	default:
		return "unicode"
	}
}

// ParseBorderStyle interprets a border style name.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch s {
	case "unicode":
		return BorderUnicode, nil
	case "ascii":
		return BorderASCII, nil
	case "none":
		return BorderNone, nil
	default:
		return 0, fmt.Errorf("invalid border style %q: expected unicode, ascii or none", s)
	}
}

// frameElems are the glyphs of a header or footer rule.
type frameElems struct {
	leftCorner  string
	horizontal  string
	separator   string
	rightCorner string
}

// headerElems returns the glyphs of the top rule, or false when the style
// draws no frame.
func (b BorderStyle) headerElems() (frameElems, bool) {
	switch b {
	case BorderUnicode:
		return frameElems{"┌", "─", "┬", "┐"}, true
	case BorderASCII:
		return frameElems{"+", "-", "+", "+"}, true
	default:
		return frameElems{}, false
	}
}

// footerElems returns the glyphs of the bottom rule, or false when the
// style draws no frame.
func (b BorderStyle) footerElems() (frameElems, bool) {
	switch b {
	case BorderUnicode:
		return frameElems{"└", "─", "┴", "┘"}, true
	case BorderASCII:
		return frameElems{"+", "-", "+", "+"}, true
	default:
		return frameElems{}, false
	}
}

// outerSep opens and closes a line and separates the panels.
func (b BorderStyle) outerSep() string {
	switch b {
	case BorderUnicode:
		return "│"
	case BorderASCII:
		return "|"
	default:
		return " "
	}
}

// innerSep separates the 8-byte columns inside a panel.
func (b BorderStyle) innerSep() string {
	switch b {
	case BorderUnicode:
		return "┊"
	case BorderASCII:
		return "|"
	default:
		return " "
	}
}
