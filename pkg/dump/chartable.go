package dump

import "fmt"

// CharTable selects the glyphs shown in the character panel. The table
// only changes which glyph a byte maps to; classification and coloring are
// unaffected.
type CharTable uint8

const (
	// CharsDefault shows printable ASCII as-is, a diamond for null,
	// an underscore for whitespace, a bullet for control characters and
	// a cross for non-ASCII bytes.
	CharsDefault CharTable = iota
	// CharsASCII shows printable ASCII as-is and a dot for everything
	// else.
	CharsASCII
	// CharsCP437 maps every byte to its code page 437 glyph.
	CharsCP437
)

func (t CharTable) String() string {
	switch t {
	case CharsASCII:
		return "ascii"
	case CharsCP437:
		return "codepage-437"
	default:
		return "default"
	}
}

// ParseCharTable interprets a character table name.
func ParseCharTable(s string) (CharTable, error) {
	switch s {
	case "default":
		return CharsDefault, nil
	case "ascii":
		return CharsASCII, nil
	case "codepage-437":
		return CharsCP437, nil
	default:
		return 0, fmt.Errorf("invalid character table %q: expected default, ascii or codepage-437", s)
	}
}

// Glyph returns the character panel glyph for a byte value. Every glyph
// occupies exactly one terminal column.
func (t CharTable) Glyph(b byte) string {
	return t.glyphs()[b]
}

func (t CharTable) glyphs() *[256]string {
	switch t {
	case CharsASCII:
		return asciiGlyphs
	case CharsCP437:
		return cp437Glyphs
	default:
		return defaultGlyphs
	}
}

var (
	defaultGlyphs = buildDefaultGlyphs()
	asciiGlyphs   = buildASCIIGlyphs()
	cp437Glyphs   = buildCP437Glyphs()
)

func buildDefaultGlyphs() *[256]string {
	var t [256]string
	for i := range t {
		b := byte(i)
		switch Classify(b) {
		case CategoryNull:
			t[i] = "⋄"
		case CategoryPrintable:
			t[i] = string(b)
		case CategoryWhitespace:
			if b == ' ' {
				t[i] = " "
			} else {
				t[i] = "_"
			}
		case CategoryControl:
			t[i] = "•"
		default:
			t[i] = "×"
		}
	}
	return &t
}

func buildASCIIGlyphs() *[256]string {
	var t [256]string
	for i := range t {
		if 0x20 <= i && i <= 0x7e {
			t[i] = string(byte(i))
		} else {
			t[i] = "."
		}
	}
	return &t
}

// Code page 437 with the graphic forms of 0x01..0x1f and 0x7f, and a
// diamond for the null byte.
var cp437 = [256]rune{
	'⋄', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', '⌂',
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', 'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å',
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', 'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ',
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º', '¿', '⌐', '¬', '½', '¼', '¡', '«', '»',
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖', '╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟', '╚', '╔', '╩', '╦', '╠', '═', '╬', '╧',
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫', '╪', '┘', '┌', '█', '▄', '▌', '▐', '▀',
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ', 'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩',
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈', '°', '∙', '·', '√', 'ⁿ', '²', '■', 'ﬀ',
}

func buildCP437Glyphs() *[256]string {
	var t [256]string
	for i, r := range cp437 {
		t[i] = string(r)
	}
	return &t
}
