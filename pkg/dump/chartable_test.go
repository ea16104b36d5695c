package dump

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestCharTable_DefaultGlyphs(t *testing.T) {
	cases := []struct {
		b    byte
		want string
	}{
		{0x00, "⋄"},
		{'a', "a"},
		{'Z', "Z"},
		{' ', " "},
		{'\t', "_"},
		{'\n', "_"},
		{0x01, "•"},
		{0x7f, "•"},
		{0x80, "×"},
		{0xff, "×"},
	}
	for _, tc := range cases {
		if got := CharsDefault.Glyph(tc.b); got != tc.want {
			t.Errorf("default glyph for 0x%02x = %q, expected %q", tc.b, got, tc.want)
		}
	}
}

func TestCharTable_ASCIIGlyphs(t *testing.T) {
	cases := []struct {
		b    byte
		want string
	}{
		{0x00, "."},
		{'a', "a"},
		{' ', " "},
		{'~', "~"},
		{'\n', "."},
		{0x7f, "."},
		{0xff, "."},
	}
	for _, tc := range cases {
		if got := CharsASCII.Glyph(tc.b); got != tc.want {
			t.Errorf("ascii glyph for 0x%02x = %q, expected %q", tc.b, got, tc.want)
		}
	}
}

func TestCharTable_CP437Glyphs(t *testing.T) {
	cases := []struct {
		b    byte
		want string
	}{
		{0x00, "⋄"},
		{0x01, "☺"},
		{'A', "A"},
		{0x7f, "⌂"},
		{0xdb, "█"},
		{0xff, "ﬀ"},
	}
	for _, tc := range cases {
		if got := CharsCP437.Glyph(tc.b); got != tc.want {
			t.Errorf("cp437 glyph for 0x%02x = %q, expected %q", tc.b, got, tc.want)
		}
	}
}

// Every glyph must occupy exactly one terminal column or the character
// panel would break the fixed-width line contract.
func TestCharTable_GlyphWidths(t *testing.T) {
	for _, table := range []CharTable{CharsDefault, CharsASCII, CharsCP437} {
		for i := 0; i < 256; i++ {
			g := table.Glyph(byte(i))
			if w := runewidth.StringWidth(g); w != 1 {
				t.Errorf("%s glyph for 0x%02x (%q) has width %d", table, i, g, w)
			}
		}
	}
}

func TestParseCharTable(t *testing.T) {
	for in, want := range map[string]CharTable{
		"default":      CharsDefault,
		"ascii":        CharsASCII,
		"codepage-437": CharsCP437,
	} {
		got, err := ParseCharTable(in)
		if err != nil {
			t.Errorf("ParseCharTable(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseCharTable(%q) = %s, expected %s", in, got, want)
		}
	}
	if _, err := ParseCharTable("ebcdic"); err == nil {
		t.Error("ParseCharTable(ebcdic) expected error, got none")
	}
}
