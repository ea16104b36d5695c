package dump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T, cfg Config) *LineBuilder {
	t.Helper()
	cfg = cfg.withDefaults()
	layout, err := ResolveLayout(cfg)
	require.NoError(t, err)
	return NewLineBuilder(cfg, layout)
}

func TestLineBuilder_FullLine(t *testing.T) {
	b := newTestBuilder(t, DefaultConfig())
	got := b.Build(Line{Offset: 0, Bytes: []byte("abcdefgh!?%&/()\n")})
	assert.Equal(t,
		"│00000000│ 61 62 63 64 65 66 67 68 ┊ 21 3f 25 26 2f 28 29 0a │abcdefgh┊!?%&/()_│",
		got)
}

func TestLineBuilder_PartialLine(t *testing.T) {
	b := newTestBuilder(t, DefaultConfig())
	got := b.Build(Line{Offset: 0, Bytes: []byte("spam"), Last: true})
	assert.Equal(t,
		"│00000000│ 73 70 61 6d             ┊                         │spam    ┊        │",
		got)
}

func TestLineBuilder_FixedWidth(t *testing.T) {
	b := newTestBuilder(t, DefaultConfig())
	fullLen := len([]rune(b.Build(Line{Bytes: make([]byte, 16)})))
	for _, n := range []int{1, 4, 7, 8, 9, 15} {
		line := b.Build(Line{Bytes: make([]byte, n), Last: true})
		assert.Len(t, []rune(line), fullLen, "line with %d bytes", n)
	}
}

func TestLineBuilder_DisplayOffsetBias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisplayOffset = 16
	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Offset: 0, Bytes: make([]byte, 16)})
	assert.True(t, strings.HasPrefix(got, "│00000010│"), "got %q", got)

	cfg.DisplayOffset = -16
	b = newTestBuilder(t, cfg)
	got = b.Build(Line{Offset: 32, Bytes: make([]byte, 16)})
	assert.True(t, strings.HasPrefix(got, "│00000010│"), "got %q", got)
}

func TestLineBuilder_GroupedLittleEndian(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroupSize = 2
	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Bytes: []byte("abcdefghijklmnop")})
	assert.Contains(t, got, " 6162 6364 6566 6768 ")
	assert.Contains(t, got, " 696a 6b6c 6d6e 6f70 ")
}

func TestLineBuilder_GroupedBigEndian(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroupSize = 2
	cfg.Endianness = EndianBig
	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Bytes: []byte("abcdefghijklmnop")})
	assert.Contains(t, got, " 6261 6463 6665 6867 ")
}

func TestLineBuilder_PartialGroupPadding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroupSize = 4

	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Bytes: []byte("ab"), Last: true})
	assert.Contains(t, got, " 6162     ", "little endian pads the tail of the group")

	cfg.Endianness = EndianBig
	b = newTestBuilder(t, cfg)
	got = b.Build(Line{Bytes: []byte("ab"), Last: true})
	assert.Contains(t, got, "     6261 ", "big endian reverses cells, blanks included")
}

func TestLineBuilder_Binary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Base = BaseBinary
	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Bytes: []byte{0x05}, Last: true})
	assert.Contains(t, got, " 00000101 ")
}

func TestLineBuilder_NoOffset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowOffset = false
	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Bytes: []byte("spam"), Last: true})
	assert.True(t, strings.HasPrefix(got, "│ 73 70 61 6d"), "got %q", got)
}

func TestLineBuilder_BorderStyles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Border = BorderASCII
	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Bytes: []byte("spam"), Last: true})
	assert.Equal(t,
		"|00000000| 73 70 61 6d             |                         |spam    |        |",
		got)

	cfg.Border = BorderNone
	b = newTestBuilder(t, cfg)
	got = b.Build(Line{Bytes: []byte("spam"), Last: true})
	assert.Equal(t,
		" 00000000  73 70 61 6d                                        spam              ",
		got)
}

func TestLineBuilder_CP437(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chars = CharsCP437
	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Bytes: []byte{0x01, 0x02}, Last: true})
	assert.Contains(t, got, "☺☻")
}

func TestLineBuilder_ColoredOutputKeepsContent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowColor = true
	cfg.Colors = NewPalette()
	cfg.Colors.SetEnabled(true)
	b := newTestBuilder(t, cfg)
	got := b.Build(Line{Bytes: []byte("spam"), Last: true})
	assert.Contains(t, got, "\x1b[", "colored output carries escape codes")
	assert.Contains(t, got, "73")
	assert.Contains(t, got, "s")
}
