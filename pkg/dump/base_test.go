package dump

import "testing"

func TestBase_DigitsPerByte(t *testing.T) {
	cases := map[Base]int{
		BaseBinary:      8,
		BaseOctal:       3,
		BaseDecimal:     3,
		BaseHexadecimal: 2,
	}
	for base, want := range cases {
		if got := base.DigitsPerByte(); got != want {
			t.Errorf("%s: DigitsPerByte() = %d, expected %d", base, got, want)
		}
	}
}

func TestDigitCells(t *testing.T) {
	cases := []struct {
		base Base
		b    byte
		want string
	}{
		{BaseHexadecimal, 0x00, "00"},
		{BaseHexadecimal, 0xab, "ab"},
		{BaseHexadecimal, 0xff, "ff"},
		{BaseBinary, 0x05, "00000101"},
		{BaseBinary, 0xff, "11111111"},
		{BaseOctal, 0xff, "377"},
		{BaseOctal, 0x08, "010"},
		{BaseDecimal, 0x07, "007"},
		{BaseDecimal, 0xff, "255"},
	}
	for _, tc := range cases {
		if got := tc.base.cells()[tc.b]; got != tc.want {
			t.Errorf("%s cell for 0x%02x = %q, expected %q", tc.base, tc.b, got, tc.want)
		}
	}
}

func TestDigitCells_FixedWidth(t *testing.T) {
	for _, base := range []Base{BaseBinary, BaseOctal, BaseDecimal, BaseHexadecimal} {
		width := base.DigitsPerByte()
		cells := base.cells()
		for i := 0; i < 256; i++ {
			if len(cells[i]) != width {
				t.Fatalf("%s cell for 0x%02x has width %d, expected %d", base, i, len(cells[i]), width)
			}
		}
	}
}

func TestParseBase(t *testing.T) {
	valid := map[string]Base{
		"2":           BaseBinary,
		"b":           BaseBinary,
		"binary":      BaseBinary,
		"8":           BaseOctal,
		"o":           BaseOctal,
		"octal":       BaseOctal,
		"10":          BaseDecimal,
		"d":           BaseDecimal,
		"decimal":     BaseDecimal,
		"16":          BaseHexadecimal,
		"x":           BaseHexadecimal,
		"hex":         BaseHexadecimal,
		"Hexadecimal": BaseHexadecimal,
	}
	for in, want := range valid {
		got, err := ParseBase(in)
		if err != nil {
			t.Errorf("ParseBase(%q) returned error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseBase(%q) = %s, expected %s", in, got, want)
		}
	}

	for _, in := range []string{"", "7", "base64", "xx"} {
		if _, err := ParseBase(in); err == nil {
			t.Errorf("ParseBase(%q) expected error, got none", in)
		}
	}
}

func TestParseEndianness(t *testing.T) {
	if e, err := ParseEndianness("little"); err != nil || e != EndianLittle {
		t.Errorf("ParseEndianness(little) = %v, %v", e, err)
	}
	if e, err := ParseEndianness("BIG"); err != nil || e != EndianBig {
		t.Errorf("ParseEndianness(BIG) = %v, %v", e, err)
	}
	if _, err := ParseEndianness("middle"); err == nil {
		t.Error("ParseEndianness(middle) expected error, got none")
	}
}
