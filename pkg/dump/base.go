package dump

import (
	"fmt"
	"strconv"
	"strings"
)

// Base selects the radix used for byte values in the numeric panel.
type Base uint8

const (
	// BaseHexadecimal renders two lowercase hex digits per byte.
	BaseHexadecimal Base = iota
	// BaseBinary renders eight digits per byte.
	BaseBinary
	// BaseOctal renders three digits per byte.
	BaseOctal
	// BaseDecimal renders three digits per byte.
	BaseDecimal
)

// DigitsPerByte returns the fixed cell width of one byte in this base.
func (b Base) DigitsPerByte() int {
	switch b {
	case BaseBinary:
		return 8
	case BaseOctal, BaseDecimal:
		return 3
	default:
		return 2
	}
}

func (b Base) String() string {
	switch b {
	case BaseBinary:
		return "binary"
	case BaseOctal:
		return "octal"
	case BaseDecimal:
		return "decimal"
	default:
		return "hexadecimal"
	}
}

// ParseBase interprets a base given as a radix number, a single letter, or
// a full name.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(s) {
	case "2", "b", "bin", "binary":
		return BaseBinary, nil
	case "8", "o", "oct", "octal":
		return BaseOctal, nil
	case "10", "d", "dec", "decimal":
		return BaseDecimal, nil
	case "16", "x", "hex", "hexadecimal":
		return BaseHexadecimal, nil
	default:
		return 0, fmt.Errorf("invalid base %q: expected binary, octal, decimal or hexadecimal", s)
	}
}

// Endianness controls byte order inside a multi-byte group.
type Endianness uint8

const (
	// EndianLittle prints the bytes of a group left to right in stream
	// order.
	EndianLittle Endianness = iota
	// EndianBig reverses the byte order within each group.
	EndianBig
)

func (e Endianness) String() string {
	if e == EndianBig {
		return "big"
	}
	return "little"
}

// ParseEndianness interprets an endianness name.
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "little":
		return EndianLittle, nil
	case "big":
		return EndianBig, nil
	default:
		return 0, fmt.Errorf("invalid endianness %q: expected little or big", s)
	}
}

// Per-base lookup tables of the digit cell for every byte value. Indexing
// by byte avoids formatting work on the hot path.
var (
	hexCells = buildCells(16, 2)
	binCells = buildCells(2, 8)
	octCells = buildCells(8, 3)
	decCells = buildCells(10, 3)
)

func buildCells(radix, width int) *[256]string {
	var t [256]string
	for i := range t {
		s := strconv.FormatUint(uint64(i), radix)
		t[i] = strings.Repeat("0", width-len(s)) + s
	}
	return &t
}

// cells returns the digit cell lookup table for the base.
func (b Base) cells() *[256]string {
	switch b {
	case BaseBinary:
		return binCells
	case BaseOctal:
		return octCells
	case BaseDecimal:
		return decCells
	default:
		return hexCells
	}
}
