// Package bytesize parses human-readable byte counts and offsets: plain
// integers, 0x hex numbers, decimal and binary unit suffixes, and
// block-size multiples.
package bytesize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultBlockSize is the block unit multiplier when none is configured.
const DefaultBlockSize = 512

const hexPrefix = "0x"

var (
	// ErrEmpty reports an empty input string.
	ErrEmpty = errors.New("no character data found")

	// ErrEmptyAfterSign reports a sign with no digits following it.
	ErrEmptyAfterSign = errors.New("no digits found after sign")

	// ErrSignAfterHexPrefix reports a sign between the 0x prefix and the
	// digits. Signs go before the prefix.
	ErrSignAfterHexPrefix = errors.New("sign found after hex prefix")

	// ErrNotAByteCount reports input that is not of the form
	// <integer>[<unit>].
	ErrNotAByteCount = errors.New("not of the form <integer>[<unit>]")

	// ErrMissingNumber reports a valid unit with no integer before it.
	ErrMissingNumber = errors.New("an integer should come before the unit")

	// ErrInvalidUnit reports an unrecognized unit suffix.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrOverflow reports a count that overflows a signed 64-bit integer
	// once multiplied by its unit.
	ErrOverflow = errors.New("count multiplied by unit overflows a signed 64-bit integer")

	// ErrNegativeCount reports an end-anchored amount in a context that
	// only accepts forward counts.
	ErrNegativeCount = errors.New("negative offset specified where only a count is accepted")

	// ErrBlockSizeNotPositive reports a block size of zero or less.
	ErrBlockSizeNotPositive = errors.New("block size must be positive")

	// ErrBlockUnitInBlockSize reports a block unit used to define the
	// block size itself.
	ErrBlockUnitInBlockSize = errors.New("can not use 'block(s)' as a unit to specify block size")
)

// Anchor tells which stream position an Amount is measured from.
type Anchor uint8

const (
	// AnchorStart measures forward from the beginning of the stream.
	AnchorStart Anchor = iota
	// AnchorCurrent measures forward from the current position ("+").
	AnchorCurrent
	// AnchorEnd measures backward from the end of the stream ("-").
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorCurrent:
		return "current"
	case AnchorEnd:
		return "end"
	}
	return "unknown"
}

// Amount is a parsed byte quantity: a non-negative magnitude and the
// anchor its sign selected.
type Amount struct {
	Value  int64
	Anchor Anchor
}

// Parse reads an amount of bytes: an optional +/- sign, then either a 0x
// hex number or a decimal integer with an optional unit. The block unit
// multiplies by blockSize. No whitespace is accepted.
func Parse(s string, blockSize int64) (Amount, error) {
	rest, anchor, err := splitSign(s)
	if err != nil {
		return Amount{}, err
	}

	if digits, ok := strings.CutPrefix(rest, hexPrefix); ok {
		v, err := parseHex(digits)
		if err != nil {
			return Amount{}, err
		}
		return Amount{Value: v, Anchor: anchor}, nil
	}

	num, unit, err := splitNumAndUnit(rest)
	if err != nil {
		return Amount{}, err
	}
	mult := multipliers[unit]
	if isBlockUnit(unit) {
		mult = blockSize
	}
	v, ok := checkedMul(num, mult)
	if !ok {
		return Amount{}, ErrOverflow
	}
	return Amount{Value: v, Anchor: anchor}, nil
}

// ParseCount is Parse restricted to forward counts: an end-anchored
// amount is rejected.
func ParseCount(s string, blockSize int64) (uint64, error) {
	a, err := Parse(s, blockSize)
	if err != nil {
		return 0, err
	}
	if a.Anchor == AnchorEnd {
		return 0, ErrNegativeCount
	}
	return uint64(a.Value), nil
}

// ParseBlockSize reads a block size: a positive byte amount with no sign
// and no block unit.
func ParseBlockSize(s string) (int64, error) {
	var v int64
	if digits, ok := strings.CutPrefix(s, hexPrefix); ok {
		n, err := parseHex(digits)
		if err != nil {
			return 0, err
		}
		v = n
	} else {
		num, unit, err := splitNumAndUnit(s)
		if err != nil {
			return 0, err
		}
		if isBlockUnit(unit) {
			return 0, ErrBlockUnitInBlockSize
		}
		n, ok := checkedMul(num, multipliers[unit])
		if !ok {
			return 0, ErrOverflow
		}
		v = n
	}
	if v < 1 {
		return 0, ErrBlockSizeNotPositive
	}
	return v, nil
}

// multipliers maps lowercased unit suffixes to their byte multiplier. The
// block unit is absent: it resolves against the configured block size.
var multipliers = map[string]int64{
	"":    1,
	"kb":  1_000,
	"mb":  1_000_000,
	"gb":  1_000_000_000,
	"tb":  1_000_000_000_000,
	"kib": 1 << 10,
	"mib": 1 << 20,
	"gib": 1 << 30,
	"tib": 1 << 40,
}

func isBlockUnit(unit string) bool {
	return unit == "block" || unit == "blocks"
}

// splitSign strips a leading +/- and returns the anchor it selects.
func splitSign(s string) (string, Anchor, error) {
	if s == "" {
		return "", AnchorStart, ErrEmpty
	}
	switch s[0] {
	case '+':
		if len(s) == 1 {
			return "", AnchorStart, ErrEmptyAfterSign
		}
		return s[1:], AnchorCurrent, nil
	case '-':
		if len(s) == 1 {
			return "", AnchorStart, ErrEmptyAfterSign
		}
		return s[1:], AnchorEnd, nil
	}
	return s, AnchorStart, nil
}

// splitNumAndUnit separates the leading decimal digits from the unit
// suffix. The returned unit is lowercased and already known valid; the
// empty unit means plain bytes. No normalization is performed: "1024" is
// (1024, ""), never (1, "kib").
func splitNumAndUnit(s string) (int64, string, error) {
	if s == "" {
		return 0, "", ErrEmpty
	}
	idx := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if idx < 0 {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("parse integer part: %w", err)
		}
		return n, "", nil
	}

	digits, rawUnit := s[:idx], s[idx:]
	unit := strings.ToLower(rawUnit)
	if _, known := multipliers[unit]; !known && !isBlockUnit(unit) {
		if digits == "" {
			return 0, "", fmt.Errorf("%w: %q", ErrNotAByteCount, s)
		}
		return 0, "", fmt.Errorf("%w %q", ErrInvalidUnit, rawUnit)
	}
	if digits == "" {
		return 0, "", fmt.Errorf("%w: %q", ErrMissingNumber, rawUnit)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse integer part: %w", err)
	}
	return n, unit, nil
}

// parseHex reads the digits after the 0x prefix. A sign here is an error:
// it belongs before the prefix.
func parseHex(digits string) (int64, error) {
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		if len(digits) == 1 {
			return 0, ErrEmptyAfterSign
		}
		return 0, fmt.Errorf("%w: %q", ErrSignAfterHexPrefix, digits[0])
	}
	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse integer part: %w", err)
	}
	return v, nil
}

// checkedMul multiplies two non-negative values, reporting overflow.
func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	v := a * b
	if v/b != a {
		return 0, false
	}
	return v, true
}
