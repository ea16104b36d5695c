package dump

// ByteCategory describes how a byte value is displayed and colored.
// Every byte value belongs to exactly one category.
type ByteCategory uint8

const (
	// CategoryNull is the zero byte.
	CategoryNull ByteCategory = iota
	// CategoryPrintable covers graphic ASCII characters (0x21..0x7e).
	CategoryPrintable
	// CategoryWhitespace covers space, tab, newline, carriage return,
	// vertical tab and form feed.
	CategoryWhitespace
	// CategoryControl covers the remaining ASCII control characters,
	// including DEL.
	CategoryControl
	// CategoryNonASCII covers 0x80..0xff.
	CategoryNonASCII
)

// categoryTable maps every byte value to its category.
var categoryTable = buildCategoryTable()

func buildCategoryTable() (t [256]ByteCategory) {
	for i := range t {
		t[i] = classify(byte(i))
	}
	return t
}

func classify(b byte) ByteCategory {
	switch {
	case b == 0x00:
		return CategoryNull
	case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
		return CategoryWhitespace
	case 0x21 <= b && b <= 0x7e:
		return CategoryPrintable
	case b < 0x20 || b == 0x7f:
		return CategoryControl
	default:
		return CategoryNonASCII
	}
}

// Classify returns the display category of a byte value.
func Classify(b byte) ByteCategory {
	return categoryTable[b]
}

// String returns the category name as used in theme files and
// HEXANE_COLOR_* environment variables.
func (c ByteCategory) String() string {
	switch c {
	case CategoryNull:
		return "null"
	case CategoryPrintable:
		return "printable"
	case CategoryWhitespace:
		return "whitespace"
	case CategoryControl:
		return "control"
	case CategoryNonASCII:
		return "non-ascii"
	default:
		return "unknown"
	}
}
