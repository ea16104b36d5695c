package dump

import "fmt"

// DefaultBytesPerLine is the canonical window size: two 8-byte columns.
const DefaultBytesPerLine = 16

// PanelsMode selects how many panels a line shows. The zero value is Auto.
type PanelsMode int

const (
	// PanelsAuto keeps both panels when they fit the terminal width and
	// falls back to the hex panel alone when they do not. An unknown
	// terminal width keeps both panels.
	PanelsAuto PanelsMode = 0
	// PanelsHex shows the hex panel alone.
	PanelsHex PanelsMode = 1
	// PanelsHexChar shows the hex panel plus the character panel.
	PanelsHexChar PanelsMode = 2
)

// ParsePanelsMode interprets a panels flag value.
func ParsePanelsMode(s string) (PanelsMode, error) {
	switch s {
	case "auto":
		return PanelsAuto, nil
	case "1":
		return PanelsHex, nil
	case "2":
		return PanelsHexChar, nil
	default:
		return 0, fmt.Errorf("invalid panels value %q: expected auto, 1 or 2", s)
	}
}

// Layout is the resolved shape of every rendered line.
type Layout struct {
	// BytesPerLine is the window size of the chunking loop.
	BytesPerLine int
	// ShowChars reports whether the character panel is rendered.
	ShowChars bool
}

// ResolveLayout turns the configured panels mode into the concrete line
// shape. Width fitting is best-effort: a terminal too narrow even for the
// hex panel alone still renders at the default byte count.
func ResolveLayout(cfg Config) (Layout, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Layout{}, err
	}

	layout := Layout{
		BytesPerLine: cfg.BytesPerLine,
		ShowChars:    cfg.ShowChars,
	}
	if !cfg.ShowChars {
		return layout, nil
	}

	switch cfg.Panels {
	case PanelsHex:
		layout.ShowChars = false
	case PanelsHexChar:
		// Both panels regardless of width.
	case PanelsAuto:
		if cfg.TerminalWidth > 0 && lineWidth(cfg, true) > cfg.TerminalWidth {
			layout.ShowChars = false
		}
	}
	return layout, nil
}

// hexColumnWidth is the rendered width of one 8-byte column in the numeric
// panel, including its leading space.
func hexColumnWidth(base Base, groupSize int) int {
	return 1 + (8/groupSize)*(base.DigitsPerByte()*groupSize+1)
}

// lineWidth is the total rendered width of one line, separators included.
// The default configuration comes out at exactly 80 columns.
func lineWidth(cfg Config, withChars bool) int {
	cols := cfg.BytesPerLine / 8
	w := 1 + cols*hexColumnWidth(cfg.Base, cfg.GroupSize) + (cols - 1) + 1
	if cfg.ShowOffset {
		w += 1 + 8
	}
	if withChars {
		w += cols*8 + (cols - 1) + 1
	}
	return w
}
