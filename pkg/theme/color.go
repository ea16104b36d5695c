package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/hexane-dev/hexane/pkg/dump"
)

// ansiNames maps color names to their foreground attributes.
var ansiNames = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright-black":   color.FgHiBlack,
	"bright-red":     color.FgHiRed,
	"bright-green":   color.FgHiGreen,
	"bright-yellow":  color.FgHiYellow,
	"bright-blue":    color.FgHiBlue,
	"bright-magenta": color.FgHiMagenta,
	"bright-cyan":    color.FgHiCyan,
	"bright-white":   color.FgHiWhite,
}

// ParseColor reads a single color value: an ANSI name such as "red" or
// "bright-blue", or a 256-color palette index "0".."255".
func ParseColor(s string) (*color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.ParseUint(v, 10, 8); err == nil {
		return dump.Color256(uint8(n)), nil
	}
	if attr, ok := ansiNames[v]; ok {
		return color.New(attr), nil
	}
	return nil, fmt.Errorf("invalid color %q", s)
}
