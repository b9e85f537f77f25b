package script

import (
	"fmt"
	"strconv"
	"strings"

	"deedles.dev/xraster"
)

var colorNames = map[string]xraster.Color{
	"black":      xraster.Black,
	"white":      xraster.White,
	"red":        xraster.Red,
	"green":      xraster.Green,
	"blue":       xraster.Blue,
	"cyan":       xraster.Cyan,
	"magenta":    xraster.Magenta,
	"yellow":     xraster.Yellow,
	"background": xraster.DefaultBackground,
}

// ParseColor parses a color name, an HTML-style "#rrggbb" color, or a
// packed "0x" literal in xraster.Color's byte order. Names are case
// insensitive.
func ParseColor(s string) (xraster.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}

	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			break
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			break
		}
		return xraster.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil

	case strings.HasPrefix(s, "0x"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			break
		}
		return xraster.Color(v) & 0xFFFFFF, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
}
