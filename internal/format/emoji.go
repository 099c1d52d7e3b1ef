package format

import (
	"errors"
	"fmt"
)

// ErrUnknownEmoji is returned for an icon name missing from the codepoint table.
var ErrUnknownEmoji = errors.New("unknown emoji")

// Codepoint resolves an icon name to its Unicode codepoint.
func Codepoint(name string) (rune, error) {
	switch name {
	case "bookmark":
		return 0x1F516, nil
	case "triangular_flag_on_post":
		return 0x1F6A9, nil
	case "star2":
		return 0x1F31F, nil
	case "hammer_and_wrench":
		return 0x1F6E0, nil
	case "lady_beetle":
		return 0x1F41E, nil
	case "see_no_evil":
		return 0x1F648, nil
	case "zap":
		return 0x26A1, nil
	case "vertical_traffic_light":
		return 0x1F6A6, nil
	case "fire":
		return 0x1F525, nil
	case "art":
		return 0x1F3A8, nil
	case "spider_web":
		return 0x1F578, nil
	case "recycle":
		return 0x267B, nil
	case "alembic":
		return 0x2697, nil
	case "book":
		return 0x1F4D6, nil
	case "beetle":
		return 0x1FAB2, nil
	case "gem":
		return 0x1F48E, nil
	case "soon":
		return 0x1F51C, nil
	case "lock":
		return 0x1F512, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownEmoji, name)
	}
}
