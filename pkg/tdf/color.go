package tdf

import "fmt"

// ColorToHex renders a stored colour integer as a lowercase "#rrggbb" hex
// string. Colours coming out of the game may carry alpha in the upper bits so
// only the lowest 24 bits are kept. Negative values have no colour and render
// as an empty string.
func ColorToHex(value int64) string {
	if value < 0 {
		return ""
	}

	return fmt.Sprintf("#%06x", value&0xFFFFFF)
}
