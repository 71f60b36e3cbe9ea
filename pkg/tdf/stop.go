package tdf

import (
	"fmt"
	"strconv"
)

// GameTicksPerSecond is the fixed game tick rate dwell times are stored in.
const GameTicksPerSecond = 20

type Stop struct {
	// Order the stop appears in the route. Ascending but not necessarily
	// contiguous.
	Order int `groups:"basic"`

	PlatformRef string `groups:"basic"`
	StationRef  string `groups:"basic"`

	// StationName is an embedded display name some snapshots carry when the
	// station record itself is missing.
	StationName string `groups:"basic"`

	DwellTicks int64 `groups:"basic"`
}

// DisplayKey uniquely identifies a stop within one route for display purposes.
func (s *Stop) DisplayKey() string {
	return fmt.Sprintf("%s-%s-%d", s.PlatformRef, s.StationRef, s.Order)
}

func (s *Stop) DwellSeconds() string {
	return FormatDwellTicks(s.DwellTicks)
}

// FormatDwellTicks converts a game tick count into a seconds string with
// trailing zeros trimmed, eg. 30 ticks -> "1.5", 40 ticks -> "2".
func FormatDwellTicks(ticks int64) string {
	seconds := float64(ticks) / GameTicksPerSecond

	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
