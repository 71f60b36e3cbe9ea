package tdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func alignmentResolver() *Resolver {
	return NewResolver(
		[]*Station{
			{PrimaryIdentifier: "station-x", Name: "StationX"},
			{PrimaryIdentifier: "station-y", Name: "StationY"},
			{PrimaryIdentifier: "station-z", Name: "StationZ"},
		},
		[]*Platform{
			{PrimaryIdentifier: "platform-x", StationRef: "station-x"},
			{PrimaryIdentifier: "platform-y", StationRef: "station-y"},
		},
	)
}

func TestStopOrderReversed(t *testing.T) {
	resolver := alignmentResolver()

	forward := []Stop{
		{Order: 0, StationRef: "station-x"},
		{Order: 1, StationRef: "station-y"},
		{Order: 2, StationRef: "station-z"},
	}
	backward := []Stop{
		{Order: 0, StationRef: "station-z"},
		{Order: 1, StationRef: "station-y"},
		{Order: 2, StationRef: "station-x"},
	}

	tests := []struct {
		name     string
		base     []Stop
		active   []Stop
		expected bool
	}{
		{
			name:     "same first station means same direction",
			base:     forward,
			active:   forward[:2],
			expected: false,
		},
		{
			name:     "base first equals active last",
			base:     forward,
			active:   backward,
			expected: true,
		},
		{
			name: "base last equals active first",
			base: forward,
			active: []Stop{
				{Order: 0, StationRef: "station-z"},
				{Order: 1, StationRef: "station-y"},
			},
			expected: true,
		},
		{
			name:     "single stop base is undecidable",
			base:     forward[:1],
			active:   backward,
			expected: false,
		},
		{
			name:     "single stop active is undecidable",
			base:     forward,
			active:   backward[:1],
			expected: false,
		},
		{
			name: "stations resolved through platforms",
			base: forward,
			active: []Stop{
				{Order: 0, PlatformRef: "platform-y"},
				{Order: 1, PlatformRef: "platform-x"},
			},
			expected: true,
		},
		{
			name: "name fallback when ids are missing",
			base: forward,
			active: []Stop{
				{Order: 0, StationName: "StationZ"},
				{Order: 1, StationName: "StationX"},
			},
			expected: true,
		},
		{
			name: "disjoint variant defaults to no reversal",
			base: forward,
			active: []Stop{
				{Order: 0, StationName: "Elsewhere"},
				{Order: 1, StationName: "Nowhere"},
			},
			expected: false,
		},
		{
			name: "two unresolvable endpoints never match each other",
			base: []Stop{
				{Order: 0},
				{Order: 1, StationRef: "station-y"},
			},
			active: []Stop{
				{Order: 0, StationRef: "station-z"},
				{Order: 1},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StopOrderReversed(tt.base, tt.active, resolver))
		})
	}
}

func TestSelectBaseVariant(t *testing.T) {
	short := &Route{PrimaryIdentifier: "short", Stops: []Stop{{Order: 0}}}
	long := &Route{PrimaryIdentifier: "long", Stops: []Stop{{Order: 0}, {Order: 1}}}
	alsoLong := &Route{PrimaryIdentifier: "also-long", Stops: []Stop{{Order: 0}, {Order: 1}}}

	t.Run("most stops wins", func(t *testing.T) {
		assert.Same(t, long, SelectBaseVariant([]*Route{short, long}))
	})

	t.Run("ties break to first seen", func(t *testing.T) {
		assert.Same(t, long, SelectBaseVariant([]*Route{long, alsoLong}))
	})

	t.Run("no variants", func(t *testing.T) {
		assert.Nil(t, SelectBaseVariant(nil))
	})
}

// Two variants of "Line 1" running opposite directions: selecting the second
// must flag a reversal so the displayed order matches the base variant.
func TestVariantAlignmentEndToEnd(t *testing.T) {
	resolver := alignmentResolver()

	variantA := &Route{
		PrimaryIdentifier: "line-1-up",
		DisplayName:       "Line 1|Up||EXP",
		Stops: []Stop{
			{Order: 0, StationRef: "station-x"},
			{Order: 1, StationRef: "station-y"},
		},
	}
	variantB := &Route{
		PrimaryIdentifier: "line-1-down",
		DisplayName:       "Line 1|Down||EXP",
		Stops: []Stop{
			{Order: 0, StationRef: "station-y"},
			{Order: 1, StationRef: "station-x"},
		},
	}

	assert.Equal(t, variantA.Title(), variantB.Title())

	base := SelectBaseVariant([]*Route{variantA, variantB})
	assert.Same(t, variantA, base)

	reversed := StopOrderReversed(base.OrderedStops(), variantB.OrderedStops(), resolver)
	assert.True(t, reversed)

	// Reversed display order of variant B lines up with the base direction
	displayed := variantB.OrderedStops()
	for i, j := 0, len(displayed)-1; i < j; i, j = i+1, j-1 {
		displayed[i], displayed[j] = displayed[j], displayed[i]
	}

	assert.Equal(t, "station-x", displayed[0].StationRef)
	assert.Equal(t, "station-y", displayed[1].StationRef)
}
