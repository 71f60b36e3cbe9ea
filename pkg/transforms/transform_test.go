package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trackmap/trackmap/pkg/tdf"
)

func TestTransformAppliesMatchingDefinition(t *testing.T) {
	transforms = nil
	RegisterDefinition(&TransformDefinition{
		Type: "tdf.Station",
		Match: map[string]string{
			"PrimaryIdentifier": "overworld-central",
		},
		Data: map[string]interface{}{
			"Name": "Central Terminus",
		},
	})

	matching := &tdf.Station{PrimaryIdentifier: "overworld-central", Name: "central"}
	other := &tdf.Station{PrimaryIdentifier: "overworld-east", Name: "east"}

	Transform(matching)
	Transform(other)

	assert.Equal(t, "Central Terminus", matching.Name)
	assert.Equal(t, "east", other.Name)
}

func TestTransformSkipsOtherTypes(t *testing.T) {
	transforms = nil
	RegisterDefinition(&TransformDefinition{
		Type: "tdf.Route",
		Match: map[string]string{
			"PrimaryIdentifier": "line-1",
		},
		Data: map[string]interface{}{
			"Dimension": "nether",
		},
	})

	station := &tdf.Station{PrimaryIdentifier: "line-1", Dimension: "overworld"}
	Transform(station)

	assert.Equal(t, "overworld", station.Dimension)
}

func TestTransformSlice(t *testing.T) {
	transforms = nil
	RegisterDefinition(&TransformDefinition{
		Type: "tdf.Route",
		Match: map[string]string{
			"DisplayName": "Line 1|Up",
		},
		Data: map[string]interface{}{
			"Color": int64(0xFF0000),
		},
	})

	routes := []*tdf.Route{
		{DisplayName: "Line 1|Up"},
		{DisplayName: "Line 2"},
	}

	Transform(routes)

	assert.Equal(t, int64(0xFF0000), routes[0].Color)
	assert.Equal(t, int64(0), routes[1].Color)
}
