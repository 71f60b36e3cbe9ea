package variants

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trackmap/trackmap/pkg/tdf"
)

func TestSourceSupports(t *testing.T) {
	source := &Source{}

	supported := source.Supports()

	assert.Contains(t, supported, reflect.TypeOf(tdf.RouteDetail{}))
	assert.Contains(t, supported, reflect.TypeOf([]*tdf.Route{}))
}

func TestSourceLookupUnknownQuery(t *testing.T) {
	source := &Source{}

	type unknownQuery struct{}

	_, err := source.Lookup(unknownQuery{})

	assert.Error(t, err)
}
