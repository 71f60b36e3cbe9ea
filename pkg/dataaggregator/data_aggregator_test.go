package dataaggregator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRecord struct {
	Value string
}

type fakeQuery struct {
	Value string
}

type fakeSource struct{}

func (s fakeSource) GetName() string { return "Fake" }

func (s fakeSource) Supports() []reflect.Type {
	return []reflect.Type{reflect.TypeOf(fakeRecord{})}
}

func (s fakeSource) Lookup(q any) (interface{}, error) {
	query, ok := q.(fakeQuery)
	if !ok {
		return nil, errors.New("unable to lookup")
	}

	return &fakeRecord{Value: query.Value}, nil
}

func TestLookupRoutesToSupportingSource(t *testing.T) {
	GlobalAggregator = Aggregator{}
	GlobalAggregator.RegisterSource(fakeSource{})

	record, err := Lookup[*fakeRecord](fakeQuery{Value: "hello"})

	assert.NoError(t, err)
	assert.Equal(t, "hello", record.Value)
}

type fakeListSource struct{}

func (s fakeListSource) GetName() string { return "Fake List" }

func (s fakeListSource) Supports() []reflect.Type {
	return []reflect.Type{reflect.TypeOf([]*fakeRecord{})}
}

func (s fakeListSource) Lookup(q any) (interface{}, error) {
	query, ok := q.(fakeQuery)
	if !ok {
		return nil, errors.New("unable to lookup")
	}

	return []*fakeRecord{{Value: query.Value}}, nil
}

// Slice results dispatch on the slice type itself, not its element - a source
// answering single records must not swallow list queries.
func TestLookupRoutesSliceToSupportingSource(t *testing.T) {
	GlobalAggregator = Aggregator{}
	GlobalAggregator.RegisterSource(fakeSource{})
	GlobalAggregator.RegisterSource(fakeListSource{})

	records, err := Lookup[[]*fakeRecord](fakeQuery{Value: "hello"})

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Value)
}

func TestLookupUnsupportedType(t *testing.T) {
	GlobalAggregator = Aggregator{}
	GlobalAggregator.RegisterSource(fakeSource{})

	type unsupported struct{}

	_, err := Lookup[*unsupported](fakeQuery{})

	assert.Error(t, err)
}
