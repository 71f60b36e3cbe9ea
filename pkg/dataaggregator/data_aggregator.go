package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
)

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup finds the first registered source that can produce a T and runs the
// query against it.
func Lookup[T any](query any) (T, error) {
	var empty T

	for _, source := range GlobalAggregator.Sources {
		matches := false

		lookupType := reflect.TypeOf(*new(T))
		if lookupType.Kind() == reflect.Pointer {
			lookupType = lookupType.Elem()
		}

		for _, supportedType := range source.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if matches {
			var returnValue any
			var returnError error

			returnValue, returnError = source.Lookup(query)

			if returnValue == nil {
				return empty, returnError
			} else {
				return returnValue.(T), returnError
			}
		}
	}

	return empty, errors.New("failed to find a matching Data Source for type")
}
