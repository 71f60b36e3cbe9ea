package transforms

import (
	"reflect"
	"strings"
)

// TransformDefinition is a declarative override applied to imported records:
// every record of Type whose string fields match Match gets the fields in
// Data set. Used for dataset fix-ups like renaming a station or recolouring a
// route without touching the game data.
type TransformDefinition struct {
	Type  string                 `yaml:"Type"`
	Match map[string]string      `yaml:"Match"`
	Data  map[string]interface{} `yaml:"Data"`
}

func (t *TransformDefinition) appliesTo(inputTypeOf reflect.Type) bool {
	return strings.Replace(inputTypeOf.String(), "*", "", 1) == t.Type
}

func (t *TransformDefinition) apply(inputValue reflect.Value) {
	if !inputValue.IsValid() {
		return
	}

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || field.String() != value {
			return
		}
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if field.IsValid() && field.CanSet() {
			newValue := reflect.ValueOf(value)
			if newValue.Type().ConvertibleTo(field.Type()) {
				field.Set(newValue.Convert(field.Type()))
			}
		}
	}
}

// Transform applies every registered definition to the record or slice of
// records. Records must be passed as pointers to be modifiable.
func Transform(input interface{}) {
	inputTypeOf := reflect.TypeOf(input)
	inputValueOf := reflect.ValueOf(input)

	if inputTypeOf.Kind() == reflect.Slice {
		for i := 0; i < inputValueOf.Len(); i++ {
			indexInput := inputValueOf.Index(i).Interface()
			transformValue(reflect.TypeOf(indexInput), reflect.ValueOf(indexInput))
		}
	} else {
		transformValue(inputTypeOf, inputValueOf)
	}
}

func transformValue(inputTypeOf reflect.Type, inputValueOf reflect.Value) {
	var inputValue reflect.Value
	if inputTypeOf.Kind() == reflect.Pointer {
		inputValue = inputValueOf.Elem()
	} else {
		inputValue = inputValueOf
	}

	for _, transformDef := range transforms {
		if transformDef.appliesTo(inputTypeOf) {
			transformDef.apply(inputValue)
		}
	}
}
