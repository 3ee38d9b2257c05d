package chartjs

import (
	"errors"
	"fmt"
)

// ErrInvalidColorFormat indicates a color string that is not hex, rgb() or rgba().
var ErrInvalidColorFormat = errors.New("invalid color format")

// ErrUnknownEnumValue indicates a style token outside its closed set.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// ErrUnsupportedValueType indicates a value the encoder has no rule for.
var ErrUnsupportedValueType = errors.New("unsupported value type")

// UnsupportedValueError reports where in the document an unencodable value sits.
type UnsupportedValueError struct {
	Path  string // dotted key path, e.g. "options.plugins.zoom"
	Value any
	Err   error // lower level fault, if any
}

func (e *UnsupportedValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v at %q (%T): %v", ErrUnsupportedValueType, e.Path, e.Value, e.Err)
	}
	return fmt.Sprintf("%v at %q (%T)", ErrUnsupportedValueType, e.Path, e.Value)
}

func (e *UnsupportedValueError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUnsupportedValueType, e.Err}
	}
	return []error{ErrUnsupportedValueType}
}
