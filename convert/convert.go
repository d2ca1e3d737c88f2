package convert

import (
	"reflect"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/registry"
)

// ToType converts src to the target type using the conversions registered
// in r. The dispatch order is fixed: a direct entry for the exact type pair,
// then a same-type deep copy, then the to-msg/from-msg bridge. When no path
// exists the error names both types.
//
// Conversion functions receive src as registered; errors they return pass
// through unchanged.
func ToType(r *registry.Registry, src any, target reflect.Type) (any, error) {
	if src == nil {
		return nil, errors.InvalidInput(errors.PhaseConvert, "cannot convert a nil value")
	}
	if target == nil {
		return nil, errors.InvalidInput(errors.PhaseConvert, "cannot convert to a nil target type")
	}

	srcType := reflect.TypeOf(src)

	if fn, err := r.LookupDirect(srcType, target); err == nil {
		return fn(src)
	}

	if srcType == target {
		return deepCopy(src), nil
	}

	toMsg, toErr := r.LookupToMsg(srcType)
	fromMsg, fromErr := r.LookupFromMsg(target)
	if toErr != nil || fromErr != nil {
		return nil, errors.UnsupportedPair(errors.PhaseConvert, srcType, target)
	}

	m, err := toMsg(src)
	if err != nil {
		return nil, err
	}
	return fromMsg(m)
}

// To converts src to T. It is ToType with the target key taken from the
// type parameter and the result asserted back to T.
func To[T any](r *registry.Registry, src any) (T, error) {
	var zero T

	out, err := ToType(r, src, registry.KeyOf[T]())
	if err != nil {
		return zero, err
	}

	typed, ok := out.(T)
	if !ok {
		return zero, errors.New(errors.PhaseConvert, errors.KindInvalidData).
			Type(reflect.TypeOf(out)).
			Target(registry.KeyOf[T]()).
			Detail("registered conversion produced a value of the wrong type").
			Build()
	}
	return typed, nil
}
