package registry

import (
	"reflect"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
)

// KeyOf returns the registry key for T. Pointer and value types produce
// distinct keys.
func KeyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterApply registers a typed apply function for T on r. The adapter
// unboxes the incoming value and returns an error for a wrong dynamic type
// instead of panicking.
func RegisterApply[T any](r *Registry, fn func(T, msg.TransformStamped) (T, error)) {
	key := KeyOf[T]()
	r.RegisterApply(key, func(value any, transform msg.TransformStamped) (any, error) {
		v, ok := value.(T)
		if !ok {
			return nil, wrongDynamicType(errors.PhaseTransform, key, value)
		}
		return fn(v, transform)
	})
}

// RegisterToMsg registers a typed conversion from T to its canonical
// message form M.
func RegisterToMsg[T, M any](r *Registry, fn func(T) (M, error)) {
	key := KeyOf[T]()
	r.RegisterToMsg(key, func(value any) (any, error) {
		v, ok := value.(T)
		if !ok {
			return nil, wrongDynamicType(errors.PhaseConvert, key, value)
		}
		return fn(v)
	})
}

// RegisterFromMsg registers a typed conversion producing T from its
// canonical message form M. The entry is keyed by T; the adapter checks that
// the canonical value it is fed really is an M.
func RegisterFromMsg[T, M any](r *Registry, fn func(M) (T, error)) {
	r.RegisterFromMsg(KeyOf[T](), func(value any) (any, error) {
		m, ok := value.(M)
		if !ok {
			return nil, wrongDynamicType(errors.PhaseConvert, KeyOf[M](), value)
		}
		return fn(m)
	})
}

// RegisterDirect registers a typed direct conversion from From to To.
func RegisterDirect[From, To any](r *Registry, fn func(From) (To, error)) {
	from := KeyOf[From]()
	r.RegisterDirect(from, KeyOf[To](), func(value any) (any, error) {
		v, ok := value.(From)
		if !ok {
			return nil, wrongDynamicType(errors.PhaseConvert, from, value)
		}
		return fn(v)
	})
}

func wrongDynamicType(phase errors.Phase, want reflect.Type, got any) *errors.Error {
	return errors.New(phase, errors.KindInvalidInput).
		Type(reflect.TypeOf(got)).
		Target(want).
		Detail("value does not match the registered key type").
		Build()
}
