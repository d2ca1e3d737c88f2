package registry

import (
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
)

// ApplyFunc moves a value into the transform's target frame and returns the
// result. Implementations must not mutate the input.
type ApplyFunc func(value any, transform msg.TransformStamped) (any, error)

// ToMsgFunc converts a value into its canonical message form.
type ToMsgFunc func(value any) (any, error)

// FromMsgFunc converts a canonical message into a concrete representation.
type FromMsgFunc func(value any) (any, error)

// ConvertFunc converts directly between two representations, skipping the
// canonical form.
type ConvertFunc func(value any) (any, error)

// TypePair keys a direct conversion by source and destination type. Order
// matters: an entry for A -> B says nothing about B -> A.
type TypePair struct {
	From reflect.Type
	To   reflect.Type
}

func (p TypePair) String() string {
	return errors.TypeName(p.From) + " -> " + errors.TypeName(p.To)
}

// Registry holds the four function tables keyed by concrete type. Keys match
// by identity only: a registration for T does not cover *T, and no interface
// or assignability fallback exists. All methods are safe for concurrent use.
//
// The zero value is ready to use.
type Registry struct {
	apply   table[reflect.Type, ApplyFunc]
	toMsg   table[reflect.Type, ToMsgFunc]
	fromMsg table[reflect.Type, FromMsgFunc]
	direct  table[TypePair, ConvertFunc]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry. Extension packages register
// their types here at startup; code that needs isolation should build its
// own with New.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// RegisterApply registers fn as the apply function for key, replacing any
// previous entry. A nil key or fn panics.
func (r *Registry) RegisterApply(key reflect.Type, fn ApplyFunc) {
	if key == nil {
		panic("registry: RegisterApply with nil key")
	}
	if fn == nil {
		panic("registry: RegisterApply with nil function")
	}
	r.apply.put(key, fn)
	Logger().Debug("registered apply function", zap.String("type", errors.TypeName(key)))
}

// RegisterToMsg registers fn as the to-msg conversion for key, replacing any
// previous entry. A nil key or fn panics.
func (r *Registry) RegisterToMsg(key reflect.Type, fn ToMsgFunc) {
	if key == nil {
		panic("registry: RegisterToMsg with nil key")
	}
	if fn == nil {
		panic("registry: RegisterToMsg with nil function")
	}
	r.toMsg.put(key, fn)
	Logger().Debug("registered to-msg conversion", zap.String("type", errors.TypeName(key)))
}

// RegisterFromMsg registers fn as the from-msg conversion for key, replacing
// any previous entry. A nil key or fn panics.
func (r *Registry) RegisterFromMsg(key reflect.Type, fn FromMsgFunc) {
	if key == nil {
		panic("registry: RegisterFromMsg with nil key")
	}
	if fn == nil {
		panic("registry: RegisterFromMsg with nil function")
	}
	r.fromMsg.put(key, fn)
	Logger().Debug("registered from-msg conversion", zap.String("type", errors.TypeName(key)))
}

// RegisterDirect registers fn as the direct conversion from one type to
// another, replacing any previous entry for the pair. Nil types or fn panic.
func (r *Registry) RegisterDirect(from, to reflect.Type, fn ConvertFunc) {
	if from == nil || to == nil {
		panic("registry: RegisterDirect with nil type")
	}
	if fn == nil {
		panic("registry: RegisterDirect with nil function")
	}
	pair := TypePair{From: from, To: to}
	r.direct.put(pair, fn)
	Logger().Debug("registered direct conversion", zap.String("pair", pair.String()))
}

// LookupApply returns the apply function registered for key. A miss returns
// an unsupported-type error naming the key.
func (r *Registry) LookupApply(key reflect.Type) (ApplyFunc, error) {
	fn, ok := r.apply.get(key)
	if !ok {
		return nil, errors.UnsupportedType(errors.PhaseLookup, key)
	}
	return fn, nil
}

// LookupToMsg returns the to-msg conversion registered for key. A miss
// returns an unsupported-type error naming the key.
func (r *Registry) LookupToMsg(key reflect.Type) (ToMsgFunc, error) {
	fn, ok := r.toMsg.get(key)
	if !ok {
		return nil, errors.UnsupportedType(errors.PhaseLookup, key)
	}
	return fn, nil
}

// LookupFromMsg returns the from-msg conversion registered for key. A miss
// returns an unsupported-type error naming the key.
func (r *Registry) LookupFromMsg(key reflect.Type) (FromMsgFunc, error) {
	fn, ok := r.fromMsg.get(key)
	if !ok {
		return nil, errors.UnsupportedType(errors.PhaseLookup, key)
	}
	return fn, nil
}

// LookupDirect returns the direct conversion registered for the ordered
// pair. A miss returns an unsupported-type error naming both types.
func (r *Registry) LookupDirect(from, to reflect.Type) (ConvertFunc, error) {
	fn, ok := r.direct.get(TypePair{From: from, To: to})
	if !ok {
		return nil, errors.UnsupportedPair(errors.PhaseLookup, from, to)
	}
	return fn, nil
}

// Snapshot describes the current registry contents. Lists are sorted by
// type name so output is stable across runs.
type Snapshot struct {
	Apply   []string
	ToMsg   []string
	FromMsg []string
	Direct  []string
}

// Snapshot returns a point-in-time view of the registered keys, for
// diagnostics and tooling.
func (r *Registry) Snapshot() Snapshot {
	var s Snapshot

	for _, k := range r.apply.keys() {
		s.Apply = append(s.Apply, errors.TypeName(k))
	}
	for _, k := range r.toMsg.keys() {
		s.ToMsg = append(s.ToMsg, errors.TypeName(k))
	}
	for _, k := range r.fromMsg.keys() {
		s.FromMsg = append(s.FromMsg, errors.TypeName(k))
	}
	for _, p := range r.direct.keys() {
		s.Direct = append(s.Direct, p.String())
	}

	sort.Strings(s.Apply)
	sort.Strings(s.ToMsg)
	sort.Strings(s.FromMsg)
	sort.Strings(s.Direct)
	return s
}
