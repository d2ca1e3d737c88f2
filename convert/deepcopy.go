package convert

import "reflect"

// deepCopy returns an independent copy of v. The whole value is copied by
// assignment first, then slices, maps, pointers, and interfaces reachable
// through exported fields are replaced with fresh copies, recursively.
// Unexported fields keep the assigned value; the message types this handles
// hold only value-semantics data there (time.Time).
func deepCopy(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	out := reflect.New(rv.Type()).Elem()
	out.Set(rv)
	unalias(out)
	return out.Interface()
}

// unalias replaces any reference values reachable through v with copies.
// v must be addressable.
func unalias(v reflect.Value) {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		elem := reflect.New(v.Type().Elem())
		elem.Elem().Set(v.Elem())
		unalias(elem.Elem())
		v.Set(elem)

	case reflect.Slice:
		if v.IsNil() {
			return
		}
		s := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(s, v)
		for i := 0; i < s.Len(); i++ {
			unalias(s.Index(i))
		}
		v.Set(s)

	case reflect.Map:
		if v.IsNil() {
			return
		}
		m := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			val := reflect.New(iter.Value().Type()).Elem()
			val.Set(iter.Value())
			unalias(val)
			m.SetMapIndex(iter.Key(), val)
		}
		v.Set(m)

	case reflect.Interface:
		if v.IsNil() {
			return
		}
		elem := reflect.New(v.Elem().Type()).Elem()
		elem.Set(v.Elem())
		unalias(elem)
		v.Set(elem)

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			// Unexported fields were carried over by the enclosing
			// assignment and cannot be set here.
			if !f.CanSet() {
				continue
			}
			unalias(f)
		}

	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			unalias(v.Index(i))
		}
	}
}
