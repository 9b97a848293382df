package bridge

import (
	"reflect"

	"github.com/localekit/resbridge"
	"github.com/localekit/resbridge/errors"
)

var (
	uint32Type = reflect.TypeOf(uint32(0))
	stringType = reflect.TypeOf("")
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// resolverOf obtains the resource resolution capability from a context value.
// Contexts implementing resbridge.ResourceProvider dispatch directly; any
// other value is looked up by method name, the way foreign runtimes resolve
// methods dynamically. Both lookups complete before any resolution happens.
func resolverOf(v any) (resbridge.StringResolver, error) {
	if v == nil {
		return nil, errors.New(errors.PhaseResolve, errors.KindCapabilityMissing).
			Detail("context is nil").
			Build()
	}

	if p, ok := v.(resbridge.ResourceProvider); ok {
		sr := p.Resources()
		if sr == nil {
			return nil, errors.CapabilityMissing(errors.PhaseResolve, reflect.TypeOf(v).String(), "Resources")
		}
		return sr, nil
	}

	return reflectResolver(v)
}

// reflectResolver performs the dynamic lookup path: find a Resources method
// on the context, invoke it, then find a String method on the accessor.
func reflectResolver(v any) (resbridge.StringResolver, error) {
	rv := reflect.ValueOf(v)
	goType := rv.Type().String()

	m := rv.MethodByName("Resources")
	if !m.IsValid() {
		return nil, errors.CapabilityMissing(errors.PhaseResolve, goType, "Resources")
	}

	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, errors.New(errors.PhaseResolve, errors.KindTypeMismatch).
			GoType(goType).
			Detail("Resources method must take no arguments and return one value").
			Build()
	}

	accessor := m.Call(nil)[0]
	if accessor.Kind() == reflect.Interface || accessor.Kind() == reflect.Pointer {
		if accessor.IsNil() {
			return nil, errors.CapabilityMissing(errors.PhaseResolve, goType, "Resources")
		}
	}

	if sr, ok := accessor.Interface().(resbridge.StringResolver); ok {
		return sr, nil
	}

	// Method lookup happens on the dynamic type, not the declared one.
	if accessor.Kind() == reflect.Interface {
		accessor = accessor.Elem()
	}
	return bindStringMethod(accessor)
}

// bindStringMethod validates the accessor's String method shape and wraps it.
// Accepted shapes: String(uint32) (string, error) and String(uint32) string.
func bindStringMethod(accessor reflect.Value) (resbridge.StringResolver, error) {
	goType := accessor.Type().String()

	m := accessor.MethodByName("String")
	if !m.IsValid() {
		return nil, errors.CapabilityMissing(errors.PhaseResolve, goType, "String")
	}

	mt := m.Type()
	valid := mt.NumIn() == 1 && mt.In(0) == uint32Type &&
		(mt.NumOut() == 1 || mt.NumOut() == 2) &&
		mt.Out(0) == stringType &&
		(mt.NumOut() == 1 || mt.Out(1) == errorType)
	if !valid {
		return nil, errors.New(errors.PhaseResolve, errors.KindTypeMismatch).
			GoType(goType).
			Detail("String method must have shape func(uint32) (string, error) or func(uint32) string").
			Build()
	}

	return boundResolver{fn: m}, nil
}

// boundResolver adapts a reflectively looked-up String method to the
// StringResolver contract. It holds the bound method only for the duration
// of one resolve call.
type boundResolver struct {
	fn reflect.Value
}

func (r boundResolver) String(id uint32) (string, error) {
	out := r.fn.Call([]reflect.Value{reflect.ValueOf(id)})

	text := out[0].String()
	if len(out) == 2 && !out[1].IsNil() {
		return "", out[1].Interface().(error)
	}
	return text, nil
}
