package yatabl

import (
	"fmt"
	"reflect"
)

// DynamicYatable is the factory TagArgs returns when it is given a function.
// in must be assignable to the wrapped function's parameter type.
type DynamicYatable func(in any) (any, error)

var errorType = reflect.TypeFor[error]()

// TagArgs is the single polymorphic entry point of the tagging protocol. It
// inspects the runtime shape of its arguments and behaves like one of the
// four named constructors:
//
//	TagArgs(f)       like TagFunc:   returns a DynamicYatable, anonymous tags
//	TagArgs(v)       like Tag:       returns v, tagged anonymously
//	TagArgs(id, f)   like TagFuncAs: returns a DynamicYatable, tags with id
//	TagArgs(id, v)   like TagAs:     returns v, tagged with id
//
// id is an Identifier or a string (treated as Name(s)). v is a non-nil pointer
// to a value of non-zero size. f is a function of one argument returning
// either P or (P, error), where P is a pointer type.
//
// Any other shape returns a *ContractError; nothing is tagged in that case.
func TagArgs(args ...any) (any, error) {
	const op = "TagArgs"

	switch len(args) {
	case 1:
		return tagTarget(op, Anonymous, args[0])
	case 2:
		id, ok := identifierOf(args[0])
		if !ok {
			return nil, contractErrorf(op, ErrUnsupportedArgs,
				"first of two arguments must be an Identifier or string, got %s", describe(args[0]))
		}
		return tagTarget(op, id, args[1])
	default:
		return nil, contractErrorf(op, ErrUnsupportedArgs, "expected 1 or 2 arguments, got %d", len(args))
	}
}

// IsTaggedArgs is the polymorphic form of IsTagged and IsTaggedAs:
//
//	IsTaggedArgs(v)       like IsTagged(v)
//	IsTaggedArgs(id, v)   like IsTaggedAs(id, v)
//
// v must be a pointer (a nil pointer is simply not tagged). Other shapes
// return a *ContractError.
func IsTaggedArgs(args ...any) (bool, error) {
	const op = "IsTaggedArgs"

	switch len(args) {
	case 1:
		meta, err := lookupArg(op, args[0])
		return meta != nil, err
	case 2:
		id, ok := identifierOf(args[0])
		if !ok {
			return false, contractErrorf(op, ErrUnsupportedArgs,
				"first of two arguments must be an Identifier or string, got %s", describe(args[0]))
		}
		meta, err := lookupArg(op, args[1])
		return meta != nil && meta.id == id, err
	default:
		return false, contractErrorf(op, ErrUnsupportedArgs, "expected 1 or 2 arguments, got %d", len(args))
	}
}

func identifierOf(arg any) (Identifier, bool) {
	switch v := arg.(type) {
	case Identifier:
		return v, true
	case string:
		return Name(v), true
	default:
		return Anonymous, false
	}
}

func tagTarget(op string, id Identifier, target any) (any, error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil, contractErrorf(op, ErrNilValue, "untyped nil")
	}

	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return nil, contractErrorf(op, ErrNilValue, "nil %s", rv.Type())
		}
		if err := checkYatableSignature(op, rv.Type()); err != nil {
			return nil, err
		}
		return wrapDynamic(op, id, rv), nil
	case reflect.Pointer:
		if err := checkTaggableValue(op, rv); err != nil {
			return nil, err
		}
		attachValue(rv, id)
		return target, nil
	default:
		if _, isID := identifierOf(target); isID {
			return nil, contractErrorf(op, ErrUnsupportedArgs, "identifier %q given without a value to tag", fmt.Sprint(target))
		}
		return nil, contractErrorf(op, ErrUnsupportedArgs,
			"cannot tag %s: want a pointer or a yatable function", describe(target))
	}
}

func checkYatableSignature(op string, ft reflect.Type) *ContractError {
	if ft.NumIn() != 1 || ft.IsVariadic() {
		return contractErrorf(op, ErrUnsupportedArgs, "yatable %s must take exactly one argument", ft)
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errorType {
			return contractErrorf(op, ErrUnsupportedArgs, "yatable %s: second result must be error", ft)
		}
	default:
		return contractErrorf(op, ErrUnsupportedArgs, "yatable %s must return P or (P, error)", ft)
	}
	if ft.Out(0).Kind() != reflect.Pointer {
		return contractErrorf(op, ErrUnsupportedArgs, "yatable %s must return a pointer", ft)
	}
	return nil
}

func wrapDynamic(op string, id Identifier, fn reflect.Value) DynamicYatable {
	ft := fn.Type()
	return func(in any) (any, error) {
		arg, err := argValue(op, ft.In(0), in)
		if err != nil {
			return nil, err
		}

		out := fn.Call([]reflect.Value{arg})
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}

		v := out[0]
		if err := checkTaggableValue(op, v); err != nil {
			err.Reason = "yatable returned " + err.Reason
			return nil, err
		}
		attachValue(v, id)
		return v.Interface(), nil
	}
}

func argValue(op string, param reflect.Type, in any) (reflect.Value, *ContractError) {
	if in == nil {
		switch param.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(param), nil
		}
		return reflect.Value{}, contractErrorf(op, ErrUnsupportedArgs, "yatable input: nil is not a %s", param)
	}

	rv := reflect.ValueOf(in)
	if !rv.Type().AssignableTo(param) {
		return reflect.Value{}, contractErrorf(op, ErrUnsupportedArgs,
			"yatable input: %s is not assignable to %s", rv.Type(), param)
	}
	return rv, nil
}

func checkTaggableValue(op string, rv reflect.Value) *ContractError {
	if rv.IsNil() {
		return contractErrorf(op, ErrNilValue, "nil %s", rv.Type())
	}
	if rv.Type().Elem().Size() == 0 {
		return contractErrorf(op, ErrZeroSize, "%s", rv.Type())
	}
	return nil
}

func attachValue(rv reflect.Value, id Identifier) {
	tags.Attach(rv.UnsafePointer(), rv.Type(), metadata{id: id})
}

// lookupArg returns the metadata of a pointer argument, nil when untagged.
func lookupArg(op string, arg any) (*metadata, error) {
	rv := reflect.ValueOf(arg)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer {
		return nil, contractErrorf(op, ErrUnsupportedArgs, "want a pointer, got %s", describe(arg))
	}
	if rv.IsNil() || rv.Type().Elem().Size() == 0 {
		return nil, nil
	}
	meta, _, ok := tags.Lookup(rv.UnsafePointer(), rv.Type())
	if !ok {
		return nil, nil
	}
	return &meta, nil
}

func describe(arg any) string {
	if arg == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", arg)
}
