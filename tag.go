package yatabl

import (
	"reflect"
	"unsafe"

	"github.com/sufield/yatabl/internal/store"
)

// metadata is the tag record kept in the side table. The carrier lives in the
// table's key.
type metadata struct {
	id Identifier
}

var tags = store.New[metadata]()

// Tag marks v as having passed through an anonymous tagger and returns v
// itself. Any other reference to the same allocation observes the tag.
// Re-tagging replaces the previous tag. v must not point to a package-level
// variable.
//
// Tag panics with a *ContractError if v is nil or T has zero size.
func Tag[T any](v *T) *T {
	return tagAs("Tag", Anonymous, v)
}

// TagAs marks v with id and returns v itself.
//
// TagAs panics with a *ContractError if v is nil or T has zero size.
func TagAs[T any](id Identifier, v *T) *T {
	return tagAs("TagAs", id, v)
}

// TagFunc wraps f so that every value it produces is tagged anonymously.
// Errors and panics from f propagate unchanged.
func TagFunc[T, U any](f Yatable[T, U]) Yatable[T, U] {
	return tagFunc("TagFunc", Anonymous, f)
}

// TagFuncAs wraps f so that every value it produces is tagged with id.
// Errors and panics from f propagate unchanged.
//
// Example:
//
//	Clone := yatabl.TagFuncAs(yatabl.Name("Clone Trooper"), yatabl.Identity[Trooper]())
//	fives, err := Clone(&Trooper{ID: 5555, Rank: "Trooper", Name: "Fives"})
func TagFuncAs[T, U any](id Identifier, f Yatable[T, U]) Yatable[T, U] {
	return tagFunc("TagFuncAs", id, f)
}

func tagAs[T any](op string, id Identifier, v *T) *T {
	if err := checkTaggable(op, v); err != nil {
		panic(err)
	}
	attach(v, id)
	return v
}

func tagFunc[T, U any](op string, id Identifier, f Yatable[T, U]) Yatable[T, U] {
	return func(in U) (*T, error) {
		v, err := f(in)
		if err != nil {
			return nil, err
		}
		if err := checkTaggable(op, v); err != nil {
			err.Reason = "yatable returned " + err.Reason
			return nil, err
		}
		attach(v, id)
		return v, nil
	}
}

func checkTaggable[T any](op string, v *T) *ContractError {
	typ := reflect.TypeFor[*T]()
	if v == nil {
		return contractErrorf(op, ErrNilValue, "nil %s", typ)
	}
	if typ.Elem().Size() == 0 {
		return contractErrorf(op, ErrZeroSize, "%s", typ)
	}
	return nil
}

func attach[T any](v *T, id Identifier) {
	tags.Attach(unsafe.Pointer(v), reflect.TypeFor[*T](), metadata{id: id})
}

func lookup[T any](v *T) (metadata, *T, bool) {
	typ := reflect.TypeFor[*T]()
	if v == nil || typ.Elem().Size() == 0 {
		return metadata{}, nil, false
	}
	meta, carrier, ok := tags.Lookup(unsafe.Pointer(v), typ)
	return meta, (*T)(carrier), ok
}
