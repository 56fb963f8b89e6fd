package yatabl

// Brand is implemented by marker types that name a tagging scheme at compile
// time, usually empty structs:
//
//	type CloneTrooper struct{}
//
//	func (CloneTrooper) Identifier() yatabl.Identifier { return yatabl.Name("Clone Trooper") }
//
// Identifier must return the same identifier on every call. A token brand
// therefore stores its token in a package variable.
type Brand interface {
	Identifier() Identifier
}

// Branded is a *T statically known to carry brand B's tag. It is the typed
// counterpart of a tagged value: functions can demand Branded[B, T] where
// they would otherwise have to call IsTaggedAs themselves.
//
// The zero Branded holds a nil pointer and was never produced by this
// package; obtain values through Mark, MarkFunc or As.
type Branded[B Brand, T any] struct {
	v *T
}

// Value strips the compile-time brand and returns the underlying pointer.
// The runtime tag is left in place.
func (b Branded[B, T]) Value() *T {
	return b.v
}

// Identifier returns B's identifier.
func (b Branded[B, T]) Identifier() Identifier {
	return brandID[B]()
}

// Mark tags v with B's identifier and returns it branded.
//
// Mark panics with a *ContractError if v is nil or T has zero size.
func Mark[B Brand, T any](v *T) Branded[B, T] {
	return Branded[B, T]{v: tagAs("Mark", brandID[B](), v)}
}

// MarkFunc wraps f so that its results are tagged with B's identifier and
// returned branded. Errors from f propagate unchanged.
func MarkFunc[B Brand, T, U any](f Yatable[T, U]) func(U) (Branded[B, T], error) {
	tagged := tagFunc("MarkFunc", brandID[B](), f)
	return func(in U) (Branded[B, T], error) {
		v, err := tagged(in)
		if err != nil {
			return Branded[B, T]{}, err
		}
		return Branded[B, T]{v: v}, nil
	}
}

// As brands v if it currently carries B's tag.
func As[B Brand, T any](v *T) (Branded[B, T], bool) {
	if !IsTaggedAs(brandID[B](), v) {
		return Branded[B, T]{}, false
	}
	return Branded[B, T]{v: v}, true
}

func brandID[B Brand]() Identifier {
	var b B
	return b.Identifier()
}
