package yatabl

// Yatable builds or validates a *T from an input U. A non-nil error is a
// validation failure; the library returns it to the caller untouched.
type Yatable[T, U any] func(U) (*T, error)

// Identity returns a Yatable that performs no validation and hands its input
// back unchanged. Use it when a value needs the tagging ceremony but no
// checks.
func Identity[T any]() Yatable[T, *T] {
	return func(v *T) (*T, error) {
		return v, nil
	}
}

// Record is a keyed structural value. Tag it through a *Record.
type Record map[string]any

// List is a sequence structural value. Tag it through a *List.
type List []any

// Container boxes a value of any type, including primitives, so it has an
// allocation that can carry a tag.
type Container[T any] struct {
	Value T
}

// NewContainer returns a fresh *Container holding value.
func NewContainer[T any](value T) *Container[T] {
	return &Container[T]{Value: value}
}
