//go:build debug

package assert

import "fmt"

// Invariant checks an invariant condition and panics if violated in debug builds.
// Invariants are conditions the tag store must never break, such as a
// metadata carrier pointing at the value it was attached to.
// Use this for internal sanity checks, not for validating caller input.
//
// Example:
//
//	assert.Invariant(carrier == p, "carrier must be the tagged allocation")
func Invariant(ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("INVARIANT VIOLATION: %s", msg))
	}
}

// Same panics in debug builds when a and b are different pointers.
func Same[T any](a, b *T, msg string) {
	if a != b {
		panic(fmt.Sprintf("INVARIANT VIOLATION: %s (%p != %p)", msg, a, b))
	}
}
