//go:build !debug

package assert

// Invariant is a no-op outside debug builds.
func Invariant(ok bool, msg string) {}

// Same is a no-op outside debug builds.
func Same[T any](a, b *T, msg string) {}
