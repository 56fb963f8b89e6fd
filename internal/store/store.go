// Package store implements the side table that associates tag metadata with
// arbitrary Go allocations.
//
// Entries are keyed by a weak pointer to the allocation plus the dynamic type
// of the pointer used to reach it, so a struct and its first field (same
// address, different types) carry independent metadata. The table never holds
// a strong reference to a tagged value: once the value becomes unreachable a
// runtime cleanup removes its entry.
//
// Pointers handed to the table must reference heap values of non-zero size.
// Callers enforce the size check before calling Attach; package-level
// variables are not heap values and cannot be keyed.
package store

import (
	"reflect"
	"runtime"
	"sync"
	"unsafe"
	"weak"

	"github.com/sufield/yatabl/internal/assert"
	"github.com/sufield/yatabl/internal/debug"
)

type key struct {
	ptr weak.Pointer[byte]
	typ reflect.Type
}

type entry[M any] struct {
	carrier weak.Pointer[byte]
	meta    M
}

// Table maps allocations to metadata of type M.
//
// Thread-safety: the mutex exists because cleanups run on a runtime
// goroutine. It does not order concurrent Attach calls on the same value;
// the last one to take the lock wins.
type Table[M any] struct {
	mu      sync.Mutex
	entries map[key]entry[M]
}

// New returns an empty table.
func New[M any]() *Table[M] {
	return &Table[M]{entries: make(map[key]entry[M])}
}

func makeKey(p unsafe.Pointer, typ reflect.Type) key {
	return key{ptr: weak.Make((*byte)(p)), typ: typ}
}

// Attach records meta for the allocation at p, reached through a pointer of
// type typ. An existing entry is overwritten.
func (t *Table[M]) Attach(p unsafe.Pointer, typ reflect.Type, meta M) {
	k := makeKey(p, typ)

	t.mu.Lock()
	_, exists := t.entries[k]
	t.entries[k] = entry[M]{carrier: k.ptr, meta: meta}
	if !exists {
		runtime.AddCleanup((*byte)(p), t.remove, k)
	}
	t.mu.Unlock()

	debug.GetLogger().Debugw("tag attached",
		"type", typ.String(),
		"replaced", exists,
	)
}

// Lookup returns the metadata recorded for p and the carrier it was attached
// to. The carrier is always p itself.
func (t *Table[M]) Lookup(p unsafe.Pointer, typ reflect.Type) (M, unsafe.Pointer, bool) {
	k := makeKey(p, typ)

	t.mu.Lock()
	e, ok := t.entries[k]
	t.mu.Unlock()

	if !ok {
		var zero M
		return zero, nil, false
	}

	carrier := unsafe.Pointer(e.carrier.Value())
	assert.Invariant(carrier == p, "tag carrier must be the allocation it is attached to")
	return e.meta, carrier, true
}

// Len returns the number of live entries.
func (t *Table[M]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Table[M]) remove(k key) {
	t.mu.Lock()
	delete(t.entries, k)
	t.mu.Unlock()

	debug.GetLogger().Debugw("tag entry collected", "type", k.typ.String())
}
