package store

import (
	"reflect"
	"runtime"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trooper struct {
	ID   int
	Name string
}

func ptrOf[T any](v *T) (unsafe.Pointer, reflect.Type) {
	return unsafe.Pointer(v), reflect.TypeFor[*T]()
}

func TestTable_AttachLookup(t *testing.T) {
	t.Parallel()

	table := New[string]()
	fives := &trooper{ID: 5555, Name: "Fives"}
	p, typ := ptrOf(fives)

	_, _, ok := table.Lookup(p, typ)
	assert.False(t, ok, "untouched value must not be found")

	table.Attach(p, typ, "Clone Trooper")

	meta, carrier, ok := table.Lookup(p, typ)
	require.True(t, ok)
	assert.Equal(t, "Clone Trooper", meta)
	assert.Equal(t, p, carrier)
	assert.Equal(t, 1, table.Len())
}

func TestTable_AttachOverwrites(t *testing.T) {
	t.Parallel()

	table := New[string]()
	rex := &trooper{ID: 7567, Name: "Rex"}
	p, typ := ptrOf(rex)

	table.Attach(p, typ, "Trooper")
	table.Attach(p, typ, "Captain")

	meta, _, ok := table.Lookup(p, typ)
	require.True(t, ok)
	assert.Equal(t, "Captain", meta)
	assert.Equal(t, 1, table.Len())
}

func TestTable_DistinctTypesSameAddress(t *testing.T) {
	t.Parallel()

	table := New[string]()
	cody := &trooper{ID: 2224, Name: "Cody"}
	whole, wholeType := ptrOf(cody)
	field, fieldType := ptrOf(&cody.ID)
	require.Equal(t, whole, field, "first field shares the struct address")

	table.Attach(whole, wholeType, "Commander")

	_, _, ok := table.Lookup(field, fieldType)
	assert.False(t, ok, "field must not inherit the struct's tag")

	table.Attach(field, fieldType, "Number")
	meta, _, ok := table.Lookup(whole, wholeType)
	require.True(t, ok)
	assert.Equal(t, "Commander", meta)
	assert.Equal(t, 2, table.Len())
}

func TestTable_DistinctAllocations(t *testing.T) {
	t.Parallel()

	table := New[int]()
	a := &trooper{Name: "Hevy"}
	b := &trooper{Name: "Hevy"}

	pa, typ := ptrOf(a)
	pb, _ := ptrOf(b)
	table.Attach(pa, typ, 1)

	_, _, ok := table.Lookup(pb, typ)
	assert.False(t, ok, "structurally equal values are distinct allocations")
}

//go:noinline
func attachGarbage(table *Table[string], n int) {
	for i := 0; i < n; i++ {
		v := &trooper{ID: i, Name: "Droidbait"}
		p, typ := ptrOf(v)
		table.Attach(p, typ, "Trooper")
	}
}

func TestTable_EntriesCollected(t *testing.T) {
	table := New[string]()
	attachGarbage(table, 64)
	require.Equal(t, 64, table.Len())

	assert.Eventually(t, func() bool {
		runtime.GC()
		return table.Len() == 0
	}, 5*time.Second, 10*time.Millisecond, "entries should be removed once values are collected")
}

func TestTable_LiveEntriesSurviveGC(t *testing.T) {
	table := New[string]()
	echo := &trooper{ID: 1409, Name: "Echo"}
	p, typ := ptrOf(echo)
	table.Attach(p, typ, "Arc Trooper")

	runtime.GC()
	runtime.GC()

	meta, _, ok := table.Lookup(unsafe.Pointer(echo), typ)
	require.True(t, ok)
	assert.Equal(t, "Arc Trooper", meta)
	runtime.KeepAlive(echo)
}
