// Package yatabl attaches nominal identity to structurally typed values.
//
// A tag marks a value as having passed a named creation or validation step.
// Tagging never copies and never changes the value's shape: the tag lives in
// a side table keyed by the value's allocation, so code that does not know
// about yatabl sees exactly the value it always saw, and every other
// reference to the same allocation observes the tag too.
//
// Quick Start:
//
//	type Trooper struct {
//	    ID   int
//	    Rank string
//	    Name string
//	}
//
//	// Step 1: define a tagger
//	Clone := yatabl.TagFuncAs(yatabl.Name("Clone Trooper"), yatabl.Identity[Trooper]())
//
//	// Step 2: use it wherever values are created
//	fives, err := Clone(&Trooper{ID: 5555, Rank: "Trooper", Name: "Fives"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	yatabl.IsTaggedAs(yatabl.Name("Clone Trooper"), fives) // true
//	yatabl.IsTaggedAs(yatabl.Name("Jedi General"), fives)  // false
//
// Constructors come in four shapes: Tag (value), TagAs (identifier and value),
// TagFunc (yatable) and TagFuncAs (identifier and yatable). TagArgs offers the
// same four shapes behind a single entry point that dispatches on the runtime
// kind of its arguments.
//
// Values are tagged through pointers. Record, List and Container cover maps,
// sequences and primitives; any other non-zero-size type works the same way.
// A tag lasts as long as the value is reachable and is never serialized.
//
// The library performs no synchronization of its own for a given value:
// callers must not tag the same value from several goroutines at once if the
// outcome matters.
package yatabl
