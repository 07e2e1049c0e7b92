// A doubly-linked list implemented twice behind one contract: ArenaList owns
// its nodes through an index arena, SharedList through explicit reference
// counts. Pick whichever ownership discipline you want to pay for; the API
// is the same.
package dlist

import (
	"fmt"
	"strings"
)

// List is the contract both engines implement.
//
// "Front" is the head end: position 0, the first value rendered by String.
// "Back" is the tail end. PushFront really does insert at position 0 (see
// From for the consequence this has on literal construction).
//
// Every pop, peek and Nth miss reports absence through its ok result and
// never panics. The only panics either engine raises are contract
// violations: aliased mutable access on SharedList, or corrupting an engine
// through its internals.
type List[T any] interface {
	fmt.Stringer

	PushFront(value T)
	PushBack(value T)

	PopFront() (T, bool)
	PopBack() (T, bool)

	Front() (T, bool)
	Back() (T, bool)

	// WithFront and WithBack run fn against the terminal value without
	// copying it out. WithFrontMut and WithBackMut do the same with an
	// exclusive *T. fn must not mutate the list. The bool reports whether
	// fn ran (it doesn't on an empty list).
	WithFront(fn func(value T)) bool
	WithBack(fn func(value T)) bool
	WithFrontMut(fn func(value *T)) bool
	WithBackMut(fn func(value *T)) bool

	// Nth returns the value index steps from the front. It walks from
	// whichever terminal is closer, so it never takes more than Len()/2
	// steps.
	Nth(index int) (T, bool)

	Len() int
	IsEmpty() bool

	// Clear removes and destroys every node, returning the list to its
	// empty state.
	Clear()

	// Drain returns a consuming iterator over the list. See Drain.
	Drain() *Drain[T]
}

// A Drain removes values as it produces them: every Next is a PopFront, and
// iterating to completion leaves the list empty. It is a destructive drain,
// not a read-only view.
type Drain[T any] struct {
	list List[T]
}

// Next removes and returns the front value. ok is false once the list is
// empty.
func (d *Drain[T]) Next() (value T, ok bool) {
	return d.list.PopFront()
}

// Both engines render as [v1, v2, ..., vn] from front to back, [] when
// empty. each is the engine's forward traversal.
func render[T any](each func(fn func(value T))) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	each(func(value T) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", value)
	})
	b.WriteByte(']')
	return b.String()
}
