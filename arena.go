package dlist

// no relation / no terminal
const none = -1

type slot[T any] struct {
	value T
	prev  int
	next  int
	live  bool
}

// ArenaList keeps every node in a growable slot table and links them by slot
// index instead of by pointer. Removing a node clears both neighbours'
// indices and pushes the slot onto the free stack in the same step, so a
// node is destroyed exactly once and no stale relation survives it. Freed
// slots are recycled before the table grows.
//
// The zero value is not usable; call NewArenaList.
type ArenaList[T any] struct {
	slots  []slot[T]
	free   []int
	head   int
	tail   int
	length int

	// lifetime accounting, exposed through Live and Recycled
	allocs int
	frees  int
}

var _ List[int] = (*ArenaList[int])(nil)

func NewArenaList[T any]() *ArenaList[T] {
	return &ArenaList[T]{head: none, tail: none}
}

func (l *ArenaList[T]) alloc(value T) int {
	l.allocs++
	if n := len(l.free); n > 0 {
		idx := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[idx] = slot[T]{value: value, prev: none, next: none, live: true}
		return idx
	}
	l.slots = append(l.slots, slot[T]{value: value, prev: none, next: none, live: true})
	return len(l.slots) - 1
}

// release destroys the node in idx and returns its payload. The slot must
// still be live: freeing a slot twice is a corruption of the arena, not a
// recoverable condition.
func (l *ArenaList[T]) release(idx int) T {
	s := &l.slots[idx]
	if !s.live {
		panic("dlist: arena slot freed twice")
	}
	value := s.value
	var zero T
	s.value = zero
	s.prev = none
	s.next = none
	s.live = false
	l.free = append(l.free, idx)
	l.frees++
	return value
}

func (l *ArenaList[T]) PushFront(value T) {
	idx := l.alloc(value)
	l.slots[idx].next = l.head
	if l.head == none {
		l.tail = idx
	} else {
		l.slots[l.head].prev = idx
	}
	l.head = idx
	l.length++
}

func (l *ArenaList[T]) PushBack(value T) {
	idx := l.alloc(value)
	l.slots[idx].prev = l.tail
	if l.tail == none {
		l.head = idx
	} else {
		l.slots[l.tail].next = idx
	}
	l.tail = idx
	l.length++
}

func (l *ArenaList[T]) PopFront() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	idx := l.head
	next := l.slots[idx].next
	l.head = next
	if next == none {
		l.tail = none
	} else {
		l.slots[next].prev = none
	}
	l.length--
	return l.release(idx), true
}

func (l *ArenaList[T]) PopBack() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	idx := l.tail
	prev := l.slots[idx].prev
	l.tail = prev
	if prev == none {
		l.head = none
	} else {
		l.slots[prev].next = none
	}
	l.length--
	return l.release(idx), true
}

func (l *ArenaList[T]) Front() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.slots[l.head].value, true
}

func (l *ArenaList[T]) Back() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	return l.slots[l.tail].value, true
}

func (l *ArenaList[T]) WithFront(fn func(value T)) bool {
	if l.head == none {
		return false
	}
	fn(l.slots[l.head].value)
	return true
}

func (l *ArenaList[T]) WithBack(fn func(value T)) bool {
	if l.tail == none {
		return false
	}
	fn(l.slots[l.tail].value)
	return true
}

// WithFrontMut hands fn a pointer into the slot table. The pointer is only
// valid for the duration of fn, which is why one isn't returned.
func (l *ArenaList[T]) WithFrontMut(fn func(value *T)) bool {
	if l.head == none {
		return false
	}
	fn(&l.slots[l.head].value)
	return true
}

func (l *ArenaList[T]) WithBackMut(fn func(value *T)) bool {
	if l.tail == none {
		return false
	}
	fn(&l.slots[l.tail].value)
	return true
}

func (l *ArenaList[T]) Nth(index int) (T, bool) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, false
	}
	var idx int
	if index < l.length/2 {
		idx = l.head
		for i := 0; i < index; i++ {
			idx = l.slots[idx].next
		}
	} else {
		idx = l.tail
		for i := 0; i < l.length-index-1; i++ {
			idx = l.slots[idx].prev
		}
	}
	return l.slots[idx].value, true
}

func (l *ArenaList[T]) Len() int {
	return l.length
}

func (l *ArenaList[T]) IsEmpty() bool {
	return l.length == 0
}

// Clear destroys every node through the same removal path a pop uses, then
// drops the table.
func (l *ArenaList[T]) Clear() {
	for {
		if _, ok := l.PopFront(); !ok {
			break
		}
	}
	l.slots = nil
	l.free = nil
}

func (l *ArenaList[T]) Drain() *Drain[T] {
	return &Drain[T]{list: l}
}

func (l *ArenaList[T]) String() string {
	return render(func(fn func(value T)) {
		for idx := l.head; idx != none; idx = l.slots[idx].next {
			fn(l.slots[idx].value)
		}
	})
}

// Live reports how many nodes have been allocated and never destroyed. It
// always equals Len(); anything else is a leak.
func (l *ArenaList[T]) Live() int {
	return l.allocs - l.frees
}

// Recycled reports how many slots are waiting on the free stack.
func (l *ArenaList[T]) Recycled() int {
	return len(l.free)
}
