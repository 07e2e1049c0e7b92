package dlist

// sharedNode carries its own ownership state: a strong count (owners that
// keep it alive), a weak count (back links that observe it), and a borrow
// flag guarding the payload. Forward links and the two terminal slots are
// strong owners; prev is always weak and has to be upgraded before use.
type sharedNode[T any] struct {
	value   T
	strong  int
	weak    int
	borrows int // > 0 shared borrows, -1 exclusively borrowed
	dead    bool
	next    *sharedNode[T] // strong
	prev    *sharedNode[T] // weak
}

func (n *sharedNode[T]) retain() *sharedNode[T] {
	n.strong++
	return n
}

// release drops one strong reference. The last release destroys the node:
// the payload is cleared and any later upgrade of a weak reference to it
// reports absence.
func (n *sharedNode[T]) release() {
	if n.strong == 0 {
		panic("dlist: release of a destroyed node")
	}
	n.strong--
	if n.strong == 0 {
		n.destroy()
	}
}

func (n *sharedNode[T]) destroy() {
	var zero T
	n.value = zero
	n.next = nil
	n.dead = true
}

// upgrade converts a weak reference into a strong one, or reports absence
// if the target has already been destroyed. The caller owns the returned
// reference and must release it.
func (n *sharedNode[T]) upgrade() *sharedNode[T] {
	if n == nil || n.dead {
		return nil
	}
	return n.retain()
}

// unwrap takes the payload out of a node whose only remaining strong owner
// is the caller. A second live owner means a terminal slot wasn't released
// first; that is a bug in the removal algorithm, so it fails loudly.
func (n *sharedNode[T]) unwrap() T {
	if n.strong != 1 {
		panic("dlist: unwrap of a node that is still shared")
	}
	if n.borrows != 0 {
		panic("dlist: unwrap of a borrowed node")
	}
	n.strong = 0
	value := n.value
	n.destroy()
	return value
}

func (n *sharedNode[T]) borrow() {
	if n.borrows == -1 {
		panic("dlist: node is already mutably borrowed")
	}
	n.borrows++
}

func (n *sharedNode[T]) unborrow() {
	n.borrows--
}

func (n *sharedNode[T]) borrowMut() {
	if n.borrows != 0 {
		panic("dlist: node is already borrowed")
	}
	n.borrows = -1
}

func (n *sharedNode[T]) unborrowMut() {
	n.borrows = 0
}

// SharedList owns its nodes through the reference counts on sharedNode. A
// node stays alive as long as its predecessor's next link or a terminal
// slot still owns it; back links never keep anything alive. Payload access
// goes through runtime borrows, so holding two mutable views into one node
// panics instead of silently aliasing.
//
// A one-node list has two strong owners, the head slot and the tail slot.
// Both pops release the far terminal before unwrapping for exactly that
// reason.
type SharedList[T any] struct {
	head   *sharedNode[T] // strong
	tail   *sharedNode[T] // strong
	length int
}

var _ List[int] = (*SharedList[int])(nil)

func NewSharedList[T any]() *SharedList[T] {
	return &SharedList[T]{}
}

func (l *SharedList[T]) PushFront(value T) {
	node := &sharedNode[T]{value: value}
	if l.head == nil {
		l.head = node.retain()
		l.tail = node.retain()
	} else {
		old := l.head
		node.next = old // the head slot's reference moves into the new link
		old.prev = node
		node.weak++
		l.head = node.retain()
	}
	l.length++
}

func (l *SharedList[T]) PushBack(value T) {
	node := &sharedNode[T]{value: value}
	if l.tail == nil {
		l.head = node.retain()
		l.tail = node.retain()
	} else {
		old := l.tail
		old.next = node.retain()
		node.prev = old
		old.weak++
		l.tail = node.retain()
		old.release() // the tail slot no longer owns old
	}
	l.length++
}

func (l *SharedList[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	if l.length == 1 {
		l.tail.release()
		l.tail = nil
	}
	old := l.head
	l.head = nil
	if next := old.next; next != nil {
		old.next = nil // that reference becomes the head slot's
		next.prev = nil
		old.weak--
		l.head = next
	}
	l.length--
	return old.unwrap(), true
}

func (l *SharedList[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	if l.length == 1 {
		l.head.release()
		l.head = nil
	}
	old := l.tail
	l.tail = nil
	if back := old.prev; back != nil {
		old.prev = nil
		back.weak--
		if prev := back.upgrade(); prev != nil {
			prev.next = nil
			old.release() // the forward link no longer owns old
			l.tail = prev // the upgraded reference becomes the tail slot's
		}
	}
	l.length--
	return old.unwrap(), true
}

func (l *SharedList[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	n.borrow()
	value := n.value
	n.unborrow()
	return value, true
}

func (l *SharedList[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	n.borrow()
	value := n.value
	n.unborrow()
	return value, true
}

func (l *SharedList[T]) WithFront(fn func(value T)) bool {
	if l.head == nil {
		return false
	}
	return l.withShared(l.head, fn)
}

func (l *SharedList[T]) WithBack(fn func(value T)) bool {
	if l.tail == nil {
		return false
	}
	return l.withShared(l.tail, fn)
}

func (l *SharedList[T]) WithFrontMut(fn func(value *T)) bool {
	if l.head == nil {
		return false
	}
	return l.withExclusive(l.head, fn)
}

func (l *SharedList[T]) WithBackMut(fn func(value *T)) bool {
	if l.tail == nil {
		return false
	}
	return l.withExclusive(l.tail, fn)
}

func (l *SharedList[T]) withShared(n *sharedNode[T], fn func(value T)) bool {
	n.borrow()
	defer n.unborrow()
	fn(n.value)
	return true
}

func (l *SharedList[T]) withExclusive(n *sharedNode[T], fn func(value *T)) bool {
	n.borrowMut()
	defer n.unborrowMut()
	fn(&n.value)
	return true
}

func (l *SharedList[T]) Nth(index int) (T, bool) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, false
	}
	var n *sharedNode[T]
	if index < l.length/2 {
		n = l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
	} else {
		n = l.tail
		for i := 0; i < l.length-index-1; i++ {
			prev := n.prev.upgrade()
			if prev == nil {
				var zero T
				return zero, false
			}
			prev.release() // observing only; the list's owners keep it alive
			n = prev
		}
	}
	n.borrow()
	value := n.value
	n.unborrow()
	return value, true
}

func (l *SharedList[T]) Len() int {
	return l.length
}

func (l *SharedList[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *SharedList[T]) Clear() {
	for {
		if _, ok := l.PopFront(); !ok {
			break
		}
	}
}

func (l *SharedList[T]) Drain() *Drain[T] {
	return &Drain[T]{list: l}
}

func (l *SharedList[T]) String() string {
	return render(func(fn func(value T)) {
		for n := l.head; n != nil; n = n.next {
			n.borrow()
			fn(n.value)
			n.unborrow()
		}
	})
}
