package dlist

import (
	"math/rand"
	"testing"

	. "github.com/karlseguin/expect"

	"github.com/karlseguin/dlist/assert"
)

type ArenaTests struct{}

func Test_Arena(t *testing.T) {
	Expectify(new(ArenaTests), t)
}

func (a *ArenaTests) RecyclesFreedSlots() {
	l := NewArenaList[int]()
	for i := 0; i < 100; i++ {
		l.PushFront(i)
		value, ok := l.PopFront()
		Expect(ok).To.Equal(true)
		Expect(value).To.Equal(i)
	}
	// one slot serviced all hundred nodes
	Expect(len(l.slots)).To.Equal(1)
	Expect(l.Recycled()).To.Equal(1)
	Expect(l.Live()).To.Equal(0)
}

func (a *ArenaTests) GrowsOnlyWhenFull() {
	l := NewArenaList[int]()
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	Expect(len(l.slots)).To.Equal(10)

	l.PopFront()
	l.PopBack()
	l.PushFront(90)
	l.PushBack(91)
	Expect(len(l.slots)).To.Equal(10)
	Expect(l.Recycled()).To.Equal(0)
}

func (a *ArenaTests) CountsLiveNodes() {
	l := NewArenaList[string]()
	Expect(l.Live()).To.Equal(0)

	l.PushFront("spice")
	l.PushBack("worm")
	Expect(l.Live()).To.Equal(2)

	l.PopBack()
	Expect(l.Live()).To.Equal(1)

	l.Clear()
	Expect(l.Live()).To.Equal(0)
	Expect(l.allocs).To.Equal(l.frees)
}

func (a *ArenaTests) RemovalClearsBothRelations() {
	l := NewArenaList[int]()
	l.PushBack(0)
	l.PushBack(1)
	l.PushBack(2)

	l.PopFront()
	Expect(l.slots[l.head].prev).To.Equal(none)

	l.PopBack()
	Expect(l.slots[l.head].next).To.Equal(none)
	Expect(l.head).To.Equal(l.tail)
}

func Test_Arena_DoubleFreePanics(t *testing.T) {
	l := NewArenaList[int]()
	l.PushFront(1)
	l.PopFront()
	assert.Panics(t, "freed twice", func() {
		l.release(0)
	})
}

// randomized insert/remove sequences never leak a slot or free one twice
func Test_Arena_NoLeaksUnderRandomizedOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1138))
	l := NewArenaList[int]()
	live := 0

	for i := 0; i < 10000; i++ {
		switch rng.Intn(4) {
		case 0:
			l.PushFront(i)
			live++
		case 1:
			l.PushBack(i)
			live++
		case 2:
			if _, ok := l.PopFront(); ok {
				live--
			}
		case 3:
			if _, ok := l.PopBack(); ok {
				live--
			}
		}
		assert.Equal(t, l.Live(), live)
		assert.Equal(t, l.Live(), l.Len())
		assert.Equal(t, l.Live()+l.Recycled(), len(l.slots))
	}

	assertArenaLinks(t, l)
	l.Clear()
	assert.Equal(t, l.Live(), 0)
	assert.Equal(t, l.allocs, l.frees)
}

// walks the arena in both directions, checking link symmetry, terminal
// relations and the node count
func assertArenaLinks(t *testing.T, l *ArenaList[int]) {
	t.Helper()

	count := 0
	prev := none
	for idx := l.head; idx != none; idx = l.slots[idx].next {
		assert.True(t, l.slots[idx].live)
		assert.Equal(t, l.slots[idx].prev, prev)
		prev = idx
		count++
	}
	assert.Equal(t, prev, l.tail)
	assert.Equal(t, count, l.length)

	count = 0
	next := none
	for idx := l.tail; idx != none; idx = l.slots[idx].prev {
		assert.Equal(t, l.slots[idx].next, next)
		next = idx
		count++
	}
	assert.Equal(t, next, l.head)
	assert.Equal(t, count, l.length)
}
