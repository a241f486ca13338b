// Package list implements a generic doubly linked list of opaque values.
//
// Nodes are kept in an arena owned by the list and linked by slot handles
// instead of pointers. Removing a node returns its slot to a free list, so a
// list that is mutated in place stops allocating once it has reached its
// peak length.
//
// The list stores values verbatim and never inspects them. Releasing
// whatever a value refers to remains the caller's responsibility.
package list

import "math"

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
// A List must not be used concurrently from multiple goroutines.
type List[V any] struct {
	nodes     []node[V]
	equal     func(a, b V) bool
	head      handle
	tail      handle
	free      handle
	len       int
	destroyed bool
}

// New creates an empty list configured by opts.
func New[V any](opts ...Option[V]) *List[V] {
	var o listOptions[V]
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[V]{equal: o.equal}
	if o.capacity > 0 {
		l.nodes = make([]node[V], 0, o.capacity)
	}

	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	l.mustBeAlive()
	return l.len
}

// Front returns the first value of the list.
func (l *List[V]) Front() (value V, ok bool) {
	l.mustBeAlive()
	if l.head == none {
		return value, false
	}
	return l.at(l.head).value, true
}

// Back returns the last value of the list.
func (l *List[V]) Back() (value V, ok bool) {
	l.mustBeAlive()
	if l.tail == none {
		return value, false
	}
	return l.at(l.tail).value, true
}

// At returns the value at position index.
// It reports false if index is out of range.
func (l *List[V]) At(index int) (value V, ok bool) {
	l.mustBeAlive()
	if index < 0 || index >= l.len {
		return value, false
	}
	return l.at(l.seek(index)).value, true
}

// Add appends a value at the back of the list.
func (l *List[V]) Add(value V) {
	l.mustBeAlive()

	h := l.alloc(value)
	if l.tail == none {
		l.head = h
	} else {
		l.at(h).prev = l.tail
		l.at(l.tail).next = h
	}
	l.tail = h
	l.len++
}

// PushFront inserts a value at the front of the list.
func (l *List[V]) PushFront(value V) {
	l.Insert(value, 0)
}

// Insert inserts a value so that it becomes the element at position index,
// shifting the elements from index onwards one position back.
// Inserting at index Len() is equivalent to Add.
//
// Insert reports false and leaves the list unchanged if index is not
// in the range [0, Len()].
func (l *List[V]) Insert(value V, index int) bool {
	l.mustBeAlive()

	if index < 0 || index > l.len {
		return false
	}

	if index == l.len {
		l.Add(value)
		return true
	}

	mark := l.seek(index)

	// alloc may grow the arena, so node pointers are taken after it.
	h := l.alloc(value)
	e, m := l.at(h), l.at(mark)

	e.prev = m.prev
	e.next = mark
	if mark == l.head {
		l.head = h
	} else {
		l.at(m.prev).next = h
	}
	m.prev = h
	l.len++

	return true
}

// Remove removes the first element, in front to back order, whose value
// matches value and reports whether the list was modified.
//
// Values are compared with equals(stored, value). If equals is nil the list's
// default equality is used, see WithEqual. Without one, values are compared
// by interface identity, which panics if their dynamic type is not comparable.
func (l *List[V]) Remove(value V, equals func(a, b V) bool) bool {
	l.mustBeAlive()

	h := l.find(value, equals)
	if h == none {
		return false
	}

	l.unlink(h)

	return true
}

// RemoveAt removes the element at position index and returns its value.
// It reports false and leaves the list unchanged if index is out of range.
func (l *List[V]) RemoveAt(index int) (value V, ok bool) {
	l.mustBeAlive()

	if index < 0 || index >= l.len {
		return value, false
	}

	return l.unlink(l.seek(index)), true
}

// PopFront removes the first element and returns its value.
func (l *List[V]) PopFront() (value V, ok bool) {
	return l.RemoveAt(0)
}

// PopBack removes the last element and returns its value.
func (l *List[V]) PopBack() (value V, ok bool) {
	return l.RemoveAt(l.Len() - 1)
}

// Contains reports whether any element matches value.
// Values are compared as in Remove.
func (l *List[V]) Contains(value V, equals func(a, b V) bool) bool {
	l.mustBeAlive()
	return l.find(value, equals) != none
}

// Do calls function f on each value of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(value V) bool) {
	l.mustBeAlive()

	for h := l.head; h != none; {
		n := l.at(h)
		if !f(n.value) {
			return
		}
		h = n.next
	}
}

// DoReverse calls function f on each value of the list, in backward order.
// If f returns false, DoReverse stops the iteration.
// f must not change l.
func (l *List[V]) DoReverse(f func(value V) bool) {
	l.mustBeAlive()

	for h := l.tail; h != none; {
		n := l.at(h)
		if !f(n.value) {
			return
		}
		h = n.prev
	}
}

// Values returns the values of the list in forward order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.Len())

	l.Do(func(value V) bool {
		values = append(values, value)
		return true
	})

	return values
}

// Clear removes all elements. The arena is kept for reuse.
func (l *List[V]) Clear() {
	l.mustBeAlive()

	clear(l.nodes)
	l.nodes = l.nodes[:0]
	l.head, l.tail, l.free = none, none, none
	l.len = 0
}

// Destroy releases all nodes of the list. Values the nodes held are not
// touched. Any use of the list after Destroy panics, including calling
// Destroy again.
func (l *List[V]) Destroy() {
	l.mustBeAlive()
	*l = List[V]{destroyed: true}
}

func (l *List[V]) mustBeAlive() {
	if l.destroyed {
		panic("list: use of destroyed list")
	}
}

func (l *List[V]) at(h handle) *node[V] {
	return &l.nodes[h.slot()]
}

// seek returns the handle at position index, walking from the nearer end.
// index must be in range.
func (l *List[V]) seek(index int) handle {
	if index < l.len/2 {
		h := l.head
		for i := 0; i < index; i++ {
			h = l.at(h).next
		}
		return h
	}

	h := l.tail
	for i := l.len - 1; i > index; i-- {
		h = l.at(h).prev
	}
	return h
}

func (l *List[V]) find(value V, equals func(a, b V) bool) handle {
	if equals == nil {
		equals = l.equal
	}
	if equals == nil {
		equals = identical[V]
	}

	for h := l.head; h != none; {
		n := l.at(h)
		if equals(n.value, value) {
			return h
		}
		h = n.next
	}

	return none
}

// alloc takes a slot from the free list or grows the arena.
func (l *List[V]) alloc(value V) handle {
	if h := l.free; h != none {
		n := l.at(h)
		l.free = n.next
		*n = node[V]{value: value}
		return h
	}

	if uint64(len(l.nodes)) == math.MaxUint32 {
		panic("list: arena exhausted")
	}

	l.nodes = append(l.nodes, node[V]{value: value})

	return handleOf(len(l.nodes) - 1)
}

// unlink detaches the node from its neighbors, returns its slot to the free
// list and returns the value it held.
func (l *List[V]) unlink(h handle) V {
	n := l.at(h)

	if n.prev == none {
		l.head = n.next
	} else {
		l.at(n.prev).next = n.next
	}

	if n.next == none {
		l.tail = n.prev
	} else {
		l.at(n.next).prev = n.prev
	}

	value := n.value
	*n = node[V]{next: l.free}
	l.free = h
	l.len--

	return value
}

func identical[V any](a, b V) bool {
	return any(a) == any(b)
}
