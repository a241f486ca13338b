package list

// handle addresses a node slot in the arena. The zero handle is absent,
// slot i is handle i+1.
type handle uint32

const none handle = 0

func handleOf(slot int) handle {
	return handle(slot + 1)
}

func (h handle) slot() int {
	return int(h) - 1
}

// node is an arena slot. A free slot chains the free list through next.
type node[V any] struct {
	value      V
	prev, next handle
}
