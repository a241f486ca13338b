package list

// Option is a list configuration option.
type Option[V any] interface {
	apply(*listOptions[V])
}

type listOptions[V any] struct {
	equal    func(a, b V) bool
	capacity int
}

// WithCapacity option preallocates arena slots for capacity elements.
//
// The zero value configures no preallocation.
func WithCapacity[V any](capacity int) Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		opts.capacity = capacity
	})
}

// WithEqual option configures the default equality used by Remove and
// Contains when they are called with a nil equals function.
//
// The nil value configures interface identity.
func WithEqual[V any](equal func(a, b V) bool) Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		opts.equal = equal
	})
}

type funcOption[V any] func(*listOptions[V])

func (o funcOption[V]) apply(opts *listOptions[V]) {
	o(opts)
}
