// Package signal provides synchronous observer lists used by the shell parts
// to publish changes.
package signal

// callbackWrapper gives each connection a unique pointer for removal.
type callbackWrapper[T any] struct {
	fn func(T)
}

// Signal delivers values to connected callbacks in connection order, on the
// caller's stack. The zero value is ready to use. It is not safe for
// concurrent use.
type Signal[T any] struct {
	callbacks []*callbackWrapper[T]
}

// Connect registers callback and returns a function that disconnects it.
func (s *Signal[T]) Connect(callback func(T)) func() {
	wrapper := &callbackWrapper[T]{fn: callback}
	s.callbacks = append(s.callbacks, wrapper)

	return func() {
		for i, cb := range s.callbacks {
			if cb == wrapper {
				s.callbacks = append(s.callbacks[:i:i], s.callbacks[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every connected callback with value. Callbacks connected or
// disconnected during delivery take effect on the next Emit.
func (s *Signal[T]) Emit(value T) {
	if len(s.callbacks) == 0 {
		return
	}
	callbacks := make([]*callbackWrapper[T], len(s.callbacks))
	copy(callbacks, s.callbacks)

	for _, cb := range callbacks {
		cb.fn(value)
	}
}

// Len returns the number of connected callbacks.
func (s *Signal[T]) Len() int {
	return len(s.callbacks)
}
