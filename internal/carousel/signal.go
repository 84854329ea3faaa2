package carousel

// Signal is a synchronous listener registry. Emit calls every subscriber in
// subscription order on the caller's goroutine.
type Signal[T any] struct {
	subs   []subscription[T]
	nextID int
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned cancel func more than once is harmless.
func (s *Signal[T]) Subscribe(fn func(T)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers v to all current subscribers.
func (s *Signal[T]) Emit(v T) {
	// Copy so a listener may cancel itself mid-emit
	subs := make([]subscription[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Len returns the number of live subscribers.
func (s *Signal[T]) Len() int {
	return len(s.subs)
}
