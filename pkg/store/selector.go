package store

import "sync"

// Select reads a slice of the current state.
func Select[S, T any](s *Store[S], selector func(S) T) T {
	return selector(s.GetState())
}

// SubscribeSelect calls onChange whenever the selected slice differs from
// the last value seen. It does not fire for the current value.
func SubscribeSelect[S any, T comparable](s *Store[S], selector func(S) T, onChange func(T)) (unsubscribe func()) {
	var mu sync.Mutex
	last := selector(s.GetState())

	return s.Subscribe(func() {
		cur := selector(s.GetState())

		mu.Lock()
		if cur == last {
			mu.Unlock()
			return
		}
		last = cur
		mu.Unlock()

		onChange(cur)
	})
}
