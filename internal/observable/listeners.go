package observable

// Subscription detaches a listener when cancelled
type Subscription interface {
	Cancel()
}

type subscriptionFunc func()

func (f subscriptionFunc) Cancel() { f() }

type listenerEntry[E any] struct {
	id uint64
	fn func(E)
}

// listenerSet keeps listeners in registration order
type listenerSet[E any] struct {
	nextID  uint64
	entries []listenerEntry[E]
}

func (s *listenerSet[E]) add(fn func(E)) Subscription {
	s.nextID++
	id := s.nextID
	s.entries = append(s.entries, listenerEntry[E]{id: id, fn: fn})

	return subscriptionFunc(func() { s.remove(id) })
}

func (s *listenerSet[E]) remove(id uint64) {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return
		}
	}
}

// emit calls a snapshot of the listeners, so listeners may subscribe or
// cancel while being notified.
func (s *listenerSet[E]) emit(event E) {
	if len(s.entries) == 0 {
		return
	}
	snapshot := s.entries
	for _, e := range snapshot {
		e.fn(event)
	}
}

func (s *listenerSet[E]) len() int {
	return len(s.entries)
}
