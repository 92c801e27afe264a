package preview

import (
	"github.com/ytget/gardening-directions/internal/observable"
)

// Capacity is the number of leading elements a Window mirrors
const Capacity = 12

// Window holds the first Capacity elements of a backing list.
//
// At every point after a backing change has been delivered the window equals
// backing[0:min(Capacity, backing.Len())]. Only the window mutates its own
// items; consumers read them through the observable.Reader methods.
type Window[T any] struct {
	backing *observable.List[T]
	items   *observable.List[T]
	sub     observable.Subscription
}

var _ observable.Reader[int] = (*Window[int])(nil)

// New creates a window over backing, filled from its current contents
func New[T any](backing *observable.List[T]) *Window[T] {
	w := &Window[T]{
		backing: backing,
		items:   observable.NewList[T](),
	}
	w.refill()
	w.sub = backing.Subscribe(w.apply)
	return w
}

// Capacity returns the maximum number of mirrored elements
func (w *Window[T]) Capacity() int {
	return Capacity
}

// Len returns the number of mirrored elements
func (w *Window[T]) Len() int {
	return w.items.Len()
}

// At returns the mirrored element at index i
func (w *Window[T]) At(i int) T {
	return w.items.At(i)
}

// Items returns a copy of the mirrored elements
func (w *Window[T]) Items() []T {
	return w.items.Items()
}

// Subscribe registers fn for element-level changes of the window itself
func (w *Window[T]) Subscribe(fn observable.ListListener[T]) observable.Subscription {
	return w.items.Subscribe(fn)
}

// Close stops tracking the backing list. The window keeps its last contents.
func (w *Window[T]) Close() {
	if w.sub != nil {
		w.sub.Cancel()
		w.sub = nil
	}
}

// apply folds one backing change into the window
func (w *Window[T]) apply(c observable.Change[T]) {
	switch c.Kind {
	case observable.ChangeInsert:
		w.onInsert(c.NewIndex, c.NewValue)
	case observable.ChangeMove:
		w.onMove(c.OldIndex, c.NewIndex)
	case observable.ChangeRemove:
		w.onRemove(c.OldIndex)
	case observable.ChangeReplace:
		if c.OldIndex < Capacity {
			w.items.Set(c.OldIndex, c.NewValue)
		}
	case observable.ChangeReset:
		w.items.Clear()
		w.refill()
	}
}

func (w *Window[T]) onInsert(i int, v T) {
	if i >= Capacity {
		return
	}
	w.items.Insert(i, v)
	if w.items.Len() > Capacity {
		w.items.RemoveAt(Capacity)
	}
}

func (w *Window[T]) onMove(from, to int) {
	switch {
	case from < Capacity && to < Capacity:
		w.items.Move(from, to)
	case from < Capacity:
		// The element left the window; whatever slid into the last slot
		// takes its place at the end.
		w.items.RemoveAt(from)
		if w.backing.Len() > Capacity {
			w.items.Append(w.backing.At(Capacity - 1))
		}
	case to < Capacity:
		// The element entered the window, pushing the last one out.
		w.items.Insert(to, w.backing.At(to))
		if w.items.Len() > Capacity {
			w.items.RemoveAt(Capacity)
		}
	}
}

func (w *Window[T]) onRemove(i int) {
	if i >= Capacity {
		return
	}
	w.items.RemoveAt(i)
	if w.backing.Len() >= Capacity {
		w.items.Append(w.backing.At(Capacity - 1))
	}
}

// refill appends backing elements until the window is full or backing is
// exhausted. Callers clear the window first.
func (w *Window[T]) refill() {
	for w.items.Len() < w.backing.Len() && w.items.Len() < Capacity {
		w.items.Append(w.backing.At(w.items.Len()))
	}
}
