package observable

import "fmt"

// ChangeKind identifies what happened to a List
type ChangeKind int

const (
	// ChangeInsert means a value was inserted at NewIndex
	ChangeInsert ChangeKind = iota
	// ChangeRemove means the value at OldIndex was removed
	ChangeRemove
	// ChangeMove means the value at OldIndex now lives at NewIndex
	ChangeMove
	// ChangeReplace means the value at OldIndex was overwritten
	ChangeReplace
	// ChangeReset means the contents must be treated as arbitrary
	ChangeReset
)

// String returns the string representation of ChangeKind
func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	case ChangeMove:
		return "move"
	case ChangeReplace:
		return "replace"
	case ChangeReset:
		return "reset"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change describes a single mutation of a List.
//
// Index fields that do not apply to the kind are -1. Indices always refer to
// the list state after the mutation, except OldIndex of a remove or move which
// names the position the value occupied before it.
type Change[T any] struct {
	Kind     ChangeKind
	OldIndex int
	NewIndex int
	OldValue T // removed or replaced value
	NewValue T // inserted, moved or replacing value
}

// ListListener receives List changes
type ListListener[T any] func(Change[T])

// Reader is the read-only side of a List.
type Reader[T any] interface {
	Len() int
	At(i int) T
	Items() []T
	Subscribe(fn ListListener[T]) Subscription
}

// List is an ordered, mutable sequence that notifies listeners on every change.
// Index arguments outside the valid range panic, as slice indexing does.
type List[T any] struct {
	items     []T
	listeners listenerSet[Change[T]]
}

var _ Reader[int] = (*List[int])(nil)

// NewList creates a list holding a copy of items
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	if len(items) > 0 {
		l.items = append(make([]T, 0, len(items)), items...)
	}
	return l
}

// Len returns the number of elements
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i
func (l *List[T]) At(i int) T {
	l.checkIndex(i, len(l.items))
	return l.items[i]
}

// Items returns a copy of the elements in order
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Subscribe registers fn for every subsequent change
func (l *List[T]) Subscribe(fn ListListener[T]) Subscription {
	return l.listeners.add(func(c Change[T]) { fn(c) })
}

// Append adds v at the end of the list
func (l *List[T]) Append(v T) {
	l.Insert(len(l.items), v)
}

// Insert places v at index i, shifting later elements right
func (l *List[T]) Insert(i int, v T) {
	l.checkIndex(i, len(l.items)+1)

	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v

	l.listeners.emit(Change[T]{Kind: ChangeInsert, OldIndex: -1, NewIndex: i, NewValue: v})
}

// RemoveAt deletes and returns the element at index i
func (l *List[T]) RemoveAt(i int) T {
	l.checkIndex(i, len(l.items))

	old := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]

	l.listeners.emit(Change[T]{Kind: ChangeRemove, OldIndex: i, NewIndex: -1, OldValue: old})
	return old
}

// Move relocates the element at index from so that it ends up at index to.
// Moving an element onto its own index is a no-op and emits nothing.
func (l *List[T]) Move(from, to int) {
	l.checkIndex(from, len(l.items))
	l.checkIndex(to, len(l.items))
	if from == to {
		return
	}

	v := l.items[from]
	if from < to {
		copy(l.items[from:to], l.items[from+1:to+1])
	} else {
		copy(l.items[to+1:from+1], l.items[to:from])
	}
	l.items[to] = v

	l.listeners.emit(Change[T]{Kind: ChangeMove, OldIndex: from, NewIndex: to, NewValue: v})
}

// Set overwrites the element at index i
func (l *List[T]) Set(i int, v T) {
	l.checkIndex(i, len(l.items))

	old := l.items[i]
	l.items[i] = v

	l.listeners.emit(Change[T]{Kind: ChangeReplace, OldIndex: i, NewIndex: i, OldValue: old, NewValue: v})
}

// Clear removes every element and emits a single reset
func (l *List[T]) Clear() {
	l.Reset(nil)
}

// Reset replaces the whole contents with a copy of items and emits a reset
func (l *List[T]) Reset(items []T) {
	l.items = append(l.items[:0:0], items...)
	l.listeners.emit(Change[T]{Kind: ChangeReset, OldIndex: -1, NewIndex: -1})
}

func (l *List[T]) checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("observable: index %d out of range [0:%d]", i, n))
	}
}

// ListenerCount returns the number of active subscriptions
func (l *List[T]) ListenerCount() int {
	return l.listeners.len()
}
