package gridbind

// Collection is an ordered list that notifies subscribers after each change.
// It separates the record data from the grid that displays it.
type Collection[T comparable] struct {
	items     []T
	listeners []subscriber[T]
	nextID    int
}

type subscriber[T comparable] struct {
	id int
	fn func(Change[T])
}

// Change describes a modification to the collection.
type Change[T comparable] struct {
	Type ChangeType
	// Index is where Items now live (Add, Replace, Move) or where Old was
	// removed from (Remove).
	Index int
	// OldIndex is the source position of a Move.
	OldIndex int
	Items    []T // Add, Replace, Move
	Old      []T // Remove, Replace
}

type ChangeType int

const (
	ChangeAdd ChangeType = iota
	ChangeRemove
	ChangeReplace
	ChangeMove
	ChangeReset // contents replaced wholesale or cleared
)

func (c ChangeType) String() string {
	switch c {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeReplace:
		return "replace"
	case ChangeMove:
		return "move"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// NewCollection creates a collection holding items.
func NewCollection[T comparable](items ...T) *Collection[T] {
	return &Collection[T]{items: items}
}

// Items returns the backing slice. Do not modify it.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the item at index i, or the zero value if out of bounds.
func (c *Collection[T]) At(i int) T {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero
	}
	return c.items[i]
}

// IndexOf returns the position of item, or -1.
func (c *Collection[T]) IndexOf(item T) int {
	for i, it := range c.items {
		if it == item {
			return i
		}
	}
	return -1
}

// Add appends an item.
func (c *Collection[T]) Add(item T) *Collection[T] {
	idx := len(c.items)
	c.items = append(c.items, item)
	c.notify(Change[T]{Type: ChangeAdd, Index: idx, Items: []T{item}})
	return c
}

// Insert inserts an item at index i.
func (c *Collection[T]) Insert(i int, item T) *Collection[T] {
	i = max(0, min(i, len(c.items)))
	c.items = append(c.items[:i], append([]T{item}, c.items[i:]...)...)
	c.notify(Change[T]{Type: ChangeAdd, Index: i, Items: []T{item}})
	return c
}

// RemoveAt removes the item at index i.
func (c *Collection[T]) RemoveAt(i int) *Collection[T] {
	if i < 0 || i >= len(c.items) {
		return c
	}
	old := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.notify(Change[T]{Type: ChangeRemove, Index: i, Old: []T{old}})
	return c
}

// Remove removes item if present and reports whether it was.
func (c *Collection[T]) Remove(item T) bool {
	i := c.IndexOf(item)
	if i < 0 {
		return false
	}
	c.RemoveAt(i)
	return true
}

// Replace swaps the item at index i for item.
func (c *Collection[T]) Replace(i int, item T) *Collection[T] {
	if i < 0 || i >= len(c.items) {
		return c
	}
	old := c.items[i]
	c.items[i] = item
	c.notify(Change[T]{Type: ChangeReplace, Index: i, Items: []T{item}, Old: []T{old}})
	return c
}

// Move relocates the item at from to position to.
func (c *Collection[T]) Move(from, to int) *Collection[T] {
	if from < 0 || from >= len(c.items) || to < 0 || to >= len(c.items) || from == to {
		return c
	}
	item := c.items[from]
	c.items = append(c.items[:from], c.items[from+1:]...)
	c.items = append(c.items[:to], append([]T{item}, c.items[to:]...)...)
	c.notify(Change[T]{Type: ChangeMove, Index: to, OldIndex: from, Items: []T{item}})
	return c
}

// Set replaces all items.
func (c *Collection[T]) Set(items []T) *Collection[T] {
	c.items = items
	c.notify(Change[T]{Type: ChangeReset})
	return c
}

// Clear removes all items.
func (c *Collection[T]) Clear() *Collection[T] {
	c.items = c.items[:0]
	c.notify(Change[T]{Type: ChangeReset})
	return c
}

// Subscribe adds a change listener and returns an unsubscribe function.
// Unsubscribing twice is harmless.
func (c *Collection[T]) Subscribe(fn func(Change[T])) func() {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range c.listeners {
			if s.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of active listeners.
func (c *Collection[T]) Subscribers() int {
	return len(c.listeners)
}

func (c *Collection[T]) notify(ch Change[T]) {
	for _, s := range append([]subscriber[T](nil), c.listeners...) {
		s.fn(ch)
	}
}
