package catalog

// Table is an immutable, ordered lookup table keyed by identifier.
type Table[T any] struct {
	index map[string]int
	items []T
	keys  []string
}

func newTable[T any](kind string, items []T, key func(T) string) (Table[T], error) {
	t := Table[T]{
		index: make(map[string]int, len(items)),
		items: make([]T, 0, len(items)),
		keys:  make([]string, 0, len(items)),
	}

	for _, item := range items {
		k := key(item)
		if _, exists := t.index[k]; exists {
			return Table[T]{}, errDuplicateKey.Fmt(kind, k)
		}

		t.index[k] = len(t.items)
		t.items = append(t.items, item)
		t.keys = append(t.keys, k)
	}

	return t, nil
}

// Get looks up an entry by key.
func (t Table[T]) Get(key string) (T, bool) {
	i, ok := t.index[key]
	if !ok {
		var zero T
		return zero, false
	}

	return t.items[i], true
}

// Keys returns the keys in declaration order.
func (t Table[T]) Keys() []string {
	return append([]string(nil), t.keys...)
}

// All returns the entries in declaration order.
func (t Table[T]) All() []T {
	return append([]T(nil), t.items...)
}

// At returns the entry at position i, wrapping around in both directions.
func (t Table[T]) At(i int) T {
	n := len(t.items)

	return t.items[((i%n)+n)%n]
}

// IndexOf returns the position of key, or -1.
func (t Table[T]) IndexOf(key string) int {
	i, ok := t.index[key]
	if !ok {
		return -1
	}

	return i
}

// Len returns the number of entries.
func (t Table[T]) Len() int {
	return len(t.items)
}
