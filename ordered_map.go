package controls

import (
	"iter"
	"slices"
)

// OrderedMap maps unique keys to values and remembers the order in which
// keys were first inserted. Overwriting a key never moves it.
//
// Packing depends on this: GPU uniform layouts are positional, so values
// must come out in registration order rather than sorted by name.
//
// The zero value is not usable; create maps with NewOrderedMap.
type OrderedMap[K comparable, V any] struct {
	items map[K]*V
	order []K
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		items: make(map[K]*V),
	}
}

// Insert stores value under key. A new key is appended to the iteration
// order; an existing key keeps its position and only its value changes.
func (m *OrderedMap[K, V]) Insert(key K, value V) {
	if p, ok := m.items[key]; ok {
		*p = value
		return
	}
	v := value
	m.items[key] = &v
	m.order = append(m.order, key)
}

// Get returns the value stored under key.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if p, ok := m.items[key]; ok {
		return *p, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored under key, or nil.
// The pointer stays valid until the key is drained.
func (m *OrderedMap[K, V]) GetMut(key K) *V {
	return m.items[key]
}

// Contains reports whether key is present.
func (m *OrderedMap[K, V]) Contains(key K) bool {
	_, ok := m.items[key]
	return ok
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.order)
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.order)
}

// All yields entries in first-insertion order. Each call starts over from
// the first entry. The map must not be modified while iterating.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, *m.items[k]) {
				return
			}
		}
	}
}

// Drain yields entries in insertion order, removing each one before it is
// yielded. A full traversal leaves the map empty; stopping early leaves the
// entries not yet visited in place and in order.
func (m *OrderedMap[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for len(m.order) > 0 {
			k := m.order[0]
			v := *m.items[k]
			delete(m.items, k)
			m.order = m.order[1:]
			if len(m.order) == 0 {
				m.order = nil
			}
			if !yield(k, v) {
				return
			}
		}
	}
}
