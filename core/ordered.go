// File: ordered.go
// Role: Insertion-ordered string-keyed map backing the node, edge, and
//       adjacency catalogs.
// Determinism:
//   - seq() walks entries in insertion order, always.
// Invariants:
//   - O(1) get/set/del via hash map; order via intrusive doubly-linked list.
//   - Deleting the entry currently being yielded is safe (next is captured
//     before the yield); deleting other entries mid-walk is not.

package core

import "iter"

// orderedItem is one linked entry of an orderedMap.
type orderedItem[V any] struct {
	key  string
	val  V
	prev *orderedItem[V]
	next *orderedItem[V]
}

// orderedMap is a hash map whose iteration order is insertion order.
// The zero value is not usable; construct with newOrderedMap.
type orderedMap[V any] struct {
	items map[string]*orderedItem[V]
	head  *orderedItem[V]
	tail  *orderedItem[V]
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{items: make(map[string]*orderedItem[V])}
}

// len reports the number of entries. O(1).
func (m *orderedMap[V]) len() int { return len(m.items) }

// get returns the value stored under key. O(1).
func (m *orderedMap[V]) get(key string) (V, bool) {
	it, ok := m.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	return it.val, true
}

// has reports key membership. O(1).
func (m *orderedMap[V]) has(key string) bool {
	_, ok := m.items[key]
	return ok
}

// set inserts key at the tail of the order, or overwrites an existing entry
// in place (its position is preserved). O(1).
func (m *orderedMap[V]) set(key string, val V) {
	if it, ok := m.items[key]; ok {
		it.val = val
		return
	}
	it := &orderedItem[V]{key: key, val: val, prev: m.tail}
	if m.tail != nil {
		m.tail.next = it
	} else {
		m.head = it
	}
	m.tail = it
	m.items[key] = it
}

// del unlinks and removes key, reporting whether it was present. O(1).
func (m *orderedMap[V]) del(key string) bool {
	it, ok := m.items[key]
	if !ok {
		return false
	}
	if it.prev != nil {
		it.prev.next = it.next
	} else {
		m.head = it.next
	}
	if it.next != nil {
		it.next.prev = it.prev
	} else {
		m.tail = it.prev
	}
	delete(m.items, key)

	return true
}

// seq yields (key, value) pairs in insertion order.
// The successor is captured before each yield, so the consumer may delete
// the entry it is currently looking at.
func (m *orderedMap[V]) seq() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for it := m.head; it != nil; {
			next := it.next
			if !yield(it.key, it.val) {
				return
			}
			it = next
		}
	}
}

// keys materializes the key list in insertion order. O(n).
func (m *orderedMap[V]) keys() []string {
	out := make([]string, 0, len(m.items))
	for it := m.head; it != nil; it = it.next {
		out = append(out, it.key)
	}

	return out
}
