package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The ordered map is the backbone of every determinism guarantee in this
// package, so its contract is anchored directly (white-box).

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := newOrderedMap[int]()
	m.set("b", 2)
	m.set("a", 1)
	m.set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.keys())
	assert.Equal(t, 3, m.len())

	v, ok := m.get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestOrderedMap_OverwriteKeepsPosition(t *testing.T) {
	m := newOrderedMap[int]()
	m.set("a", 1)
	m.set("b", 2)
	m.set("a", 10) // overwrite must not move "a" to the tail

	assert.Equal(t, []string{"a", "b"}, m.keys())
	v, _ := m.get("a")
	assert.Equal(t, 10, v)
}

func TestOrderedMap_DeletePreservesOrder(t *testing.T) {
	m := newOrderedMap[int]()
	m.set("a", 1)
	m.set("b", 2)
	m.set("c", 3)

	assert.True(t, m.del("b"))
	assert.False(t, m.del("b"), "double delete reports absence")
	assert.Equal(t, []string{"a", "c"}, m.keys())

	// Re-insertion goes to the tail, not the old slot.
	m.set("b", 4)
	assert.Equal(t, []string{"a", "c", "b"}, m.keys())

	// Head and tail removal keep the links intact.
	m.del("a")
	m.del("b")
	assert.Equal(t, []string{"c"}, m.keys())
}

func TestOrderedMap_SeqOrderAndStop(t *testing.T) {
	m := newOrderedMap[int]()
	m.set("x", 1)
	m.set("y", 2)
	m.set("z", 3)

	var seen []string
	for k := range m.seq() {
		seen = append(seen, k)
	}
	assert.Equal(t, []string{"x", "y", "z"}, seen)

	// Early break stops the walk.
	seen = seen[:0]
	for k := range m.seq() {
		seen = append(seen, k)
		break
	}
	assert.Equal(t, []string{"x"}, seen)
}

func TestOrderedMap_DeleteCurrentDuringSeq(t *testing.T) {
	m := newOrderedMap[int]()
	m.set("x", 1)
	m.set("y", 2)
	m.set("z", 3)

	var seen []string
	for k := range m.seq() {
		seen = append(seen, k)
		m.del(k) // deleting the yielded entry is part of the contract
	}
	assert.Equal(t, []string{"x", "y", "z"}, seen)
	assert.Equal(t, 0, m.len())
}
