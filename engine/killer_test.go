package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKillerTable_StoreAndIsKiller(t *testing.T) {
	k := newKillerTable()
	m := fakeMove{id: 7}

	assert.False(t, k.isKiller(3, m))
	k.store(3, m)
	assert.True(t, k.isKiller(3, m))
	assert.False(t, k.isKiller(4, m), "killers are per-ply")
}

func TestKillerTable_TwoSlotFIFO(t *testing.T) {
	k := newKillerTable()
	a, b, c := fakeMove{id: 1}, fakeMove{id: 2}, fakeMove{id: 3}

	k.store(0, a)
	assert.True(t, k.matchesSlot(0, 0, a))

	k.store(0, b)
	assert.True(t, k.matchesSlot(0, 0, b), "newest killer occupies slot 0")
	assert.True(t, k.matchesSlot(0, 1, a), "previous killer shifts to slot 1")

	k.store(0, c)
	assert.True(t, k.matchesSlot(0, 0, c))
	assert.True(t, k.matchesSlot(0, 1, b))
	assert.False(t, k.isKiller(0, a), "oldest killer falls out of the table")
}

func TestKillerTable_RestoringSlotZeroIsNoOp(t *testing.T) {
	k := newKillerTable()
	a, b := fakeMove{id: 1}, fakeMove{id: 2}
	k.store(0, a)
	k.store(0, b)
	k.store(0, b) // b already occupies slot 0; this must not disturb slot 1
	assert.True(t, k.matchesSlot(0, 0, b))
	assert.True(t, k.matchesSlot(0, 1, a))
}

func TestKillerTable_OutOfRangePlyIsSafe(t *testing.T) {
	k := newKillerTable()
	m := fakeMove{id: 1}
	k.store(-1, m)
	k.store(MaxKillerPly, m)
	assert.False(t, k.isKiller(-1, m))
	assert.False(t, k.isKiller(MaxKillerPly, m))
}

func TestKillerTable_Clear(t *testing.T) {
	k := newKillerTable()
	m := fakeMove{id: 1}
	k.store(2, m)
	k.clear()
	assert.False(t, k.isKiller(2, m))
}
