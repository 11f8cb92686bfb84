package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTT_StoreAndProbe(t *testing.T) {
	tt := NewTranspositionTable(4)
	tt.Store(0xAAAA, 5, 120, FlagExact, fakeMove{id: 2}, true)

	entry, ok := tt.Probe(0xAAAA)
	assert.True(t, ok)
	assert.Equal(t, 5, entry.Depth)
	assert.Equal(t, Score(120), entry.Score)
	assert.Equal(t, FlagExact, entry.Flag)
	assert.Equal(t, fakeMove{id: 2}, entry.BestMove)
}

func TestTT_ProbeMiss(t *testing.T) {
	tt := NewTranspositionTable(4)
	_, ok := tt.Probe(0x1234)
	assert.False(t, ok)
}

func TestTT_DepthPreferredReplacement(t *testing.T) {
	tt := NewTranspositionTable(4)
	tt.Store(0xAAAA, 8, 100, FlagExact, nil, false)

	// A shallower store for the same hash must not overwrite the deeper one.
	tt.Store(0xAAAA, 3, -999, FlagExact, nil, false)
	entry, ok := tt.Probe(0xAAAA)
	assert.True(t, ok)
	assert.Equal(t, 8, entry.Depth)
	assert.Equal(t, Score(100), entry.Score)

	// A deeper-or-equal store for the same hash does overwrite.
	tt.Store(0xAAAA, 8, 55, FlagExact, nil, false)
	entry, ok = tt.Probe(0xAAAA)
	assert.True(t, ok)
	assert.Equal(t, Score(55), entry.Score)
}

func TestTT_SizeBound(t *testing.T) {
	tt := NewTranspositionTable(3)
	for i := 0; i < 10; i++ {
		tt.Store(uint64(i+1), 1, Score(i), FlagExact, nil, false)
		assert.LessOrEqual(t, tt.Len(), 3, "table must never exceed its configured capacity")
	}
}

func TestTT_FIFOEviction(t *testing.T) {
	tt := NewTranspositionTable(2)
	tt.Store(1, 1, 10, FlagExact, nil, false)
	tt.Store(2, 1, 20, FlagExact, nil, false)
	// Table full at equal depth; storing a third entry evicts the oldest (1).
	tt.Store(3, 1, 30, FlagExact, nil, false)

	_, ok := tt.Probe(1)
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = tt.Probe(2)
	assert.True(t, ok)
	_, ok = tt.Probe(3)
	assert.True(t, ok)
}

func TestTT_FullTableSkipsShallowerIncomingStore(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(1, 10, 99, FlagExact, nil, false)

	// Table is full and the only entry is deeper than the incoming store;
	// the store must be skipped rather than evicting a deeper result.
	tt.Store(2, 2, -1, FlagExact, nil, false)

	_, ok := tt.Probe(1)
	assert.True(t, ok, "deeper entry must survive a shallower incoming store")
	_, ok = tt.Probe(2)
	assert.False(t, ok)
}

func TestTT_Clear(t *testing.T) {
	tt := NewTranspositionTable(4)
	tt.Store(1, 1, 1, FlagExact, nil, false)
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	_, ok := tt.Probe(1)
	assert.False(t, ok)
}

func TestClassifyFlag(t *testing.T) {
	assert.Equal(t, FlagUpperBound, classifyFlag(10, 50, 10))
	assert.Equal(t, FlagUpperBound, classifyFlag(10, 50, 5))
	assert.Equal(t, FlagLowerBound, classifyFlag(10, 50, 50))
	assert.Equal(t, FlagLowerBound, classifyFlag(10, 50, 60))
	assert.Equal(t, FlagExact, classifyFlag(10, 50, 30))
}
