package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDriver() *Driver {
	return NewDriver(scriptedEvaluator{}, DefaultTuning(), 256, NopProgressSink, NewMathRand(1))
}

func TestDriver_FixedDepthPicksBestMoveAtEachDepth(t *testing.T) {
	d := newTestDriver()
	pos := newScriptedPosition(2)
	pos.leafScores["0,"] = 10
	pos.leafScores["1,"] = -30

	outcome := d.runFixedDepth(pos, 1, Standard, 1)
	assert.True(t, outcome.hasMove)
	assert.Equal(t, fakeMove{id: 1}, outcome.move)
}

func TestDriver_FixedDepthNoLegalMoves(t *testing.T) {
	d := newTestDriver()
	pos := newScriptedPosition(0)
	pos.checkmates[""] = true

	outcome := d.runFixedDepth(pos, 1, Standard, 3)
	assert.False(t, outcome.hasMove)
}

func TestDriver_TimeLimitedSingleLegalMoveFastPath(t *testing.T) {
	d := newTestDriver()
	pos := newScriptedPosition(1)
	pos.leafScores["0,"] = 5

	outcome := d.runTimeLimited(pos, 1, Standard, 5.0, 1, 20)
	assert.True(t, outcome.hasMove)
	assert.Equal(t, fakeMove{id: 0}, outcome.move, "the only legal move is returned without searching")
}

func TestDriver_TimeLimitedNoLegalMoves(t *testing.T) {
	d := newTestDriver()
	pos := newScriptedPosition(0)
	pos.stalemates[""] = true

	outcome := d.runTimeLimited(pos, 1, Standard, 1.0, 1, 10)
	assert.False(t, outcome.hasMove)
}

func TestDriver_RandomMoveFallbackWhenNoIterationCompletes(t *testing.T) {
	d := newTestDriver()
	moves := []Move{fakeMove{id: 0}, fakeMove{id: 1}, fakeMove{id: 2}}
	m := d.randomMove(moves)
	found := false
	for _, candidate := range moves {
		if candidate == m {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAbsScore(t *testing.T) {
	assert.Equal(t, Score(5), absScore(Score(-5)))
	assert.Equal(t, Score(5), absScore(Score(5)))
	assert.Equal(t, Score(0), absScore(Score(0)))
}
