package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeManager_LowTimeBranch(t *testing.T) {
	tm := NewTimeManager()
	budget := tm.MoveTimeSeconds(3000, 0, 20) // 3s remaining, under the 5s threshold
	assert.InDelta(t, (3.0-0.5)*0.1, budget, 1e-9)
}

func TestTimeManager_LowTimeFloor(t *testing.T) {
	tm := NewTimeManager()
	budget := tm.MoveTimeSeconds(600, 0, 20) // 0.6s remaining
	assert.Equal(t, 0.05, budget, "the formula must never return less than the 0.05s floor")
}

func TestTimeManager_NeverExceedsThirtyPercentOfUsableTime(t *testing.T) {
	tm := NewTimeManager()
	budget := tm.MoveTimeSeconds(600000, 300000, 5) // huge increment relative to clock
	usable := 600.0 - 0.5
	assert.LessOrEqual(t, budget, 0.3*usable)
}

func TestTimeManager_NeverBelowTenthOfSecondWhenNotInLowTimeBranch(t *testing.T) {
	tm := NewTimeManager()
	budget := tm.MoveTimeSeconds(10000, 0, 80) // plenty of time, no increment, late game
	assert.GreaterOrEqual(t, budget, 0.1)
}

func TestTimeManager_FewerExpectedMovesLeftMeansBiggerBudget(t *testing.T) {
	tm := NewTimeManager()
	early := tm.MoveTimeSeconds(100000, 0, 5)  // expects 35 moves left
	mid := tm.MoveTimeSeconds(100000, 0, 20)   // expects 25 moves left
	late := tm.MoveTimeSeconds(100000, 0, 50)  // expects 15 moves left
	assert.Greater(t, late, mid)
	assert.Greater(t, mid, early)
}

func TestTimeManager_IncrementAddsToBudget(t *testing.T) {
	tm := NewTimeManager()
	noIncrement := tm.MoveTimeSeconds(100000, 0, 20)
	withIncrement := tm.MoveTimeSeconds(100000, 2000, 20)
	assert.Greater(t, withIncrement, noIncrement)
}
