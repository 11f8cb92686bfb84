package engine

// TimeManager computes a per-move time budget from clock state (§4.9).
// All constants below are contractual, per the spec's design notes, and
// are not exposed as tuning knobs.
type TimeManager struct{}

// NewTimeManager returns a TimeManager. It carries no state: the formula
// in §4.9 is a pure function of the clock snapshot.
func NewTimeManager() TimeManager { return TimeManager{} }

// MoveTimeSeconds implements §4.9's formula exactly.
func (TimeManager) MoveTimeSeconds(remainingMs, incrementMs int64, movesPlayed int) float64 {
	remainingS := float64(remainingMs) / 1000.0
	incrementS := float64(incrementMs) / 1000.0

	if remainingS < 5 {
		v := (remainingS - 0.5) * 0.1
		if v < 0.05 {
			v = 0.05
		}
		return v
	}

	usable := remainingS - 0.5
	if usable < 0.1 {
		usable = 0.1
	}

	var expectedMovesLeft float64
	switch {
	case movesPlayed < 10:
		expectedMovesLeft = 35
	case movesPlayed < 30:
		expectedMovesLeft = 25
	default:
		expectedMovesLeft = 15
	}

	base := usable / expectedMovesLeft
	budget := base + 0.8*incrementS

	lo, hi := 0.1, 0.3*usable
	if budget < lo {
		return lo
	}
	if budget > hi {
		return hi
	}
	return budget
}
