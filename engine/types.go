// Package engine implements the search core: negamax alpha-beta with
// iterative deepening, a transposition table, quiescence search, move
// ordering, null-move pruning and late-move reductions, over an abstract
// Position Oracle supplied by the caller.
package engine

// Score is a signed centipawn evaluation from the perspective of the side
// to move at the node where it was produced.
type Score int32

const (
	// Inf is the sentinel used for mate bounds. It carries headroom so that
	// -(-Inf) does not overflow int32, matching the "sentinel with headroom
	// for negation" option in the design notes.
	Inf Score = 1 << 30

	// MateThreshold is the magnitude above which a score is treated as a
	// forced mate and short-circuits iterative deepening.
	MateThreshold Score = 100000

	// DrawScore is the neutral score for a non-contemptuous draw.
	DrawScore Score = 0
)

// Move is an opaque, caller-defined value. Concrete Oracle implementations
// must make their move type comparable with == so the engine can recognize
// PV moves, TT moves and killer moves by equality.
type Move any

// PieceKind enumerates piece types for MVV-LVA and promotion scoring.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceValue gives the piece values used by both MVV-LVA scoring (§4.3) and
// the reference material evaluator.
var PieceValue = map[PieceKind]int{
	NoPiece: 0,
	Pawn:    100,
	Knight:  320,
	Bishop:  330,
	Rook:    500,
	Queen:   900,
	King:    20000,
}

// Variant selects the rule set the Oracle and Evaluator are operating under.
type Variant string

const (
	Standard   Variant = "standard"
	Atomic     Variant = "atomic"
	Antichess  Variant = "antichess"
	ThreeCheck Variant = "threeCheck"
)

// TTFlag classifies a stored score relative to the window it was computed in.
type TTFlag int

const (
	FlagExact TTFlag = iota
	FlagLowerBound
	FlagUpperBound
)

// Counters tallies per-top-level-call search statistics. Nodes, QNodes and
// TTHits are reported in each ProgressRecord; the Driver's next-depth cost
// estimate uses its own timing of the last depth, not ElapsedByDepth.
type Counters struct {
	Nodes        int64
	QNodes       int64
	TTHits       int64
	ElapsedByDepth []float64
}

// reset zeroes a Counters in place for a new top-level call.
func (c *Counters) reset() {
	c.Nodes = 0
	c.QNodes = 0
	c.TTHits = 0
	c.ElapsedByDepth = c.ElapsedByDepth[:0]
}

// ProgressRecord is the per-depth report emitted by the Driver (§6).
type ProgressRecord struct {
	Depth     int
	BestMove  Move
	Score     Score
	Nodes     int64
	QNodes    int64
	TTHits    int64
	Seconds   float64
}

// ProgressSink receives one ProgressRecord per completed iterative-deepening
// depth. Implementations must return quickly; the driver calls it inline.
type ProgressSink interface {
	Report(ProgressRecord)
}

// ProgressSinkFunc adapts a function to a ProgressSink.
type ProgressSinkFunc func(ProgressRecord)

// Report implements ProgressSink.
func (f ProgressSinkFunc) Report(r ProgressRecord) { f(r) }

// NopProgressSink discards all progress records.
type nopProgressSink struct{}

func (nopProgressSink) Report(ProgressRecord) {}

// NopProgressSink is a ProgressSink that does nothing.
var NopProgressSink ProgressSink = nopProgressSink{}
