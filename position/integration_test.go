package position_test

import (
	"testing"

	"github.com/nkastor/chesscore/board"
	"github.com/nkastor/chesscore/engine"
	"github.com/nkastor/chesscore/eval"
	"github.com/nkastor/chesscore/movegen"
	"github.com/nkastor/chesscore/position"
	"github.com/stretchr/testify/assert"
)

// mustPlay finds the legal move whose algebraic notation is uci and applies
// it directly to b, bypassing the engine. Used to build up real game
// history (e.g. for repetition tests) outside of a search.
func mustPlay(t *testing.T, b *board.Board, uci string) {
	t.Helper()
	for _, m := range movegen.GenerateLegalMoves(b) {
		if m.String() == uci {
			b.MakeMove(m)
			return
		}
	}
	t.Fatalf("no legal move %s in current position", uci)
}

// TestIntegration_MateInOne covers the mate-in-1 end-to-end scenario: White
// to move finds Qxf7#, scoring above the mate threshold.
func TestIntegration_MateInOne(t *testing.T) {
	pos, err := position.FromFEN("r1bqkbnr/ppp2ppp/2n5/3pp2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 4")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	beforeHash := pos.Board().Hash()

	var depth2 engine.ProgressRecord
	sink := engine.ProgressSinkFunc(func(r engine.ProgressRecord) {
		if r.Depth == 2 {
			depth2 = r
		}
	})
	eng := engine.NewEngine(eval.Material{}, engine.DefaultTuning(), 4096, sink, nil)

	move, ok, err := eng.SearchFixedDepth(pos, 1, engine.Standard, 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !assert.True(t, ok, "a legal move must be found") {
		return
	}
	assert.Equal(t, "h5f7", move.(board.Move).String())
	assert.Greater(t, depth2.Score, engine.MateThreshold)

	assert.Equal(t, beforeHash, pos.Board().Hash(), "the position must be restored after the call returns")
}

// TestIntegration_AntichessForcedCapture covers the forced-capture scenario:
// Black has exactly one legal capture in this antichess position, and the
// variant's forced-capture rule must produce it at every depth.
func TestIntegration_AntichessForcedCapture(t *testing.T) {
	const fen = "4k3/8/8/3p4/4P3/8/8/4K3 b - - 0 1"

	for _, depth := range []int{1, 2, 3} {
		pos, err := position.FromFENVariant(fen, engine.Antichess)
		if err != nil {
			t.Fatalf("parse fen: %v", err)
		}
		eng := engine.NewEngine(eval.Antichess{}, engine.DefaultTuning(), 1024, nil, nil)

		move, ok, err := eng.SearchFixedDepth(pos, -1, engine.Antichess, depth)
		if err != nil {
			t.Fatalf("depth %d: search: %v", depth, err)
		}
		if !assert.True(t, ok, "depth %d: a legal move must be found", depth) {
			continue
		}
		assert.Equal(t, "d5e4", move.(board.Move).String(), "depth %d", depth)
	}
}

// TestIntegration_AvoidsStalemateWhenWinning covers the stalemate-trap
// scenario: White is up a queen against a lone king. One legal move
// (Qb3-b6) stalemates Black immediately; the moves that keep the queen
// keep the material advantage alive. The engine must not choose the
// stalemating move, since a material evaluator scores the draw far below
// those alternatives.
func TestIntegration_AvoidsStalemateWhenWinning(t *testing.T) {
	pos, err := position.FromFEN("k7/8/8/8/8/1Q6/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	eng := engine.NewEngine(eval.Material{}, engine.DefaultTuning(), 4096, nil, nil)

	move, ok, err := eng.SearchFixedDepth(pos, 1, engine.Standard, 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !assert.True(t, ok, "a legal move must be found") {
		return
	}
	assert.NotEqual(t, "b3b6", move.(board.Move).String(), "stalemating a won position must lose to the moves that keep the queen")
}

// TestIntegration_AvoidsRepetitionWhenWinning builds real game history via
// mustPlay so that one specific root move (Ke1-d1) would complete a third
// occurrence of an already-twice-seen position, making it draw-claimable
// immediately after the move. White is up three pawns, so the draw-contempt
// branch scores that continuation as a loss from White's perspective, and
// the engine must prefer any of its other four king moves instead.
func TestIntegration_AvoidsRepetitionWhenWinning(t *testing.T) {
	b, err := board.FromFEN("4k3/8/p7/P7/P7/P7/P7/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}

	// Two round trips through Ke1-d1-e1 (with Black mirroring via d8-e8
	// and a harmless detour through c1) leave the current position
	// identical to the start (seen twice now: the initial position and
	// this one) while the Ke1-d1 waypoint has also been seen twice.
	for _, uci := range []string{
		"e1d1", "e8d8", "d1c1", "d8e8",
		"c1d1", "e8d8", "d1e1", "d8e8",
	} {
		mustPlay(t, b, uci)
	}
	if got := b.RepetitionCount(b.Hash()); got != 2 {
		t.Fatalf("setup: root position seen %d times, want 2", got)
	}

	pos := position.NewStandard(b)
	eng := engine.NewEngine(eval.Material{}, engine.DefaultTuning(), 4096, nil, nil)

	move, ok, err := eng.SearchFixedDepth(pos, 1, engine.Standard, 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !assert.True(t, ok, "a legal move must be found") {
		return
	}
	assert.NotEqual(t, "e1d1", move.(board.Move).String(), "replaying into a third repetition must lose to any other king move while winning")
}

// TestIntegration_SingleLegalMoveFastPath covers §8's timed fast path: with
// exactly one legal move, the driver must return it without entering the
// iterative-deepening loop at all.
func TestIntegration_SingleLegalMoveFastPath(t *testing.T) {
	pos, err := position.FromFEN("r3k3/8/8/8/8/8/8/K6r w - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}

	reports := 0
	sink := engine.ProgressSinkFunc(func(engine.ProgressRecord) { reports++ })
	eng := engine.NewEngine(eval.Material{}, engine.DefaultTuning(), 1024, sink, nil)

	move, ok, err := eng.SearchTimeLimited(pos, 1, engine.Standard, 10.0, 1, 64)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !assert.True(t, ok, "a legal move must be found") {
		return
	}
	assert.Equal(t, "a1b2", move.(board.Move).String())
	assert.Equal(t, 0, reports, "the single legal move must short-circuit before any depth is searched")
}

// TestIntegration_TranspositionTableWarmsAcrossMoves covers TT persistence
// across top-level calls: the second search over the same position must
// report more TT hits at depth 1 than the first, cold, search did.
func TestIntegration_TranspositionTableWarmsAcrossMoves(t *testing.T) {
	const fen = "r1bqkbnr/ppp2ppp/2n5/3pp2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 4"

	var depth1 []engine.ProgressRecord
	sink := engine.ProgressSinkFunc(func(r engine.ProgressRecord) {
		if r.Depth == 1 {
			depth1 = append(depth1, r)
		}
	})
	eng := engine.NewEngine(eval.Material{}, engine.DefaultTuning(), 8192, sink, nil)

	pos1, err := position.FromFEN(fen)
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	if _, ok, err := eng.SearchFixedDepth(pos1, 1, engine.Standard, 4); err != nil || !ok {
		t.Fatalf("first search: ok=%v err=%v", ok, err)
	}

	pos2, err := position.FromFEN(fen)
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	if _, ok, err := eng.SearchFixedDepth(pos2, 1, engine.Standard, 4); err != nil || !ok {
		t.Fatalf("second search: ok=%v err=%v", ok, err)
	}

	if !assert.Len(t, depth1, 2, "each search reports exactly one depth-1 record") {
		return
	}
	assert.Greater(t, eng.TranspositionTable().Len(), 0)
	assert.Greater(t, depth1[1].TTHits, depth1[0].TTHits, "the warm search must reuse entries the cold search stored")
}
