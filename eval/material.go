// Package eval provides the reference Evaluator implementations: a
// material-plus-piece-square-table evaluator for standard chess, and thin
// variant-specific evaluators for antichess and three-check, grounded
// directly in original_source/evaluation's Python originals. There is no
// separate atomic evaluator; atomic positions are scored by Material.
package eval

import "github.com/nkastor/chesscore/engine"

// pawnTable through kingTable are piece-square bonuses from White's
// perspective, rank 0 = White's back rank, trimmed from the
// Chess-Programming-Wiki "simplified evaluation function" values the
// teacher's game/ai/evaluation/tables.go also draws from.
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

// pieceTable selects a piece's table, returning nil for NoPiece/King-less
// lookups that should never happen for a present piece.
func pieceTable(kind engine.PieceKind) *[64]int {
	switch kind {
	case engine.Pawn:
		return &pawnTable
	case engine.Knight:
		return &knightTable
	case engine.Bishop:
		return &bishopTable
	case engine.Rook:
		return &rookTable
	case engine.Queen:
		return &queenTable
	case engine.King:
		return &kingTable
	default:
		return nil
	}
}

// boardInspector is the minimal surface Material needs beyond
// engine.Position: per-square piece/color lookup for the PST term. The
// reference board.Board satisfies it; any Position that wants PST scoring
// from this evaluator must too.
type boardInspector interface {
	PieceAt(square int) (kind engine.PieceKind, color int, present bool)
}

// Material is the reference standard-chess Evaluator: material balance
// plus piece-square-table bonuses, summed from White's perspective and
// then signed by sideSign, per §4.2's contract.
type Material struct{}

// Evaluate implements engine.Evaluator. pos must also implement
// boardInspector (the position package's StandardPosition does); callers
// using a Position that doesn't are expected to supply their own
// Evaluator instead.
func (Material) Evaluate(pos engine.Position, sideSign int, variant engine.Variant) engine.Score {
	inspector, ok := pos.(boardInspector)
	if !ok {
		return 0
	}
	total := 0
	for sq := 0; sq < 64; sq++ {
		kind, color, present := inspector.PieceAt(sq)
		if !present {
			continue
		}
		value := engine.PieceValue[kind]
		table := pieceTable(kind)
		pst := 0
		if table != nil {
			idx := sq
			if color == -1 { // Black: mirror vertically
				file := idx % 8
				rank := idx / 8
				idx = (7-rank)*8 + file
			}
			pst = table[idx]
		}
		side := 1
		if color == -1 {
			side = -1
		}
		total += side * (value + pst)
	}
	return engine.Score(total * sideSign)
}
