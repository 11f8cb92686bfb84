// Package movegen generates legal chess moves over a board.Board: the
// other half (with board itself) of the Position Oracle reference
// adapter's concrete implementation.
package movegen

import "github.com/nkastor/chesscore/board"

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func IsSquareAttacked(b *board.Board, sq board.Square, by board.Color) bool {
	// Pawns: a pawn of color `by` attacks sq if it sits one rank behind
	// (from by's perspective) and one file to either side.
	pawnRankDelta := -1
	if by == board.White {
		pawnRankDelta = 1
	}
	for _, df := range []int{-1, 1} {
		from := board.Square{File: sq.File + int8(df), Rank: sq.Rank - int8(pawnRankDelta)}
		if from.Valid() {
			p := b.At(from)
			if p.Kind == board.Pawn && p.Color == by {
				return true
			}
		}
	}

	for _, d := range knightDeltas {
		from := board.Square{File: sq.File + int8(d[0]), Rank: sq.Rank + int8(d[1])}
		if from.Valid() {
			p := b.At(from)
			if p.Kind == board.Knight && p.Color == by {
				return true
			}
		}
	}

	for _, d := range kingDeltas {
		from := board.Square{File: sq.File + int8(d[0]), Rank: sq.Rank + int8(d[1])}
		if from.Valid() {
			p := b.At(from)
			if p.Kind == board.King && p.Color == by {
				return true
			}
		}
	}

	if slidingAttack(b, sq, by, bishopDirs, board.Bishop, board.Queen) {
		return true
	}
	if slidingAttack(b, sq, by, rookDirs, board.Rook, board.Queen) {
		return true
	}
	return false
}

func slidingAttack(b *board.Board, sq board.Square, by board.Color, dirs [4][2]int, kind1, kind2 board.PieceKind) bool {
	for _, d := range dirs {
		cur := sq
		for {
			cur = board.Square{File: cur.File + int8(d[0]), Rank: cur.Rank + int8(d[1])}
			if !cur.Valid() {
				break
			}
			p := b.At(cur)
			if p.IsEmpty() {
				continue
			}
			if p.Color == by && (p.Kind == kind1 || p.Kind == kind2) {
				return true
			}
			break
		}
	}
	return false
}

// IsInCheck reports whether c's king is currently attacked.
func IsInCheck(b *board.Board, c board.Color) bool {
	return IsSquareAttacked(b, b.KingSquare(c), c.Opponent())
}
