package movegen

import "github.com/nkastor/chesscore/board"

// IsCheckmate reports whether the side to move has no legal moves and is
// in check.
func IsCheckmate(b *board.Board) bool {
	return IsInCheck(b, b.Side()) && len(GenerateLegalMoves(b)) == 0
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func IsStalemate(b *board.Board) bool {
	return !IsInCheck(b, b.Side()) && len(GenerateLegalMoves(b)) == 0
}

// CanClaimDraw reports the 50-move rule or threefold repetition.
func CanClaimDraw(b *board.Board) bool {
	if b.HalfmoveClock() >= 100 {
		return true
	}
	return b.RepetitionCount(b.Hash()) >= 3
}
