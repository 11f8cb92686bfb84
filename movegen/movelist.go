package movegen

import (
	"sync"

	"github.com/nkastor/chesscore/board"
)

// MoveList is a reusable, pool-backed slice of moves, carrying forward the
// teacher's pattern of pooling move-list allocations out of the search's
// hot path.
type MoveList struct {
	Moves []board.Move
}

var moveListPool = sync.Pool{
	New: func() any { return &MoveList{Moves: make([]board.Move, 0, 48)} },
}

// GetMoveList borrows a MoveList from the pool, populated with the legal
// moves for b's side to move.
func GetMoveList(b *board.Board) *MoveList {
	ml := moveListPool.Get().(*MoveList)
	ml.Moves = ml.Moves[:0]
	ml.Moves = append(ml.Moves, GenerateLegalMoves(b)...)
	return ml
}

// ReleaseMoveList returns ml to the pool. Callers must not use ml after
// calling this.
func ReleaseMoveList(ml *MoveList) {
	moveListPool.Put(ml)
}
