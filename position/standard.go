// Package position adapts the board/movegen packages to engine.Position,
// giving the search engine a concrete Oracle to drive for the "standard"
// variant, and thin variant wrappers for atomic/antichess/threeCheck.
package position

import (
	"github.com/nkastor/chesscore/board"
	"github.com/nkastor/chesscore/engine"
	"github.com/nkastor/chesscore/movegen"
)

// StandardPosition implements engine.Position over a board.Board for
// orthodox chess rules.
type StandardPosition struct {
	b *board.Board
}

// NewStandard wraps b as a StandardPosition.
func NewStandard(b *board.Board) *StandardPosition {
	return &StandardPosition{b: b}
}

// FromFEN parses fen into a new StandardPosition.
func FromFEN(fen string) (*StandardPosition, error) {
	b, err := board.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewStandard(b), nil
}

// Board exposes the underlying board, e.g. for printing or FEN export.
func (p *StandardPosition) Board() *board.Board { return p.b }

func (p *StandardPosition) LegalMoves() []engine.Move {
	ml := movegen.GetMoveList(p.b)
	defer movegen.ReleaseMoveList(ml)
	out := make([]engine.Move, len(ml.Moves))
	for i, m := range ml.Moves {
		out[i] = m
	}
	return out
}

func (p *StandardPosition) Push(m engine.Move) { p.b.MakeMove(m.(board.Move)) }
func (p *StandardPosition) Pop()                { p.b.Pop() }
func (p *StandardPosition) PushNull()           { p.b.MakeNullMove() }

func (p *StandardPosition) IsCheck() bool     { return movegen.IsInCheck(p.b, p.b.Side()) }
func (p *StandardPosition) IsCheckmate() bool { return movegen.IsCheckmate(p.b) }
func (p *StandardPosition) IsStalemate() bool { return movegen.IsStalemate(p.b) }
func (p *StandardPosition) CanClaimDraw() bool {
	return movegen.CanClaimDraw(p.b)
}

// IsVariantEnd is always false for standard chess: there is no
// variant-specific termination beyond the ordinary terminal predicates.
func (p *StandardPosition) IsVariantEnd() bool { return false }

func (p *StandardPosition) IsCapture(m engine.Move) bool {
	return m.(board.Move).HasCapture
}
func (p *StandardPosition) IsPromotion(m engine.Move) bool {
	return m.(board.Move).Promotion != board.NoKind
}
func (p *StandardPosition) PromotionPiece(m engine.Move) engine.PieceKind {
	return boardKindToEngine(m.(board.Move).Promotion)
}
func (p *StandardPosition) MovingPiece(m engine.Move) engine.PieceKind {
	return boardKindToEngine(m.(board.Move).Piece.Kind)
}
func (p *StandardPosition) CapturedPiece(m engine.Move) engine.PieceKind {
	mv := m.(board.Move)
	if !mv.HasCapture {
		return engine.NoPiece
	}
	return boardKindToEngine(mv.Captured.Kind)
}

func (p *StandardPosition) PieceCount() int { return p.b.PieceCount() }

func (p *StandardPosition) ZobristHash() uint64 { return p.b.Hash() }

// PieceAt implements eval.boardInspector: square is a 0-63 mailbox index,
// color is +1 for White / -1 for Black.
func (p *StandardPosition) PieceAt(square int) (engine.PieceKind, int, bool) {
	piece := p.b.At(board.SquareFromIndex(square))
	if piece.IsEmpty() {
		return engine.NoPiece, 0, false
	}
	return boardKindToEngine(piece.Kind), piece.Color.Sign(), true
}

// boardKindToEngine converts board.PieceKind to engine.PieceKind. The two
// enums are defined with the same ordering (None/Pawn/Knight/Bishop/Rook/
// Queen/King) specifically so this is a direct numeric cast.
func boardKindToEngine(k board.PieceKind) engine.PieceKind {
	return engine.PieceKind(k)
}
