package engine

// Position is the Position Oracle capability (§4.1). The core never
// constructs positions or move lists itself; it only drives this interface.
// Implementations own legality, make/unmake, repetition/50-move bookkeeping,
// and Zobrist hashing.
//
// The search borrows a Position mutably for the duration of one top-level
// call and restores it to its original state before returning: every Push
// is paired with a Pop on every exit path, including cutoffs and panics
// recovered by the facade.
type Position interface {
	// LegalMoves returns the legal moves at the current position. Order is
	// not required to be stable across calls.
	LegalMoves() []Move

	// Push applies m, mutating the position in place. Must be paired with
	// a later Pop.
	Push(m Move)

	// Pop undoes the most recent Push (move or null move), LIFO.
	Pop()

	// PushNull plays a null move: side to move flips, en-passant rights
	// clear, nothing else changes. Must be paired with a later Pop.
	PushNull()

	IsCheck() bool
	IsCheckmate() bool
	IsStalemate() bool
	// CanClaimDraw reports threefold repetition or the 50-move rule.
	CanClaimDraw() bool
	// IsVariantEnd reports a variant-specific terminal condition (e.g. all
	// pieces captured in antichess, three checks delivered in three-check).
	IsVariantEnd() bool

	IsCapture(m Move) bool
	// IsPromotion reports whether m is a pawn promotion.
	IsPromotion(m Move) bool
	// PromotionPiece returns the piece kind m promotes to, or NoPiece.
	PromotionPiece(m Move) PieceKind
	// MovingPiece returns the kind of piece making move m.
	MovingPiece(m Move) PieceKind
	// CapturedPiece returns the kind of piece m captures, or NoPiece if m
	// is not a capture.
	CapturedPiece(m Move) PieceKind

	// PieceCount returns the total number of pieces on the board, used by
	// the null-move pruning guard against zugzwang-prone endgames.
	PieceCount() int

	// ZobristHash returns the 64-bit identity of the current position,
	// including side to move, castling rights and en-passant file.
	ZobristHash() uint64
}

// Evaluator is a pure static evaluation function (§4.2). It must return a
// score already signed from the perspective of sideSign: positive is good
// for the side to move.
type Evaluator interface {
	Evaluate(pos Position, sideSign int, variant Variant) Score
}

// EvaluatorFunc adapts a function to an Evaluator.
type EvaluatorFunc func(pos Position, sideSign int, variant Variant) Score

// Evaluate implements Evaluator.
func (f EvaluatorFunc) Evaluate(pos Position, sideSign int, variant Variant) Score {
	return f(pos, sideSign, variant)
}
