package position

import (
	"github.com/nkastor/chesscore/board"
	"github.com/nkastor/chesscore/engine"
	"github.com/nkastor/chesscore/movegen"
)

// VariantPosition wraps a StandardPosition with the documented
// simplifications for atomic, antichess and three-check described in
// SPEC_FULL.md §4.1. Full variant rule engines are explicitly out of
// scope (spec.md §1); this adapter exists to drive the end-to-end test
// scenarios and the demo CLI, not to referee rated variant games.
type VariantPosition struct {
	*StandardPosition
	variant engine.Variant

	checksGiven map[board.Color]int
	checkStack  []checkEvent
}

type checkEvent struct {
	color     board.Color
	happened  bool
}

// NewVariant wraps b for the given non-standard variant.
func NewVariant(b *board.Board, variant engine.Variant) *VariantPosition {
	return &VariantPosition{
		StandardPosition: NewStandard(b),
		variant:          variant,
		checksGiven:      map[board.Color]int{board.White: 0, board.Black: 0},
	}
}

// FromFENVariant parses fen into a VariantPosition for the given variant.
func FromFENVariant(fen string, variant engine.Variant) (*VariantPosition, error) {
	b, err := board.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewVariant(b, variant), nil
}

func (p *VariantPosition) bothKingsPresent() bool {
	return p.Board().HasKing(board.White) && p.Board().HasKing(board.Black)
}

// LegalMoves applies antichess's forced-capture rule: if any legal move is
// a capture, only captures are legal.
func (p *VariantPosition) LegalMoves() []engine.Move {
	moves := p.StandardPosition.LegalMoves()
	if p.variant != engine.Antichess {
		return moves
	}
	captures := make([]engine.Move, 0, len(moves))
	for _, m := range moves {
		if p.StandardPosition.IsCapture(m) {
			captures = append(captures, m)
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return moves
}

func (p *VariantPosition) Push(m engine.Move) {
	mover := p.Board().Side()
	p.StandardPosition.Push(m)

	incremented := false
	if p.variant == engine.ThreeCheck && p.bothKingsPresent() && movegen.IsInCheck(p.Board(), p.Board().Side()) {
		p.checksGiven[mover]++
		incremented = true
	}
	p.checkStack = append(p.checkStack, checkEvent{color: mover, happened: incremented})
}

func (p *VariantPosition) PushNull() {
	p.StandardPosition.PushNull()
	p.checkStack = append(p.checkStack, checkEvent{})
}

func (p *VariantPosition) Pop() {
	n := len(p.checkStack)
	if n > 0 {
		ev := p.checkStack[n-1]
		p.checkStack = p.checkStack[:n-1]
		if ev.happened {
			p.checksGiven[ev.color]--
		}
	}
	p.StandardPosition.Pop()
}

// IsCheck guards against atomic positions where a king has already been
// captured: such a position is neither in check nor checkmate/stalemate
// in any meaningful sense, and IsVariantEnd handles it instead.
func (p *VariantPosition) IsCheck() bool {
	if p.variant == engine.Atomic && !p.bothKingsPresent() {
		return false
	}
	return p.StandardPosition.IsCheck()
}

func (p *VariantPosition) IsCheckmate() bool {
	if p.variant == engine.Atomic && !p.bothKingsPresent() {
		return false
	}
	return p.StandardPosition.IsCheckmate()
}

func (p *VariantPosition) IsStalemate() bool {
	if p.variant == engine.Atomic && !p.bothKingsPresent() {
		return false
	}
	return p.StandardPosition.IsStalemate()
}

// PieceCountWhite implements eval.colorPieceCounter.
func (p *VariantPosition) PieceCountWhite() int { return p.Board().PieceCountColor(board.White) }

// PieceCountBlack implements eval.colorPieceCounter.
func (p *VariantPosition) PieceCountBlack() int { return p.Board().PieceCountColor(board.Black) }

// ChecksGiven implements eval.checksGivenCounter.
func (p *VariantPosition) ChecksGiven(white bool) int {
	if white {
		return p.checksGiven[board.White]
	}
	return p.checksGiven[board.Black]
}

// IsVariantEnd reports the per-variant termination condition: a king
// captured in atomic, a side with no pieces left in antichess, or three
// checks delivered in three-check.
func (p *VariantPosition) IsVariantEnd() bool {
	switch p.variant {
	case engine.Atomic:
		return !p.bothKingsPresent()
	case engine.Antichess:
		return p.Board().PieceCountColor(board.White) == 0 || p.Board().PieceCountColor(board.Black) == 0
	case engine.ThreeCheck:
		return p.checksGiven[board.White] >= 3 || p.checksGiven[board.Black] >= 3
	default:
		return false
	}
}
