package eval

import "github.com/nkastor/chesscore/engine"

// colorPieceCounter is the minimal surface the Antichess evaluator needs:
// per-color piece counts, which position.VariantPosition exposes
// (StandardPosition does not, so Antichess scores it as 0).
type colorPieceCounter interface {
	PieceCountWhite() int
	PieceCountBlack() int
}

// Antichess is grounded directly in
// original_source/evaluation/antichess_eval.py's antichess_evaluate:
// a simple piece-count differential (black count minus white count, this
// package's convention being White-positive before the caller's sideSign
// is applied, same as Material). The original has no positional term at
// all for this variant, so neither does this one.
type Antichess struct{}

func (Antichess) Evaluate(pos engine.Position, sideSign int, variant engine.Variant) engine.Score {
	counter, ok := pos.(colorPieceCounter)
	if !ok {
		return 0
	}
	diff := counter.PieceCountBlack() - counter.PieceCountWhite()
	return engine.Score(diff * sideSign)
}

// ThreeCheck is grounded in
// original_source/evaluation/threecheck_eval.py's threecheck_eval: a
// material evaluation (delegated to Material here, since the original
// calls the generic `evaluate` for the material term) plus a bonus for
// checks already delivered by the side whose perspective is being scored.
// The original's `elif color == 0` branch is unreachable (color is always
// ±1 in this codebase — see DESIGN.md) and is deliberately not
// reproduced.
type ThreeCheck struct {
	material Material
}

// checksGivenCounter exposes how many checks each side has delivered, for
// the three-check bonus term.
type checksGivenCounter interface {
	ChecksGiven(white bool) int
}

const checkBonus = 150

func (t ThreeCheck) Evaluate(pos engine.Position, sideSign int, variant engine.Variant) engine.Score {
	base := t.material.Evaluate(pos, sideSign, variant)

	counter, ok := pos.(checksGivenCounter)
	if !ok {
		return base
	}
	// sideSign == +1 means the position's side to move is White.
	var ownChecks, oppChecks int
	if sideSign == 1 {
		ownChecks = counter.ChecksGiven(true)
		oppChecks = counter.ChecksGiven(false)
	} else {
		ownChecks = counter.ChecksGiven(false)
		oppChecks = counter.ChecksGiven(true)
	}
	return base + engine.Score((ownChecks-oppChecks)*checkBonus)
}
