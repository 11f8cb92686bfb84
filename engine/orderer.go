package engine

import "sort"

// orderContext carries the per-node inputs the orderer needs to score moves
// (§4.3): the position (to query capture/promotion/piece info), an optional
// PV move, an optional TT move, and the ply (for killer lookup).
type orderContext struct {
	pos     Position
	pvMove  Move
	hasPV   bool
	ttMove  Move
	hasTT   bool
	ply     int
	killers *killerTable
}

// scoredMove pairs a move with its ordering score for a stable sort.
type scoredMove struct {
	move  Move
	score int
	index int // original position, for deterministic tie-breaking
}

// orderMoves returns a new slice holding moves sorted by the seven
// priority bands of §4.3, highest score first. Ties within a band are
// broken by MVV-LVA where applicable and otherwise by original order,
// keeping the result "arbitrary but deterministic" as the spec allows.
func orderMoves(moves []Move, ctx orderContext) []Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(m, ctx), index: i}
	}
	sort.SliceStable(scored, func(a, b int) bool {
		if scored[a].score != scored[b].score {
			return scored[a].score > scored[b].score
		}
		return scored[a].index < scored[b].index
	})
	out := make([]Move, len(scored))
	for i, sm := range scored {
		out[i] = sm.move
	}
	return out
}

// scoreMove implements the §4.3 band table. PV and TT moves return their
// band score directly; for every other move the highest applicable band
// score wins, so a capture that also promotes gets the larger of its
// capture and promotion scores (the two are not added).
func scoreMove(m Move, ctx orderContext) int {
	if ctx.hasPV && m == ctx.pvMove {
		return 100000
	}
	if ctx.hasTT && m == ctx.ttMove {
		return 90000
	}

	isCapture := ctx.pos.IsCapture(m)
	isPromotion := ctx.pos.IsPromotion(m)

	score := 0
	if isCapture {
		victim := ctx.pos.CapturedPiece(m)
		attacker := ctx.pos.MovingPiece(m)
		mvvLva := 10*PieceValue[victim] - PieceValue[attacker]
		score = 10000 + mvvLva
	}

	if ctx.killers != nil {
		if ctx.killers.matchesSlot(ctx.ply, 0, m) && 9000 > score {
			score = 9000
		} else if ctx.killers.matchesSlot(ctx.ply, 1, m) && 8000 > score {
			score = 8000
		}
	}

	if isPromotion {
		promoScore := 7000 + PieceValue[ctx.pos.PromotionPiece(m)]
		if promoScore > score {
			score = promoScore
		}
	}

	return score
}
