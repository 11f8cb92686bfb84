package engine

// MaxQuiesceDepth caps quiescence recursion (§4.6 step 4).
const MaxQuiesceDepth = 10

// quiesce implements §4.6: capture/promotion-only search below the main
// search horizon, resolving the horizon effect. Returns a score from the
// side to move's perspective, clamped into [alpha, beta] (fail-hard).
func (s *searcher) quiesce(pos Position, alpha, beta Score, sideSign int, variant Variant, qdepth int) Score {
	s.counters.QNodes++

	alpha0 := alpha
	hash := pos.ZobristHash()
	qttDepth := -(qdepth + 1)

	// 1. TT probe. Main-search entries (depth >= 0) are a superset of
	// quiescence and are always usable; quiescence entries are only usable
	// against an equal-or-shallower quiescence probe.
	if entry, ok := s.tt.Probe(hash); ok {
		s.counters.TTHits++
		usable := entry.Depth >= 0 || entry.Depth >= qttDepth
		if usable {
			switch entry.Flag {
			case FlagExact:
				return entry.Score
			case FlagLowerBound:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case FlagUpperBound:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	// 2. Terminal checks.
	if pos.IsCheckmate() {
		return -Inf
	}
	if pos.IsStalemate() || pos.CanClaimDraw() {
		return DrawScore
	}
	if pos.IsVariantEnd() {
		return s.evaluate(pos, sideSign, variant)
	}

	// 3. Stand-pat.
	sp := s.evaluate(pos, sideSign, variant)
	if sp >= beta {
		return beta
	}
	if sp > alpha {
		alpha = sp
	}

	// 4. Depth cap.
	if qdepth >= MaxQuiesceDepth {
		return sp
	}

	// 5. Generate noisy moves (captures and promotions), ordered by MVV-LVA.
	noisy := noisyMoves(pos)
	if len(noisy) == 0 {
		return sp
	}
	noisy = orderMoves(noisy, orderContext{pos: pos, ply: -1})

	// 6. Search loop.
	bestScore := sp
	for _, m := range noisy {
		var score Score
		func() {
			s.push(pos, m)
			defer s.pop(pos)
			score = -s.quiesce(pos, -beta, -alpha, -sideSign, variant, qdepth+1)
		}()

		if score > bestScore {
			bestScore = score
		}
		if score >= beta {
			s.tt.Store(hash, qttDepth, bestScore, FlagLowerBound, nil, false)
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	// 7. Store.
	flag := classifyFlag(alpha0, beta, bestScore)
	s.tt.Store(hash, qttDepth, bestScore, flag, nil, false)

	// 8. Fail-hard return.
	return alpha
}

// noisyMoves filters LegalMoves to captures and promotions, per §4.3's
// "promotions in quiescence are treated as captures for inclusion".
func noisyMoves(pos Position) []Move {
	all := pos.LegalMoves()
	out := make([]Move, 0, len(all))
	for _, m := range all {
		if pos.IsCapture(m) || pos.IsPromotion(m) {
			out = append(out, m)
		}
	}
	return out
}
