package engine

// Tuning holds the contractual constants and the few implementation knobs
// the negamax searcher needs. Values not named as "contractual" in spec.md
// (§4.9's time formula constants are contractual and live in timemanager.go
// instead) are exposed here so callers can load them from configuration
// (see internal/config).
type Tuning struct {
	// NullMoveMinDepth is the minimum depth for null-move pruning (§4.7
	// step 6: "depth >= 3").
	NullMoveMinDepth int
	// NullMoveMinPieces is the minimum piece count before null-move
	// pruning is attempted (§4.7 step 6: "piece_count > 6").
	NullMoveMinPieces int
	// LMRMinMoveIndex is the move index at which LMR first applies (§4.7
	// step 8: "i >= 4").
	LMRMinMoveIndex int
	// LMRMinDepth is the minimum depth LMR applies at (§4.7 step 8:
	// "depth >= 3").
	LMRMinDepth int
}

// DefaultTuning returns the constants as literally stated in spec.md §4.7.
func DefaultTuning() Tuning {
	return Tuning{
		NullMoveMinDepth:  3,
		NullMoveMinPieces: 6,
		LMRMinMoveIndex:   4,
		LMRMinDepth:       3,
	}
}

// searcher holds the per-engine mutable state the negamax/quiescence
// recursion shares: the transposition table and killer table (both carried
// across top-level calls per §5/§3's lifecycle rules), the evaluator, the
// tuning constants, and per-call counters.
type searcher struct {
	tt       *TranspositionTable
	killers  *killerTable
	eval     Evaluator
	tuning   Tuning
	counters *Counters
}

// push applies a move. A panic from the Oracle is re-raised as an
// oraclePanic so the facade's single top-level recover can abort the whole
// search with a programming-error signal (§7) rather than let the
// recursion continue with an inconsistent position stack.
func (s *searcher) push(pos Position, m Move) {
	defer func() {
		if r := recover(); r != nil {
			panic(oraclePanic{err: asError(r)})
		}
	}()
	pos.Push(m)
}

func (s *searcher) pop(pos Position) {
	defer func() {
		if r := recover(); r != nil {
			panic(oraclePanic{err: asError(r)})
		}
	}()
	pos.Pop()
}

func (s *searcher) pushNull(pos Position) {
	defer func() {
		if r := recover(); r != nil {
			panic(oraclePanic{err: asError(r)})
		}
	}()
	pos.PushNull()
}

// evaluate calls the evaluator. A panic is re-raised as an evaluatorPanic
// (§7: "evaluator failure ... fatal and propagated").
func (s *searcher) evaluate(pos Position, sideSign int, variant Variant) (score Score) {
	defer func() {
		if r := recover(); r != nil {
			panic(evaluatorPanic{err: asError(r)})
		}
	}()
	return s.eval.Evaluate(pos, sideSign, variant)
}

// negamax implements §4.7's ten-step algorithm. ply is the distance from
// the search root; pvMove (if any) seeds move ordering at this node;
// nullAllowed disables a second consecutive null-move search.
func (s *searcher) negamax(pos Position, alpha, beta Score, sideSign int, variant Variant, depth, ply int, pvMove Move, hasPV bool, nullAllowed bool) (Score, Move, bool) {
	s.counters.Nodes++

	// 1. Save alpha0 for flag classification.
	alpha0 := alpha

	// 2. TT probe.
	hash := pos.ZobristHash()
	var ttMove Move
	hasTTMove := false
	if entry, ok := s.tt.Probe(hash); ok {
		if entry.HasMove {
			ttMove = entry.BestMove
			hasTTMove = true
		}
		if entry.Depth >= depth {
			usable := true
			switch entry.Flag {
			case FlagExact:
				s.counters.TTHits++
				return entry.Score, ttMove, hasTTMove
			case FlagLowerBound:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case FlagUpperBound:
				if entry.Score < beta {
					beta = entry.Score
				}
			default:
				usable = false
			}
			if usable && alpha >= beta {
				s.counters.TTHits++
				return entry.Score, ttMove, hasTTMove
			}
		}
	}

	// 3. Leaf / terminal tests.
	if pos.IsCheckmate() {
		return -Inf, nil, false
	}
	if pos.IsStalemate() {
		return DrawScore, nil, false
	}
	if pos.CanClaimDraw() {
		contempt := s.evaluate(pos, sideSign, variant)
		switch {
		case contempt > 100:
			return -200, nil, false
		case contempt < -100:
			return 200, nil, false
		default:
			return DrawScore, nil, false
		}
	}
	if pos.IsVariantEnd() {
		return s.evaluate(pos, sideSign, variant), nil, false
	}

	inCheck := pos.IsCheck()

	// 4. Check extension.
	if depth == 1 && inCheck {
		depth++
	}

	// 5. Horizon.
	if depth == 0 {
		return s.quiesce(pos, alpha, beta, sideSign, variant, 0), nil, false
	}

	// 6. Null-move pruning.
	if nullAllowed && !inCheck && depth >= s.tuning.NullMoveMinDepth && ply > 0 &&
		variant != Antichess && pos.PieceCount() > s.tuning.NullMoveMinPieces && beta < Inf {
		r := 2 + depth/4
		nullScore := func() Score {
			s.pushNull(pos)
			defer s.pop(pos)
			sc, _, _ := s.negamax(pos, -beta, -beta+1, -sideSign, variant, depth-1-r, ply+1, nil, false, false)
			return -sc
		}()
		if nullScore >= beta {
			return beta, nil, false
		}
	}

	// 7. Generate & order moves.
	moves := pos.LegalMoves()
	ordered := orderMoves(moves, orderContext{
		pos: pos, pvMove: pvMove, hasPV: hasPV, ttMove: ttMove, hasTT: hasTTMove,
		ply: ply, killers: s.killers,
	})

	var bestValue Score = -Inf
	var bestMove Move
	haveBest := false

	// 8. Main loop.
	for i, m := range ordered {
		isCapture := pos.IsCapture(m)
		isPromotion := pos.IsPromotion(m)

		var score Score
		func() {
			s.push(pos, m)
			defer s.pop(pos)
			givesCheck := pos.IsCheck()

			reduced := i >= s.tuning.LMRMinMoveIndex && depth >= s.tuning.LMRMinDepth &&
				!isCapture && !isPromotion && !givesCheck && !inCheck

			if reduced {
				r := 1 + i/8 + depth/4
				if r > depth-1 {
					r = depth - 1
				}
				if r < 0 {
					r = 0
				}
				score, _, _ = s.negamax(pos, -alpha-1, -alpha, -sideSign, variant, depth-1-r, ply+1, nil, false, true)
				score = -score
				if score > alpha {
					// Surprised us: re-search without the reduction via the
					// normal PVS path below.
					reduced = false
				}
			}

			if !reduced {
				if i == 0 {
					score, _, _ = s.negamax(pos, -beta, -alpha, -sideSign, variant, depth-1, ply+1, nil, false, true)
					score = -score
				} else {
					score, _, _ = s.negamax(pos, -alpha-1, -alpha, -sideSign, variant, depth-1, ply+1, nil, false, true)
					score = -score
					if score > alpha && score < beta {
						score, _, _ = s.negamax(pos, -beta, -alpha, -sideSign, variant, depth-1, ply+1, nil, false, true)
						score = -score
					}
				}
			}
		}()

		if score > bestValue || !haveBest {
			bestValue = score
			bestMove = m
			haveBest = true
		}
		if score > alpha {
			alpha = score
		}

		if alpha >= beta {
			if !isCapture {
				s.killers.store(ply, m)
			}
			break
		}
	}

	// 9. Store.
	flag := classifyFlag(alpha0, beta, bestValue)
	s.tt.Store(hash, depth, bestValue, flag, bestMove, haveBest)

	// 10. Return.
	return bestValue, bestMove, haveBest
}
