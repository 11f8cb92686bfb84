package engine

import "time"

// Driver runs iterative deepening over a negamax searcher (§4.8). It owns
// the transposition table and killer table for the life of the engine
// instance; the TT persists across top-level calls, the killer table is
// cleared at the start of each one.
type Driver struct {
	tt      *TranspositionTable
	killers *killerTable
	eval    Evaluator
	tuning  Tuning
	sink    ProgressSink
	rand    randSource
}

// randSource is the minimal surface the driver needs to pick a uniformly
// random legal move when no iteration ever completes (§4.8: "return a
// uniformly random legal move").
type randSource interface {
	Intn(n int) int
}

// NewDriver builds a Driver with its own transposition table (capacity
// ttSize entries) and killer table. eval is the Evaluator consulted at
// quiescence stand-pat, variant-terminal and contempt-draw nodes.
func NewDriver(eval Evaluator, tuning Tuning, ttSize int, sink ProgressSink, rnd randSource) *Driver {
	if sink == nil {
		sink = NopProgressSink
	}
	return &Driver{
		tt:      NewTranspositionTable(ttSize),
		killers: newKillerTable(),
		eval:    eval,
		tuning:  tuning,
		sink:    sink,
		rand:    rnd,
	}
}

// TranspositionTable exposes the driver's TT, e.g. for the "TT persistence
// across moves" scenario in §8 or for an operator wanting to clear it.
func (d *Driver) TranspositionTable() *TranspositionTable { return d.tt }

// searchOutcome is what runFixedDepth and runTimeLimited hand back to the
// panic-recovering entry points in facade.go.
type searchOutcome struct {
	move    Move
	hasMove bool
	err     error
}

// runFixedDepth implements §4.8's fixed-depth mode.
func (d *Driver) runFixedDepth(pos Position, sideSign int, variant Variant, targetDepth int) searchOutcome {
	d.killers.clear()
	counters := &Counters{}
	s := &searcher{tt: d.tt, killers: d.killers, eval: d.eval, tuning: d.tuning, counters: counters}

	rootMoves := pos.LegalMoves()
	if len(rootMoves) == 0 {
		return searchOutcome{hasMove: false}
	}

	var bestMove Move
	haveBest := false
	var pvMove Move
	hasPV := false

	for depth := 1; depth <= targetDepth; depth++ {
		start := time.Now()
		score, move, ok := s.negamax(pos, -Inf, Inf, sideSign, variant, depth, 0, pvMove, hasPV, true)
		elapsed := time.Since(start).Seconds()
		counters.ElapsedByDepth = append(counters.ElapsedByDepth, elapsed)

		if ok {
			bestMove = move
			haveBest = true
			pvMove = move
			hasPV = true
		}

		d.sink.Report(ProgressRecord{
			Depth: depth, BestMove: move, Score: score,
			Nodes: counters.Nodes, QNodes: counters.QNodes, TTHits: counters.TTHits,
			Seconds: elapsed,
		})
	}

	if !haveBest {
		bestMove = d.randomMove(rootMoves)
		haveBest = true
	}
	return searchOutcome{move: bestMove, hasMove: haveBest}
}

// runTimeLimited implements §4.8's time-limited mode.
func (d *Driver) runTimeLimited(pos Position, sideSign int, variant Variant, timeLimitSeconds float64, minDepth, maxDepth int) searchOutcome {
	d.killers.clear()
	counters := &Counters{}
	s := &searcher{tt: d.tt, killers: d.killers, eval: d.eval, tuning: d.tuning, counters: counters}

	rootMoves := pos.LegalMoves()
	if len(rootMoves) == 0 {
		return searchOutcome{hasMove: false}
	}
	if len(rootMoves) == 1 {
		return searchOutcome{move: rootMoves[0], hasMove: true}
	}

	start := time.Now()
	var bestMove Move
	haveBest := false
	var bestScore Score
	var pvMove Move
	hasPV := false
	lastDepthTime := 0.0

	for depth := 1; depth <= maxDepth; depth++ {
		elapsedSoFar := time.Since(start).Seconds()
		remaining := timeLimitSeconds - elapsedSoFar
		if depth > minDepth && lastDepthTime*8 > remaining {
			break
		}

		depthStart := time.Now()
		score, move, ok := s.negamax(pos, -Inf, Inf, sideSign, variant, depth, 0, pvMove, hasPV, true)
		depthElapsed := time.Since(depthStart).Seconds()
		lastDepthTime = depthElapsed
		counters.ElapsedByDepth = append(counters.ElapsedByDepth, depthElapsed)

		if ok {
			bestMove = move
			bestScore = score
			haveBest = true
			pvMove = move
			hasPV = true
		}

		d.sink.Report(ProgressRecord{
			Depth: depth, BestMove: move, Score: score,
			Nodes: counters.Nodes, QNodes: counters.QNodes, TTHits: counters.TTHits,
			Seconds: depthElapsed,
		})

		if time.Since(start).Seconds() >= timeLimitSeconds {
			break
		}
		if haveBest && absScore(bestScore) > MateThreshold {
			break
		}
	}

	if !haveBest {
		bestMove = d.randomMove(rootMoves)
		haveBest = true
	}
	return searchOutcome{move: bestMove, hasMove: haveBest}
}

func (d *Driver) randomMove(moves []Move) Move {
	if d.rand == nil || len(moves) == 1 {
		return moves[0]
	}
	return moves[d.rand.Intn(len(moves))]
}

func absScore(s Score) Score {
	if s < 0 {
		return -s
	}
	return s
}
