package engine

import "github.com/rs/zerolog/log"

// Engine is the one façade the core exposes (§6), built around a Driver
// that owns the transposition table and killer table for its lifetime.
type Engine struct {
	driver *Driver
}

// NewEngine constructs an Engine from an Evaluator, tuning constants, a TT
// capacity, and an optional progress sink (nil uses a sink that logs via
// zerolog's global logger, matching the "log sink chosen by the caller"
// wording of §6 with a sensible default).
func NewEngine(eval Evaluator, tuning Tuning, ttSize int, sink ProgressSink, rnd randSource) *Engine {
	if sink == nil {
		sink = ProgressSinkFunc(func(r ProgressRecord) {
			log.Info().
				Int("depth", r.Depth).
				Int32("score", int32(r.Score)).
				Int64("nodes", r.Nodes).
				Int64("qnodes", r.QNodes).
				Int64("tt_hits", r.TTHits).
				Float64("seconds", r.Seconds).
				Msg("search depth complete")
		})
	}
	return &Engine{driver: NewDriver(eval, tuning, ttSize, sink, rnd)}
}

// TranspositionTable exposes the underlying TT for inspection/tests.
func (e *Engine) TranspositionTable() *TranspositionTable {
	return e.driver.TranspositionTable()
}

// SearchFixedDepth implements §6's first entry point. position is borrowed
// mutably for the call and restored to its original state before
// returning, on every exit path including a recovered Oracle/Evaluator
// failure.
func (e *Engine) SearchFixedDepth(position Position, sideSign int, variant Variant, depth int) (move Move, ok bool, err error) {
	defer recoverSearchPanic(&err)
	outcome := e.driver.runFixedDepth(position, sideSign, variant, depth)
	return outcome.move, outcome.hasMove, nil
}

// SearchTimeLimited implements §6's second entry point.
func (e *Engine) SearchTimeLimited(position Position, sideSign int, variant Variant, timeLimitSeconds float64, minDepth, maxDepth int) (move Move, ok bool, err error) {
	defer recoverSearchPanic(&err)
	outcome := e.driver.runTimeLimited(position, sideSign, variant, timeLimitSeconds, minDepth, maxDepth)
	return outcome.move, outcome.hasMove, nil
}

// recoverSearchPanic converts an oraclePanic/evaluatorPanic raised deep in
// the recursion into a returned error, per §7: these are fatal and "not
// recovered" in the sense that the search never continues past them, but
// the facade still needs to return control to the caller rather than crash
// the process.
func recoverSearchPanic(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch p := r.(type) {
	case oraclePanic:
		*err = newOracleViolation(p.err)
	case evaluatorPanic:
		*err = newEvaluatorFailure(p.err)
	default:
		*err = newOracleViolation(asError(r))
	}
}
