package engine

import "github.com/pkg/errors"

// OracleViolation signals that the Position Oracle broke its contract (a
// pop without a matching push, or a move reported as legal that the Oracle
// then refuses to apply). Per §7 this is fatal and not recovered; the
// search aborts rather than attempting to continue with an inconsistent
// position stack.
type OracleViolation struct {
	cause error
}

func (e *OracleViolation) Error() string {
	return errors.Wrap(e.cause, "oracle contract violation").Error()
}

func (e *OracleViolation) Unwrap() error { return e.cause }

// newOracleViolation wraps cause into an OracleViolation, attaching a stack
// trace via pkg/errors so the fatal condition is diagnosable.
func newOracleViolation(cause error) *OracleViolation {
	return &OracleViolation{cause: errors.WithStack(cause)}
}

// EvaluatorFailure wraps a panic recovered from a caller-supplied Evaluator.
// Per §7 the evaluator is expected to be total; a failure here is fatal and
// propagated rather than swallowed.
type EvaluatorFailure struct {
	cause error
}

func (e *EvaluatorFailure) Error() string {
	return errors.Wrap(e.cause, "evaluator failure").Error()
}

func (e *EvaluatorFailure) Unwrap() error { return e.cause }

func newEvaluatorFailure(recovered any) *EvaluatorFailure {
	if err, ok := recovered.(error); ok {
		return &EvaluatorFailure{cause: errors.WithStack(err)}
	}
	return &EvaluatorFailure{cause: errors.Errorf("%v", recovered)}
}

// oraclePanic and evaluatorPanic are the internal panic values push/pop/
// evaluate raise; they let the facade's single top-level recover tell an
// Oracle contract violation apart from an evaluator failure without
// threading an error-reporting callback through every recursive call.
type oraclePanic struct{ err error }

type evaluatorPanic struct{ err error }

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Errorf("%v", r)
}
