package submit

import "fmt"

// ErrorKind names the terminal failure modes of the pipeline. The set is
// closed: steps never produce a kind outside it.
type ErrorKind string

const (
	// ErrNoCommits indicates there was nothing to submit: a clean working
	// tree and no commits on the branch beyond its base
	ErrNoCommits ErrorKind = "no-commits"

	// ErrPushRejected indicates the remote refused the branch push
	ErrPushRejected ErrorKind = "push-rejected"

	// ErrPRCreationFailed indicates the hosting platform rejected a pull
	// request create or update
	ErrPRCreationFailed ErrorKind = "pr-creation-failed"

	// ErrBranchDiverged indicates a branch's local and remote tips disagree
	ErrBranchDiverged ErrorKind = "branch-diverged"

	// ErrGraphite indicates the stacking tool failed
	ErrGraphite ErrorKind = "stacking-tool-error"

	// ErrValidation indicates a precondition of a step did not hold
	ErrValidation ErrorKind = "validation-failed"
)

// Error is the terminal failure signal of a pipeline run. It is constructed
// by exactly one step, carries the last valid state for diagnostics, and is
// consumed by the runner; it is never passed further into the pipeline.
type Error struct {
	Kind    ErrorKind
	Message string
	State   State // last valid state before the failure
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// newError creates an Error of the given kind, snapshotting st
func newError(kind ErrorKind, st State, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		State:   st,
	}
}
