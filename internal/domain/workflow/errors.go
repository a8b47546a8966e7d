package workflow

import (
	"fmt"

	"clearlot/internal/domain/entities"
)

// InvalidTransitionError reports a stage operation invoked against a job that
// is not at the operation's required stage. Recoverable: the caller should
// re-fetch the job and retry the operation matching its actual stage.

type InvalidTransitionError struct {
	Op       string
	Required entities.Stage
	Actual   entities.Stage
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s requires stage %d (%s), job is at stage %d (%s)",
		e.Op, e.Required, e.Required.Label(), e.Actual, e.Actual.Label())
}

// PolicyViolationError reports an operation rejected by a business rule other
// than stage position, e.g. cancelling past the deposit lock or responding to
// an expired quote. The Reason is safe to surface to the user.

type PolicyViolationError struct {
	Reason string
}

func (e *PolicyViolationError) Error() string {
	return e.Reason
}

// DuplicateSettlementError reports a deposit or final payment collected twice
// for the same job. Treated as a bug signal: logged and rejected, never
// processed as a second charge.

type DuplicateSettlementError struct {
	Settlement string
}

func (e *DuplicateSettlementError) Error() string {
	return e.Settlement + " already collected for this job"
}

func invalidTransition(op string, required, actual entities.Stage) error {
	return &InvalidTransitionError{Op: op, Required: required, Actual: actual}
}
