package workflow

import (
	"time"

	"clearlot/internal/domain/entities"
)

// Cancellation policy evaluator. CanCancel is a pure predicate the UI queries
// to decide whether to offer a cancel control; Cancel applies the decision.

// CancelDecision is the outcome of the eligibility check. Reason is empty
// when cancellation is allowed.

type CancelDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

const (
	ReasonAlreadyTerminated = "already cancelled/refunded"
	ReasonDepositPaid       = "cannot cancel after deposit paid"
	ReasonScheduled         = "cannot cancel after job scheduled"
	ReasonCompleted         = "cannot cancel completed work"
)

// CanCancel runs the ordered eligibility checks; the first matching reason
// wins. The deposit check precedes the stage check: the deposit lock is
// permanent regardless of how far the job advanced afterwards.
func CanCancel(job entities.Job) CancelDecision {
	switch {
	case job.Status != entities.JobStatusActive:
		return CancelDecision{Allowed: false, Reason: ReasonAlreadyTerminated}
	case job.DepositPaid:
		return CancelDecision{Allowed: false, Reason: ReasonDepositPaid}
	case job.CurrentStage >= entities.StageSchedulingPending:
		return CancelDecision{Allowed: false, Reason: ReasonScheduled}
	case job.WorkCompleted:
		return CancelDecision{Allowed: false, Reason: ReasonCompleted}
	default:
		return CancelDecision{Allowed: true}
	}
}

// Cancel records the cancellation decision and the refund target amount for
// the external payment collaborator. No money moves here. The refund amount
// falls back from the reviewed final price to the estimate's recommended
// price to zero.
func Cancel(job entities.Job, reason, cancelledBy string, now time.Time) (entities.Job, error) {
	if decision := CanCancel(job); !decision.Allowed {
		return entities.Job{}, &PolicyViolationError{Reason: decision.Reason}
	}

	refund := 0.0
	switch {
	case job.OperationsReview != nil:
		refund = job.OperationsReview.FinalPrice
	case job.InternalEstimate != nil:
		refund = job.InternalEstimate.SuggestedPriceRange.Recommended
	}

	cancelledAt := now
	job.Status = entities.JobStatusRefunded
	job.CancellationReason = reason
	job.CancelledBy = cancelledBy
	job.CancelledAt = &cancelledAt
	job.RefundAmount = refund
	job.RefundStatus = entities.RefundStatusProcessed
	job.RefundedAt = &cancelledAt
	job.UpdatedAt = now
	return job, nil
}
