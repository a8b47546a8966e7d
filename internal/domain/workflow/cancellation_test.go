package workflow

import (
	"errors"
	"testing"
	"time"

	"clearlot/internal/domain/entities"
)

func TestCanCancel(t *testing.T) {
	t.Run("allowed before deposit", func(t *testing.T) {
		for _, stage := range []entities.Stage{
			entities.StageEstimatePending,
			entities.StageOpsReviewPending,
			entities.StageQuoteDrafted,
			entities.StageQuoteSent,
			entities.StageDepositPending,
		} {
			job := jobAtStage(t, stage)
			decision := CanCancel(job)
			if !decision.Allowed || decision.Reason != "" {
				t.Fatalf("stage %d: expected allowed, got %+v", stage, decision)
			}
		}
	})

	t.Run("terminated job", func(t *testing.T) {
		job := jobAtStage(t, entities.StageOpsReviewPending)
		job.Status = entities.JobStatusRefunded
		decision := CanCancel(job)
		if decision.Allowed || decision.Reason != ReasonAlreadyTerminated {
			t.Fatalf("unexpected decision: %+v", decision)
		}
	})

	t.Run("deposit paid", func(t *testing.T) {
		job := jobAtStage(t, entities.StageSchedulingPending)
		decision := CanCancel(job)
		if decision.Allowed || decision.Reason != ReasonDepositPaid {
			t.Fatalf("unexpected decision: %+v", decision)
		}
	})

	t.Run("deposit lock outranks later stages", func(t *testing.T) {
		job := jobAtStage(t, entities.StageVerificationPending)
		decision := CanCancel(job)
		if decision.Allowed || decision.Reason != ReasonDepositPaid {
			t.Fatalf("expected deposit reason at stage 8, got %+v", decision)
		}
	})

	t.Run("scheduled without deposit", func(t *testing.T) {
		job := jobAtStage(t, entities.StageSchedulingPending)
		job.DepositPaid = false
		job.DepositPaidAt = nil
		decision := CanCancel(job)
		if decision.Allowed || decision.Reason != ReasonScheduled {
			t.Fatalf("unexpected decision: %+v", decision)
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("refund takes reviewed final price", func(t *testing.T) {
		job := jobAtStage(t, entities.StageQuoteDrafted)
		cancelledAt := testNow.Add(time.Hour)

		job, err := Cancel(job, "change of plans", "client", cancelledAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusRefunded {
			t.Fatalf("expected refunded status, got %s", job.Status)
		}
		if job.RefundAmount != 550 {
			t.Fatalf("expected refund 550, got %v", job.RefundAmount)
		}
		if job.RefundStatus != entities.RefundStatusProcessed || job.RefundedAt == nil {
			t.Fatalf("expected processed refund: %+v", job)
		}
		if job.CancellationReason != "change of plans" || job.CancelledBy != "client" {
			t.Fatalf("unexpected cancellation fields: %+v", job)
		}
		if job.CancelledAt == nil || !job.CancelledAt.Equal(cancelledAt) {
			t.Fatalf("unexpected cancelled at: %v", job.CancelledAt)
		}
	})

	t.Run("refund falls back to recommended price", func(t *testing.T) {
		job := jobAtStage(t, entities.StageOpsReviewPending)
		job, err := Cancel(job, "client unreachable", "staff", testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.RefundAmount != 500 {
			t.Fatalf("expected refund 500, got %v", job.RefundAmount)
		}
	})

	t.Run("refund zero without estimate", func(t *testing.T) {
		job := jobAtStage(t, entities.StageEstimatePending)
		job, err := Cancel(job, "duplicate intake", "staff", testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.RefundAmount != 0 {
			t.Fatalf("expected refund 0, got %v", job.RefundAmount)
		}
	})

	t.Run("blocked after deposit", func(t *testing.T) {
		job := jobAtStage(t, entities.StageSchedulingPending)
		_, err := Cancel(job, "change of plans", "client", testNow)
		var pve *PolicyViolationError
		if !errors.As(err, &pve) {
			t.Fatalf("expected PolicyViolationError, got %v", err)
		}
		if pve.Reason != ReasonDepositPaid {
			t.Fatalf("unexpected reason: %q", pve.Reason)
		}
	})

	t.Run("blocked when already cancelled", func(t *testing.T) {
		job := jobAtStage(t, entities.StageQuoteSent)
		job, err := Cancel(job, "change of plans", "client", testNow)
		if err != nil {
			t.Fatalf("first cancel: %v", err)
		}
		_, err = Cancel(job, "again", "client", testNow)
		var pve *PolicyViolationError
		if !errors.As(err, &pve) {
			t.Fatalf("expected PolicyViolationError, got %v", err)
		}
		if pve.Reason != ReasonAlreadyTerminated {
			t.Fatalf("unexpected reason: %q", pve.Reason)
		}
	})

	t.Run("transitions blocked after cancellation", func(t *testing.T) {
		job := jobAtStage(t, entities.StageQuoteSent)
		job, err := Cancel(job, "change of plans", "client", testNow)
		if err != nil {
			t.Fatalf("cancel: %v", err)
		}
		_, err = RecordClientResponse(job, true, "", testNow)
		var pve *PolicyViolationError
		if !errors.As(err, &pve) {
			t.Fatalf("expected PolicyViolationError, got %v", err)
		}
	})
}
