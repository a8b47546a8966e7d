package workflow

import (
	"time"

	"clearlot/internal/domain/entities"
	"clearlot/internal/domain/pricing"
)

// Stage transition engine: each operation is a guarded pure transform over a
// Job snapshot. Given a job outside its precondition it returns a typed error
// and the zero Job; it never mutates its input or advances silently.

// QuoteValidity is how long a sent quote stays answerable.
const QuoteValidity = 7 * 24 * time.Hour

// ReviewInput is the operations reviewer's submission. Approved defaults to
// true when omitted; a reviewer can withhold approval explicitly, which
// blocks SendQuote until a re-review.

type ReviewInput struct {
	Reviewer      string
	Approved      *bool
	RiskBuffer    float64
	InternalNotes string
	Quote         pricing.Overrides
}

// NewJob builds the stage-1 aggregate for a fresh intake.
func NewJob(id, clientName, clientEmail, propertyAddress string, now time.Time) entities.Job {
	return entities.Job{
		ID:              id,
		ClientName:      clientName,
		ClientEmail:     clientEmail,
		PropertyAddress: propertyAddress,
		CurrentStage:    entities.StageEstimatePending,
		Status:          entities.JobStatusActive,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func requireActive(job entities.Job) error {
	if job.Status != entities.JobStatusActive {
		return &PolicyViolationError{Reason: "job is " + string(job.Status) + ", no further transitions allowed"}
	}
	return nil
}

// GenerateEstimate attaches the internal estimate and advances to stage 2.
func GenerateEstimate(job entities.Job, estimate entities.InternalEstimate, now time.Time) (entities.Job, error) {
	if err := requireActive(job); err != nil {
		return entities.Job{}, err
	}
	if job.CurrentStage != entities.StageEstimatePending {
		return entities.Job{}, invalidTransition("generate estimate", entities.StageEstimatePending, job.CurrentStage)
	}

	estimate.GeneratedAt = now
	job.InternalEstimate = &estimate
	job.CurrentStage = entities.StageOpsReviewPending
	job.UpdatedAt = now
	return job, nil
}

// SubmitOpsReview builds the operations review and its nested client-quote
// draft, falling back to estimate-derived defaults for any field the reviewer
// did not override. Re-review replaces the existing record; it never appends.
//
// Accepted at stage 2 (first review) and at stage 4 when the sent quote is
// reworkable (rejected, or expired unanswered), so operations can rework the
// price without regressing the stage.
func SubmitOpsReview(job entities.Job, input ReviewInput, now time.Time) (entities.Job, error) {
	if err := requireActive(job); err != nil {
		return entities.Job{}, err
	}
	if job.CurrentStage != entities.StageOpsReviewPending && !quoteReworkable(job, now) {
		return entities.Job{}, invalidTransition("submit ops review", entities.StageOpsReviewPending, job.CurrentStage)
	}
	if job.InternalEstimate == nil {
		return entities.Job{}, &PolicyViolationError{Reason: "ops review requires an internal estimate"}
	}

	draft := pricing.DeriveClientQuote(*job.InternalEstimate, input.Quote)

	approved := true
	if input.Approved != nil {
		approved = *input.Approved
	}

	job.OperationsReview = &entities.OperationsReview{
		Reviewer:      input.Reviewer,
		ReviewedAt:    now,
		Approved:      approved,
		FinalPrice:    draft.FixedPrice,
		RiskBuffer:    input.RiskBuffer,
		InternalNotes: input.InternalNotes,
		QuoteDraft:    draft,
	}
	if job.CurrentStage == entities.StageOpsReviewPending {
		job.CurrentStage = entities.StageQuoteDrafted
	}
	job.UpdatedAt = now
	return job, nil
}

// SendQuote materializes the standalone client quote from the approved review
// draft, stamping the sent time and validity deadline. Re-send after a
// rejection or an unanswered expiry issues a fresh validity window and clears
// the old response.
func SendQuote(job entities.Job, now time.Time) (entities.Job, error) {
	if err := requireActive(job); err != nil {
		return entities.Job{}, err
	}
	if job.CurrentStage != entities.StageQuoteDrafted && !quoteReworkable(job, now) {
		return entities.Job{}, invalidTransition("send quote", entities.StageQuoteDrafted, job.CurrentStage)
	}
	if job.OperationsReview == nil || !job.OperationsReview.Approved {
		return entities.Job{}, &PolicyViolationError{Reason: "quote cannot be sent without an approved operations review"}
	}

	quote := job.OperationsReview.QuoteDraft
	quote.ScopeOfWork = append([]string(nil), quote.ScopeOfWork...)
	quote.SentAt = now
	quote.ValidUntil = now.Add(QuoteValidity)
	quote.ClientResponse = nil

	job.ClientQuote = &quote
	job.CurrentStage = entities.StageQuoteSent
	job.UpdatedAt = now
	return job, nil
}

// RecordClientResponse stores the client's answer to an unexpired quote.
// Acceptance advances to deposit collection, or straight to scheduling when
// no deposit is due. Rejection stores the reason and holds the stage; the
// review/send operations become re-enterable.
func RecordClientResponse(job entities.Job, accepted bool, reason string, now time.Time) (entities.Job, error) {
	if err := requireActive(job); err != nil {
		return entities.Job{}, err
	}
	if job.CurrentStage != entities.StageQuoteSent {
		return entities.Job{}, invalidTransition("record client response", entities.StageQuoteSent, job.CurrentStage)
	}
	if job.ClientQuote == nil {
		return entities.Job{}, &PolicyViolationError{Reason: "no quote has been sent"}
	}
	if job.ClientQuote.ClientResponse != nil && job.ClientQuote.ClientResponse.Accepted {
		return entities.Job{}, &PolicyViolationError{Reason: "quote already accepted"}
	}
	if now.After(job.ClientQuote.ValidUntil) {
		return entities.Job{}, &PolicyViolationError{Reason: "quote validity deadline passed"}
	}

	quote := *job.ClientQuote
	if accepted {
		quote.ClientResponse = &entities.ClientResponse{Accepted: true, RespondedAt: now}
		if quote.DepositAmount > 0 {
			job.CurrentStage = entities.StageDepositPending
		} else {
			job.CurrentStage = entities.StageSchedulingPending
		}
	} else {
		quote.ClientResponse = &entities.ClientResponse{Accepted: false, RespondedAt: now, RejectionReason: reason}
	}
	job.ClientQuote = &quote
	job.UpdatedAt = now
	return job, nil
}

// CollectDeposit marks the deposit as paid and advances to scheduling. This
// is the irrevocable lock point: cancellation is permanently forbidden once
// it succeeds. A repeat call is a duplicate-settlement error, never a second
// charge.
func CollectDeposit(job entities.Job, now time.Time) (entities.Job, error) {
	if job.DepositPaid {
		return entities.Job{}, &DuplicateSettlementError{Settlement: "deposit"}
	}
	if err := requireActive(job); err != nil {
		return entities.Job{}, err
	}
	if job.CurrentStage != entities.StageDepositPending {
		return entities.Job{}, invalidTransition("collect deposit", entities.StageDepositPending, job.CurrentStage)
	}

	paidAt := now
	job.DepositPaid = true
	job.DepositPaidAt = &paidAt
	job.CurrentStage = entities.StageSchedulingPending
	job.UpdatedAt = now
	return job, nil
}

// ScheduleJob assigns the crew and date and advances to execution.
func ScheduleJob(job entities.Job, crew string, date time.Time, now time.Time) (entities.Job, error) {
	if err := requireActive(job); err != nil {
		return entities.Job{}, err
	}
	if job.CurrentStage != entities.StageSchedulingPending {
		return entities.Job{}, invalidTransition("schedule job", entities.StageSchedulingPending, job.CurrentStage)
	}

	job.Scheduled = true
	job.ScheduledDate = &date
	job.CrewAssigned = crew
	job.CurrentStage = entities.StageExecutionPending
	job.UpdatedAt = now
	return job, nil
}

// CompleteJob marks the work done and advances to verification.
func CompleteJob(job entities.Job, now time.Time) (entities.Job, error) {
	if err := requireActive(job); err != nil {
		return entities.Job{}, err
	}
	if job.CurrentStage != entities.StageExecutionPending {
		return entities.Job{}, invalidTransition("complete job", entities.StageExecutionPending, job.CurrentStage)
	}

	completedAt := now
	job.WorkCompleted = true
	job.CompletedAt = &completedAt
	job.CurrentStage = entities.StageVerificationPending
	job.UpdatedAt = now
	return job, nil
}

// VerifyAndInvoice closes the job: verified and final-invoiced, terminal, no
// further advance. A repeat call is a duplicate-settlement error.
func VerifyAndInvoice(job entities.Job, now time.Time) (entities.Job, error) {
	if job.FinalInvoiced {
		return entities.Job{}, &DuplicateSettlementError{Settlement: "final payment"}
	}
	if err := requireActive(job); err != nil {
		return entities.Job{}, err
	}
	if job.CurrentStage != entities.StageVerificationPending {
		return entities.Job{}, invalidTransition("verify and invoice", entities.StageVerificationPending, job.CurrentStage)
	}
	if !job.WorkCompleted {
		return entities.Job{}, &PolicyViolationError{Reason: "work must be completed before verification"}
	}

	job.Verified = true
	job.FinalInvoiced = true
	job.UpdatedAt = now
	return job, nil
}

// quoteReworkable reports whether a stage-4 quote can go back through
// review/send: the client rejected it, or the validity deadline passed with no
// response at all. An accepted or still-answerable quote is not reworkable.
func quoteReworkable(job entities.Job, now time.Time) bool {
	if job.CurrentStage != entities.StageQuoteSent || job.ClientQuote == nil {
		return false
	}
	if r := job.ClientQuote.ClientResponse; r != nil {
		return !r.Accepted
	}
	return now.After(job.ClientQuote.ValidUntil)
}
