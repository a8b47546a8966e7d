package response

import (
	"time"

	"clearlot/internal/domain/entities"
)

// JobResponse is the staff-facing representation of the aggregate, returned
// by intake and every stage-transition endpoint. Client-role reads go through
// the projection's ClientView instead and never see this shape.

type JobResponse struct {
	ID              string `json:"id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email,omitempty"`
	PropertyAddress string `json:"property_address"`

	CurrentStage int    `json:"current_stage"`
	StageLabel   string `json:"stage_label"`
	Status       string `json:"status"`

	InternalEstimate *entities.InternalEstimate `json:"internal_estimate,omitempty"`
	OperationsReview *entities.OperationsReview `json:"operations_review,omitempty"`
	ClientQuote      *entities.ClientQuote      `json:"client_quote,omitempty"`

	DepositPaid   bool       `json:"deposit_paid"`
	DepositPaidAt *time.Time `json:"deposit_paid_at,omitempty"`

	Scheduled     bool       `json:"scheduled"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	CrewAssigned  string     `json:"crew_assigned,omitempty"`

	WorkCompleted bool       `json:"work_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	Verified      bool `json:"verified"`
	FinalInvoiced bool `json:"final_invoiced"`

	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	RefundStatus       string     `json:"refund_status,omitempty"`
	RefundAmount       float64    `json:"refund_amount,omitempty"`
	RefundedAt         *time.Time `json:"refunded_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJob(job entities.Job) JobResponse {
	return JobResponse{
		ID:              job.ID,
		ClientName:      job.ClientName,
		ClientEmail:     job.ClientEmail,
		PropertyAddress: job.PropertyAddress,

		CurrentStage: int(job.CurrentStage),
		StageLabel:   job.CurrentStage.Label(),
		Status:       string(job.Status),

		InternalEstimate: job.InternalEstimate,
		OperationsReview: job.OperationsReview,
		ClientQuote:      job.ClientQuote,

		DepositPaid:   job.DepositPaid,
		DepositPaidAt: job.DepositPaidAt,

		Scheduled:     job.Scheduled,
		ScheduledDate: job.ScheduledDate,
		CrewAssigned:  job.CrewAssigned,

		WorkCompleted: job.WorkCompleted,
		CompletedAt:   job.CompletedAt,

		Verified:      job.Verified,
		FinalInvoiced: job.FinalInvoiced,

		CancellationReason: job.CancellationReason,
		CancelledBy:        job.CancelledBy,
		CancelledAt:        job.CancelledAt,
		RefundStatus:       string(job.RefundStatus),
		RefundAmount:       job.RefundAmount,
		RefundedAt:         job.RefundedAt,

		Version:   job.Version,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}
