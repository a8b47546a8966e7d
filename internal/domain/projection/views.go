package projection

import (
	"time"

	"clearlot/internal/domain/entities"
	"clearlot/internal/domain/workflow"
)

// Visibility projector: the single authority for what each caller role may
// see. The client view is a separate type with no field capable of holding
// the internal estimate or the review's internal notes, so the boundary holds
// structurally rather than through render-time filtering.

type QuoteView struct {
	FixedPrice         float64       `json:"fixed_price"`
	DepositAmount      float64       `json:"deposit_amount"`
	ScopeOfWork        []string      `json:"scope_of_work"`
	CompletionTimeline string        `json:"completion_timeline"`
	CancellationTerms  string        `json:"cancellation_terms"`
	ValidUntil         time.Time     `json:"valid_until"`
	SentAt             time.Time     `json:"sent_at"`
	Response           *ResponseView `json:"response,omitempty"`
}

type ResponseView struct {
	Accepted        bool      `json:"accepted"`
	RespondedAt     time.Time `json:"responded_at"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
}

type ScheduleView struct {
	ScheduledDate time.Time `json:"scheduled_date"`
	CrewAssigned  string    `json:"crew_assigned"`
}

// ClientView is the client-safe read model: the quote (if sent), the
// scheduling summary and a stage-derived status label.

type ClientView struct {
	JobID           string        `json:"job_id"`
	PropertyAddress string        `json:"property_address"`
	Status          string        `json:"status"`
	StageLabel      string        `json:"stage_label"`
	Quote           *QuoteView    `json:"quote,omitempty"`
	Schedule        *ScheduleView `json:"schedule,omitempty"`
	DepositPaid     bool          `json:"deposit_paid"`
	WorkCompleted   bool          `json:"work_completed"`
}

// InternalView is the staff read model: the full aggregate plus derived
// helpers the dashboards need.

type InternalView struct {
	Job          entities.Job            `json:"job"`
	StageLabel   string                  `json:"stage_label"`
	CancelStatus workflow.CancelDecision `json:"cancel_status"`
}

// ForClient derives the client-safe view. Fails closed: anything not
// explicitly copied here is invisible to client-role callers.
func ForClient(job entities.Job) ClientView {
	view := ClientView{
		JobID:           job.ID,
		PropertyAddress: job.PropertyAddress,
		Status:          string(job.Status),
		StageLabel:      job.CurrentStage.Label(),
		DepositPaid:     job.DepositPaid,
		WorkCompleted:   job.WorkCompleted,
	}

	if q := job.ClientQuote; q != nil {
		qv := &QuoteView{
			FixedPrice:         q.FixedPrice,
			DepositAmount:      q.DepositAmount,
			ScopeOfWork:        append([]string(nil), q.ScopeOfWork...),
			CompletionTimeline: q.CompletionTimeline,
			CancellationTerms:  q.CancellationTerms,
			ValidUntil:         q.ValidUntil,
			SentAt:             q.SentAt,
		}
		if r := q.ClientResponse; r != nil {
			qv.Response = &ResponseView{Accepted: r.Accepted, RespondedAt: r.RespondedAt, RejectionReason: r.RejectionReason}
		}
		view.Quote = qv
	}

	if job.Scheduled && job.ScheduledDate != nil {
		view.Schedule = &ScheduleView{ScheduledDate: *job.ScheduledDate, CrewAssigned: job.CrewAssigned}
	}

	return view
}

// ForStaff derives the internal view with every field included.
func ForStaff(job entities.Job) InternalView {
	return InternalView{
		Job:          job,
		StageLabel:   job.CurrentStage.Label(),
		CancelStatus: workflow.CanCancel(job),
	}
}
