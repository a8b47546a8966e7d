package entities

import "time"

// JobStatus represents the terminal disposition of a clearance job.
//
// A job stays active for its whole lifecycle; cancellation moves it to
// cancelled or (once the refund decision is recorded) refunded.

type JobStatus string

const (
	JobStatusActive    JobStatus = "active"
	JobStatusCancelled JobStatus = "cancelled"
	JobStatusRefunded  JobStatus = "refunded"
)

// RefundStatus tracks the recorded refund decision. Actual money movement is
// owned by the payment collaborator; this service only records the outcome.

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusProcessed RefundStatus = "processed"
	RefundStatusFailed    RefundStatus = "failed"
)

// Stage is the job's position in the 8-step lifecycle. Stages are linear and,
// outside the cancellation path, monotonically non-decreasing.

type Stage int

const (
	StageEstimatePending     Stage = 1
	StageOpsReviewPending    Stage = 2
	StageQuoteDrafted        Stage = 3
	StageQuoteSent           Stage = 4
	StageDepositPending      Stage = 5
	StageSchedulingPending   Stage = 6
	StageExecutionPending    Stage = 7
	StageVerificationPending Stage = 8
)

var stageLabels = map[Stage]string{
	StageEstimatePending:     "estimate-pending",
	StageOpsReviewPending:    "ops-review-pending",
	StageQuoteDrafted:        "quote-drafted",
	StageQuoteSent:           "quote-sent",
	StageDepositPending:      "deposit-pending",
	StageSchedulingPending:   "scheduling-pending",
	StageExecutionPending:    "execution-pending",
	StageVerificationPending: "verification-pending",
}

func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return "unknown"
}

// RiskFlag tags a property condition spotted during photo analysis.

type RiskFlag string

const (
	RiskFlagHazardousMaterials RiskFlag = "hazardous_materials"
	RiskFlagHeavyDebris        RiskFlag = "heavy_debris"
	RiskFlagLimitedAccess      RiskFlag = "limited_access"
	RiskFlagOversizedItems     RiskFlag = "oversized_items"
	RiskFlagBiohazard          RiskFlag = "biohazard"
)

type PriceRange struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Recommended float64 `json:"recommended"`
}

// InternalEstimate is the AI-generated price/risk assessment.
//
// Internal-only: it must never appear in any client-facing projection. The
// projection package is the single authority for that boundary.

type InternalEstimate struct {
	VanLoads            int        `json:"van_loads"`
	RiskFlags           []RiskFlag `json:"risk_flags,omitempty"`
	SuggestedPriceRange PriceRange `json:"suggested_price_range"`
	Confidence          float64    `json:"confidence"`
	AnalysisNotes       string     `json:"analysis_notes,omitempty"`
	GeneratedAt         time.Time  `json:"generated_at"`
}

// ClientResponse records the client's answer to a sent quote.

type ClientResponse struct {
	Accepted        bool      `json:"accepted"`
	RespondedAt     time.Time `json:"responded_at"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
}

// ClientQuote is the only pricing artifact ever exposed to the client.
//
// Inside an OperationsReview it exists as a draft (no sent/validity
// timestamps); SendQuote materializes the standalone copy on the job.

type ClientQuote struct {
	FixedPrice         float64         `json:"fixed_price"`
	DepositAmount      float64         `json:"deposit_amount"`
	ScopeOfWork        []string        `json:"scope_of_work"`
	CompletionTimeline string          `json:"completion_timeline"`
	CancellationTerms  string          `json:"cancellation_terms"`
	ValidUntil         time.Time       `json:"valid_until,omitzero"`
	SentAt             time.Time       `json:"sent_at,omitzero"`
	ClientResponse     *ClientResponse `json:"client_response,omitempty"`
}

// OperationsReview is the mandatory staff approval step. At most one exists
// per job; re-review overwrites it.

type OperationsReview struct {
	Reviewer      string      `json:"reviewer"`
	ReviewedAt    time.Time   `json:"reviewed_at"`
	Approved      bool        `json:"approved"`
	FinalPrice    float64     `json:"final_price"`
	RiskBuffer    float64     `json:"risk_buffer"`
	InternalNotes string      `json:"internal_notes,omitempty"`
	QuoteDraft    ClientQuote `json:"quote_draft"`
}

// Job is the aggregate root for one clearance request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version (number) guards every update (compare-and-swap)
//
// All mutation goes through the workflow package's guarded transforms; the
// use case layer persists the result conditionally on the version read.

type Job struct {
	ID              string `json:"id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	PropertyAddress string `json:"property_address"`

	CurrentStage Stage     `json:"current_stage"`
	Status       JobStatus `json:"status"`

	InternalEstimate *InternalEstimate `json:"internal_estimate,omitempty"`
	OperationsReview *OperationsReview `json:"operations_review,omitempty"`
	ClientQuote      *ClientQuote      `json:"client_quote,omitempty"`

	DepositPaid   bool       `json:"deposit_paid"`
	DepositPaidAt *time.Time `json:"deposit_paid_at,omitempty"`

	Scheduled     bool       `json:"scheduled"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	CrewAssigned  string     `json:"crew_assigned,omitempty"`

	WorkCompleted bool       `json:"work_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	Verified      bool `json:"verified"`
	FinalInvoiced bool `json:"final_invoiced"`

	CancellationReason string       `json:"cancellation_reason,omitempty"`
	CancelledBy        string       `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time   `json:"cancelled_at,omitempty"`
	RefundStatus       RefundStatus `json:"refund_status,omitempty"`
	RefundAmount       float64      `json:"refund_amount,omitempty"`
	RefundedAt         *time.Time   `json:"refunded_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
