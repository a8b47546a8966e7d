package request

import (
	"strings"
	"time"

	"clearlot/internal/domain/entities"
	"clearlot/internal/domain/pricing"
	"clearlot/internal/domain/workflow"
)

// IntakeRequest is the booking-intake payload submitted by the web client.

type IntakeRequest struct {
	ClientName      string `json:"client_name" binding:"required"`
	ClientEmail     string `json:"client_email"`
	PropertyAddress string `json:"property_address" binding:"required"`
}

type PriceRangeRequest struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Recommended float64 `json:"recommended" binding:"required"`
}

// EstimateRequest carries the AI collaborator's analysis result. The service
// does not run estimation itself; it records the outcome and advances the
// job.

type EstimateRequest struct {
	VanLoads            int               `json:"van_loads"`
	RiskFlags           []string          `json:"risk_flags"`
	SuggestedPriceRange PriceRangeRequest `json:"suggested_price_range" binding:"required"`
	Confidence          float64           `json:"confidence"`
	AnalysisNotes       string            `json:"analysis_notes"`
}

func (r EstimateRequest) ToEntity() entities.InternalEstimate {
	flags := make([]entities.RiskFlag, 0, len(r.RiskFlags))
	for _, f := range r.RiskFlags {
		if v := strings.TrimSpace(f); v != "" {
			flags = append(flags, entities.RiskFlag(v))
		}
	}
	return entities.InternalEstimate{
		VanLoads:  r.VanLoads,
		RiskFlags: flags,
		SuggestedPriceRange: entities.PriceRange{
			Min:         r.SuggestedPriceRange.Min,
			Max:         r.SuggestedPriceRange.Max,
			Recommended: r.SuggestedPriceRange.Recommended,
		},
		Confidence:    r.Confidence,
		AnalysisNotes: r.AnalysisNotes,
	}
}

// OpsReviewRequest is the operations reviewer's submission. Omitted pricing
// fields fall back to estimate-derived defaults.

type OpsReviewRequest struct {
	Reviewer           string   `json:"reviewer" binding:"required"`
	Approved           *bool    `json:"approved"`
	FinalPrice         *float64 `json:"final_price"`
	DepositAmount      *float64 `json:"deposit_amount"`
	RiskBuffer         float64  `json:"risk_buffer"`
	InternalNotes      string   `json:"internal_notes"`
	ScopeOfWork        []string `json:"scope_of_work"`
	CompletionTimeline string   `json:"completion_timeline"`
	CancellationTerms  string   `json:"cancellation_terms"`
}

func (r OpsReviewRequest) ToReviewInput() workflow.ReviewInput {
	return workflow.ReviewInput{
		Reviewer:      r.Reviewer,
		Approved:      r.Approved,
		RiskBuffer:    r.RiskBuffer,
		InternalNotes: r.InternalNotes,
		Quote: pricing.Overrides{
			FinalPrice:         r.FinalPrice,
			DepositAmount:      r.DepositAmount,
			ScopeOfWork:        r.ScopeOfWork,
			CompletionTimeline: r.CompletionTimeline,
			CancellationTerms:  r.CancellationTerms,
		},
	}
}

// QuoteResponseRequest records the client's answer to a sent quote. Accepted
// is a pointer so that an explicit false is distinguishable from a missing
// field.

type QuoteResponseRequest struct {
	Accepted        *bool  `json:"accepted" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

type ScheduleRequest struct {
	Crew string    `json:"crew" binding:"required"`
	Date time.Time `json:"date" binding:"required"`
}

type CancelRequest struct {
	Reason      string `json:"reason" binding:"required"`
	CancelledBy string `json:"cancelled_by"`
}
