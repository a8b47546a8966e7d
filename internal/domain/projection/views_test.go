package projection

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"clearlot/internal/domain/entities"
	"clearlot/internal/domain/workflow"
)

func sampleJob() entities.Job {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	scheduled := now.Add(72 * time.Hour)
	return entities.Job{
		ID:              "job-1",
		ClientName:      "Sam Client",
		ClientEmail:     "sam@example.com",
		PropertyAddress: "12 Ash Grove",
		CurrentStage:    entities.StageExecutionPending,
		Status:          entities.JobStatusActive,
		InternalEstimate: &entities.InternalEstimate{
			VanLoads:  3,
			RiskFlags: []entities.RiskFlag{entities.RiskFlagHazardousMaterials},
			SuggestedPriceRange: entities.PriceRange{
				Min:         400,
				Max:         650,
				Recommended: 500,
			},
			Confidence:    0.8,
			AnalysisNotes: "CONFIDENTIAL-ANALYSIS-NOTE",
			GeneratedAt:   now,
		},
		OperationsReview: &entities.OperationsReview{
			Reviewer:      "ops-ana",
			ReviewedAt:    now,
			Approved:      true,
			FinalPrice:    550,
			RiskBuffer:    50,
			InternalNotes: "CONFIDENTIAL-REVIEW-NOTE",
		},
		ClientQuote: &entities.ClientQuote{
			FixedPrice:         550,
			DepositAmount:      165,
			ScopeOfWork:        []string{"full house clearance"},
			CompletionTimeline: "2-3 business days",
			CancellationTerms:  "deposit non-refundable",
			ValidUntil:         now.Add(7 * 24 * time.Hour),
			SentAt:             now,
			ClientResponse:     &entities.ClientResponse{Accepted: true, RespondedAt: now},
		},
		DepositPaid:   true,
		DepositPaidAt: &now,
		Scheduled:     true,
		ScheduledDate: &scheduled,
		CrewAssigned:  "crew-7",
		Version:       6,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestForClient(t *testing.T) {
	t.Run("copies quote and schedule", func(t *testing.T) {
		view := ForClient(sampleJob())
		if view.JobID != "job-1" || view.PropertyAddress != "12 Ash Grove" {
			t.Fatalf("unexpected identity fields: %+v", view)
		}
		if view.StageLabel != entities.StageExecutionPending.Label() {
			t.Fatalf("unexpected stage label: %q", view.StageLabel)
		}
		if view.Quote == nil || view.Quote.FixedPrice != 550 || view.Quote.DepositAmount != 165 {
			t.Fatalf("unexpected quote view: %+v", view.Quote)
		}
		if view.Quote.Response == nil || !view.Quote.Response.Accepted {
			t.Fatalf("unexpected response view: %+v", view.Quote.Response)
		}
		if view.Schedule == nil || view.Schedule.CrewAssigned != "crew-7" {
			t.Fatalf("unexpected schedule view: %+v", view.Schedule)
		}
		if !view.DepositPaid || view.WorkCompleted {
			t.Fatalf("unexpected flags: %+v", view)
		}
	})

	t.Run("omits internal fields from serialized form", func(t *testing.T) {
		raw, err := json.Marshal(ForClient(sampleJob()))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body := string(raw)
		for _, leaked := range []string{
			"CONFIDENTIAL-ANALYSIS-NOTE",
			"CONFIDENTIAL-REVIEW-NOTE",
			"ops-ana",
			string(entities.RiskFlagHazardousMaterials),
			"van_loads",
			"risk_buffer",
			"suggested_price_range",
		} {
			if strings.Contains(body, leaked) {
				t.Fatalf("client view leaks %q: %s", leaked, body)
			}
		}
	})

	t.Run("no quote before send", func(t *testing.T) {
		job := sampleJob()
		job.ClientQuote = nil
		job.Scheduled = false
		job.ScheduledDate = nil
		view := ForClient(job)
		if view.Quote != nil || view.Schedule != nil {
			t.Fatalf("expected empty optional sections: %+v", view)
		}
	})
}

func TestForStaff(t *testing.T) {
	job := sampleJob()
	view := ForStaff(job)

	if view.Job.InternalEstimate == nil || view.Job.InternalEstimate.AnalysisNotes != "CONFIDENTIAL-ANALYSIS-NOTE" {
		t.Fatalf("staff view must include the internal estimate: %+v", view.Job.InternalEstimate)
	}
	if view.Job.OperationsReview == nil || view.Job.OperationsReview.InternalNotes != "CONFIDENTIAL-REVIEW-NOTE" {
		t.Fatalf("staff view must include the review: %+v", view.Job.OperationsReview)
	}
	if view.StageLabel != entities.StageExecutionPending.Label() {
		t.Fatalf("unexpected stage label: %q", view.StageLabel)
	}
	if view.CancelStatus.Allowed || view.CancelStatus.Reason != workflow.ReasonDepositPaid {
		t.Fatalf("unexpected cancel status: %+v", view.CancelStatus)
	}
}
