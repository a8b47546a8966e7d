package request

import (
	"testing"

	"clearlot/internal/domain/entities"
)

func TestEstimateRequest_ToEntity(t *testing.T) {
	r := EstimateRequest{
		VanLoads:  3,
		RiskFlags: []string{" heavy_debris ", "", "limited_access"},
		SuggestedPriceRange: PriceRangeRequest{
			Min:         400,
			Max:         650,
			Recommended: 500,
		},
		Confidence:    0.8,
		AnalysisNotes: "upper floor access is tight",
	}

	e := r.ToEntity()
	if e.VanLoads != 3 || e.Confidence != 0.8 {
		t.Fatalf("unexpected mapped fields: %+v", e)
	}
	if len(e.RiskFlags) != 2 {
		t.Fatalf("expected blank flags dropped, got %v", e.RiskFlags)
	}
	if e.RiskFlags[0] != entities.RiskFlagHeavyDebris || e.RiskFlags[1] != entities.RiskFlagLimitedAccess {
		t.Fatalf("unexpected flags: %v", e.RiskFlags)
	}
	if e.SuggestedPriceRange.Recommended != 500 || e.SuggestedPriceRange.Min != 400 {
		t.Fatalf("unexpected price range: %+v", e.SuggestedPriceRange)
	}
}

func TestOpsReviewRequest_ToReviewInput(t *testing.T) {
	price := 550.0
	approved := false
	r := OpsReviewRequest{
		Reviewer:           "ops-ana",
		Approved:           &approved,
		FinalPrice:         &price,
		RiskBuffer:         50,
		InternalNotes:      "priced above recommended",
		ScopeOfWork:        []string{"garage only"},
		CompletionTimeline: "same day",
	}

	input := r.ToReviewInput()
	if input.Reviewer != "ops-ana" || input.RiskBuffer != 50 {
		t.Fatalf("unexpected mapped fields: %+v", input)
	}
	if input.Approved == nil || *input.Approved {
		t.Fatalf("expected explicit approval=false, got %v", input.Approved)
	}
	if input.Quote.FinalPrice == nil || *input.Quote.FinalPrice != 550 {
		t.Fatalf("unexpected final price: %v", input.Quote.FinalPrice)
	}
	if input.Quote.DepositAmount != nil {
		t.Fatalf("expected nil deposit override, got %v", input.Quote.DepositAmount)
	}
	if len(input.Quote.ScopeOfWork) != 1 || input.Quote.CompletionTimeline != "same day" {
		t.Fatalf("unexpected quote overrides: %+v", input.Quote)
	}
}
