package response

import (
	"encoding/json"
	"testing"
	"time"

	"clearlot/internal/domain/entities"
)

func TestFromJob(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	job := entities.Job{
		ID:              "job-1",
		ClientName:      "Sam Client",
		PropertyAddress: "12 Ash Grove",
		CurrentStage:    entities.StageQuoteSent,
		Status:          entities.JobStatusActive,
		ClientQuote: &entities.ClientQuote{
			FixedPrice:    550,
			DepositAmount: 165,
			ValidUntil:    now.Add(7 * 24 * time.Hour),
			SentAt:        now,
		},
		Version:   4,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromJob(job)
	if res.ID != "job-1" || res.PropertyAddress != "12 Ash Grove" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.CurrentStage != 4 || res.StageLabel != "quote-sent" {
		t.Fatalf("unexpected stage fields: %+v", res)
	}
	if res.Status != "active" {
		t.Fatalf("unexpected status: %q", res.Status)
	}
	if res.ClientQuote == nil || res.ClientQuote.FixedPrice != 550 {
		t.Fatalf("unexpected quote: %+v", res.ClientQuote)
	}
	if res.Version != 4 || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected meta fields: %+v", res)
	}
}

func TestFromSettlement(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	job := entities.Job{ID: "job-1", CurrentStage: entities.StageSchedulingPending, Status: entities.JobStatusActive, DepositPaid: true}
	payment := entities.PaymentRecord{
		ID:                 "pay-1",
		JobID:              "job-1",
		Kind:               entities.PaymentKindDeposit,
		Amount:             165,
		Method:             "pix",
		TransactionID:      "mp-123",
		Date:               now,
		ProviderPayloadRaw: json.RawMessage(`{"id":"mp-123"}`),
		ProviderPayload:    map[string]interface{}{"id": "mp-123"},
	}

	res := FromSettlement(job, payment)
	if res.Job.ID != "job-1" || !res.Job.DepositPaid {
		t.Fatalf("unexpected job: %+v", res.Job)
	}
	if res.Payment.Kind != "deposit" || res.Payment.Amount != 165 {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
	if res.Payment.ProviderPayloadRaw != `{"id":"mp-123"}` {
		t.Fatalf("unexpected raw payload: %q", res.Payment.ProviderPayloadRaw)
	}
	if res.Payment.ProviderPayload["id"] != "mp-123" {
		t.Fatalf("unexpected parsed payload: %v", res.Payment.ProviderPayload)
	}
}
