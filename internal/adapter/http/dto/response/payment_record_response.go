package response

import (
	"time"

	"clearlot/internal/domain/entities"
)

type PaymentRecordResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"job_id"`
	Kind          string    `json:"kind"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:                 p.ID,
		JobID:              p.JobID,
		Kind:               string(p.Kind),
		Amount:             p.Amount,
		Method:             p.Method,
		TransactionID:      p.TransactionID,
		Date:               p.Date,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

// SettlementResponse pairs the updated job with the payment record appended
// by a settlement operation.

type SettlementResponse struct {
	Job     JobResponse           `json:"job"`
	Payment PaymentRecordResponse `json:"payment"`
}

func FromSettlement(job entities.Job, p entities.PaymentRecord) SettlementResponse {
	return SettlementResponse{Job: FromJob(job), Payment: FromPaymentRecord(p)}
}
