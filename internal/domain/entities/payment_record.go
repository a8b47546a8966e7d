package entities

import (
	"encoding/json"
	"time"
)

// PaymentKind distinguishes the two settlements a job can carry: the deposit
// that locks cancellation and the final invoice payment.

type PaymentKind string

const (
	PaymentKindDeposit PaymentKind = "deposit"
	PaymentKindFinal   PaymentKind = "final"
)

// PaymentRecord is an immutable settlement record appended by the settlement
// tracker. Records are never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type PaymentRecord struct {
	ID            string      `json:"id"`
	JobID         string      `json:"job_id"`
	Kind          PaymentKind `json:"kind"`
	Amount        float64     `json:"amount"`
	Method        string      `json:"method"`
	TransactionID string      `json:"transaction_id"`
	Date          time.Time   `json:"date"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
