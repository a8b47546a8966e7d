package request

import "encoding/json"

// SettlementRequest is the payload for the deposit and final-invoice routes.
//
// `payer_payload` is forwarded to the payment provider as-is (raw JSON) to
// support varying Mercado Pago schemas; the charge amount is always taken
// from the stored quote, never from this payload.

type SettlementRequest struct {
	PayerPayload json.RawMessage `json:"payer_payload"`
}
