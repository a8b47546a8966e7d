package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The settlement tracker uses it to charge the deposit and the final invoice,
// persisting the provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
