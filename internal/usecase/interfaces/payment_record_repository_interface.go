package interfaces

import (
	"context"

	"clearlot/internal/domain/entities"
)

//go:generate mockgen -source=payment_record_repository_interface.go -destination=mocks/mock_payment_record_repository.go

// IPaymentRecordRepository abstracts DynamoDB persistence for settlement
// records. Records are append-only; there is no update or delete.

type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.PaymentRecord, error)
}
