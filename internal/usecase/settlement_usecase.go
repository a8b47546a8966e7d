package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"clearlot/internal/domain/entities"
	"clearlot/internal/domain/workflow"
	"clearlot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound             = errors.New("payment record not found")
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrNoAcceptedQuote             = errors.New("job has no accepted quote to settle against")
)

// ISettlementUseCase encapsulates the settlement tracker: charge through the
// gateway, append an immutable payment record, flip exactly one flag on the
// job (deposit paid / final invoiced). Each settlement can succeed once.

type ISettlementUseCase interface {
	CollectDeposit(ctx context.Context, jobID string, payerPayload json.RawMessage) (entities.Job, entities.PaymentRecord, error)
	RecordFinalPayment(ctx context.Context, jobID string, payerPayload json.RawMessage) (entities.Job, entities.PaymentRecord, error)
	ListPaymentsByJobID(ctx context.Context, jobID string) ([]entities.PaymentRecord, error)
}

type SettlementUseCase struct {
	jobRepo     interfaces.IJobRepository
	paymentRepo interfaces.IPaymentRecordRepository
	gateway     interfaces.IPaymentGateway
	now         func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(jobRepo interfaces.IJobRepository, paymentRepo interfaces.IPaymentRecordRepository, gateway interfaces.IPaymentGateway) *SettlementUseCase {
	return &SettlementUseCase{
		jobRepo:     jobRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CollectDeposit charges the quote's deposit amount and applies the deposit
// transition. The transition runs twice: a dry run against the loaded
// snapshot before any money moves, and again inside the conditional save, so
// a concurrent duplicate fails its precondition re-check instead of charging
// twice.
func (u *SettlementUseCase) CollectDeposit(ctx context.Context, jobID string, payerPayload json.RawMessage) (entities.Job, entities.PaymentRecord, error) {
	return u.settle(ctx, jobID, payerPayload, entities.PaymentKindDeposit, workflow.CollectDeposit)
}

// RecordFinalPayment charges the remaining balance and applies the terminal
// verify-and-invoice transition.
func (u *SettlementUseCase) RecordFinalPayment(ctx context.Context, jobID string, payerPayload json.RawMessage) (entities.Job, entities.PaymentRecord, error) {
	return u.settle(ctx, jobID, payerPayload, entities.PaymentKindFinal, workflow.VerifyAndInvoice)
}

func (u *SettlementUseCase) settle(
	ctx context.Context,
	jobID string,
	payerPayload json.RawMessage,
	kind entities.PaymentKind,
	apply func(entities.Job, time.Time) (entities.Job, error),
) (entities.Job, entities.PaymentRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, entities.PaymentRecord{}, ErrInvalidJobID
	}
	if u.gateway == nil {
		log.Printf("[settlement][usecase] gateway not configured job_id=%s", jobID)
		return entities.Job{}, entities.PaymentRecord{}, ErrPaymentGatewayNotConfigured
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, entities.PaymentRecord{}, err
	}
	if job.ID == "" {
		return entities.Job{}, entities.PaymentRecord{}, ErrJobNotFound
	}

	// Dry run: reject wrong-stage and duplicate calls before touching the
	// gateway.
	if _, err := apply(job, u.now()); err != nil {
		log.Printf("[settlement][usecase] %s precondition failed job_id=%s stage=%d err=%v", kind, jobID, job.CurrentStage, err)
		return entities.Job{}, entities.PaymentRecord{}, err
	}

	// A persisted record of this kind means the gateway was already charged,
	// even if the job flag flip lost its race. Never charge again; the stored
	// record is the reconciliation source.
	existing, err := u.paymentRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.Job{}, entities.PaymentRecord{}, err
	}
	for _, p := range existing {
		if p.Kind == kind {
			log.Printf("[settlement][usecase] %s already recorded job_id=%s payment_id=%s", kind, jobID, p.ID)
			return entities.Job{}, entities.PaymentRecord{}, &workflow.DuplicateSettlementError{Settlement: settlementLabel(kind)}
		}
	}

	amount, err := settlementAmount(job, kind)
	if err != nil {
		return entities.Job{}, entities.PaymentRecord{}, err
	}

	payload, err := enrichPayerPayload(payerPayload, job.ID, kind, amount)
	if err != nil {
		log.Printf("[settlement][usecase] invalid payload job_id=%s err=%v", jobID, err)
		return entities.Job{}, entities.PaymentRecord{}, ErrInvalidPaymentPayload
	}

	log.Printf("[settlement][usecase] charging gateway job_id=%s kind=%s amount=%.2f", jobID, kind, amount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[settlement][usecase] gateway charge failed job_id=%s kind=%s err=%v", jobID, kind, err)
		return entities.Job{}, entities.PaymentRecord{}, err
	}
	log.Printf("[settlement][usecase] gateway charge success job_id=%s provider_payment_id=%s provider_status=%s", jobID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[settlement][usecase] provider response unmarshal failed job_id=%s err=%v", jobID, err)
	}

	// Persist the record before flipping the job flag: if the flip loses a
	// concurrent race the charge is still on file, and the stored record
	// blocks any retry from charging twice.
	record := entities.PaymentRecord{
		ID:                 uuid.NewString(),
		JobID:              jobID,
		Kind:               kind,
		Amount:             amount,
		Method:             paymentMethod(payload),
		TransactionID:      providerPaymentID,
		Date:               u.now(),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.paymentRepo.Create(ctx, record)
	if err != nil {
		log.Printf("[settlement][usecase] payment record create failed job_id=%s payment_id=%s provider_payment_id=%s err=%v", jobID, record.ID, providerPaymentID, err)
		return entities.Job{}, entities.PaymentRecord{}, err
	}

	updated, err := mutateJob(ctx, u.jobRepo, u.now, jobID, apply)
	if err != nil {
		// The charge went through and is recorded, but the flag flip lost the
		// race (e.g. a concurrent cancellation won). Surface the typed error;
		// reconciliation against the stored record is the operator's call.
		log.Printf("[settlement][usecase] flag flip rejected after charge job_id=%s kind=%s payment_id=%s err=%v", jobID, kind, created.ID, err)
		return entities.Job{}, entities.PaymentRecord{}, err
	}
	log.Printf("[settlement][usecase] %s settled job_id=%s payment_id=%s amount=%.2f", kind, jobID, created.ID, created.Amount)
	return updated, created, nil
}

// settlementLabel names a settlement kind the way the duplicate guard in the
// workflow package does.
func settlementLabel(kind entities.PaymentKind) string {
	if kind == entities.PaymentKindFinal {
		return "final payment"
	}
	return "deposit"
}

func (u *SettlementUseCase) ListPaymentsByJobID(ctx context.Context, jobID string) ([]entities.PaymentRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.paymentRepo.ListByJobID(ctx, jobID)
}

// settlementAmount derives what the gateway should charge: the quote's
// deposit, or the remaining balance for the final invoice.
func settlementAmount(job entities.Job, kind entities.PaymentKind) (float64, error) {
	quote := job.ClientQuote
	if quote == nil || quote.ClientResponse == nil || !quote.ClientResponse.Accepted {
		return 0, ErrNoAcceptedQuote
	}
	if kind == entities.PaymentKindDeposit {
		return quote.DepositAmount, nil
	}
	if job.DepositPaid {
		return quote.FixedPrice - quote.DepositAmount, nil
	}
	return quote.FixedPrice, nil
}

// enrichPayerPayload overlays the job linkage and the authoritative amount on
// whatever payer details the caller supplied. The amount always comes from
// the stored quote, never from the request.
func enrichPayerPayload(raw json.RawMessage, jobID string, kind entities.PaymentKind, amount float64) (json.RawMessage, error) {
	m := map[string]any{}
	if len(raw) > 0 {
		if !json.Valid(raw) {
			return nil, errors.New("payload is not valid json")
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
	}

	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = jobID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Clearance job %s (%s)", jobID, kind)
	}
	m["transaction_amount"] = amount

	return json.Marshal(m)
}

func paymentMethod(payload json.RawMessage) string {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err == nil {
		if s, ok := m["payment_method_id"].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return "mercadopago"
}
