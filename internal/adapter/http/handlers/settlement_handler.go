package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "clearlot/internal/adapter/http/dto/request"
	response "clearlot/internal/adapter/http/dto/response"
	"clearlot/internal/domain/entities"
	"clearlot/internal/usecase"
	"clearlot/pkg"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles HTTP requests for deposit and final-invoice
// collection and for reading settlement records.

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

// CollectDeposit charges the quote's deposit for the job in the path. This is
// the irrevocable cancellation lock point.
func (h *SettlementHandler) CollectDeposit(c *gin.Context) {
	h.settle(c, "deposit", h.usecase.CollectDeposit)
}

// RecordFinalPayment charges the remaining balance and closes the job.
func (h *SettlementHandler) RecordFinalPayment(c *gin.Context) {
	h.settle(c, "final", h.usecase.RecordFinalPayment)
}

func (h *SettlementHandler) settle(
	c *gin.Context,
	kind string,
	collect func(ctx context.Context, jobID string, payerPayload json.RawMessage) (entities.Job, entities.PaymentRecord, error),
) {
	jobID := c.Param("id")
	log.Printf("[settlement][handler] %s start job_id=%s", kind, jobID)

	payload, err := readSettlementPayload(c)
	if err != nil {
		log.Printf("[settlement][handler] invalid payload job_id=%s err=%v", jobID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, record, err := collect(c.Request.Context(), jobID, payload)
	if err != nil {
		log.Printf("[settlement][handler] %s failed job_id=%s err=%v", kind, jobID, err)
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settlement][handler] %s success job_id=%s payment_id=%s", kind, jobID, record.ID)

	c.JSON(http.StatusOK, response.FromSettlement(job, record))
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoAcceptedQuote):
		return pkg.NewDomainErrorSimple("NO_ACCEPTED_QUOTE", "Job has no accepted quote to settle against", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapJobError(err)
	}
}

// GetPaymentByJobID returns the latest settlement record for a job.
func (h *SettlementHandler) GetPaymentByJobID(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[settlement][handler] get-by-job start job_id=%s", jobID)

	payments, err := h.usecase.ListPaymentsByJobID(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[settlement][handler] get-by-job failed job_id=%s err=%v", jobID, err)
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[settlement][handler] get-by-job not-found job_id=%s", jobID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[settlement][handler] get-by-job success job_id=%s payment_id=%s kind=%s", jobID, latest.ID, latest.Kind)

	c.JSON(http.StatusOK, response.FromPaymentRecord(latest))
}

// readSettlementPayload accepts either a bare provider payload or the
// SettlementRequest envelope, and tolerates an empty body (mock-friendly).
func readSettlementPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.SettlementRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.PayerPayload) > 0 {
		trimmed := strings.TrimSpace(string(envelope.PayerPayload))
		if trimmed != "" && trimmed != "null" {
			return envelope.PayerPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}
