package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clearlot/internal/adapter/http/handlers/mocks"
	"clearlot/internal/domain/entities"
	"clearlot/internal/domain/workflow"
	"clearlot/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func samplePayment(kind entities.PaymentKind, amount float64) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:            "pay-1",
		JobID:         "job-1",
		Kind:          kind,
		Amount:        amount,
		Method:        "pix",
		TransactionID: "mp-123",
		Date:          time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestSettlementHandler_CollectDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/deposit", h.CollectDeposit)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/deposit", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/deposit", h.CollectDeposit)

		job := sampleJob()
		job.CurrentStage = entities.StageSchedulingPending
		job.DepositPaid = true
		uc.EXPECT().CollectDeposit(gomock.Any(), "job-1", json.RawMessage("{}")).Return(job, samplePayment(entities.PaymentKindDeposit, 165), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/deposit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("envelope payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/deposit", h.CollectDeposit)

		job := sampleJob()
		uc.EXPECT().CollectDeposit(gomock.Any(), "job-1", json.RawMessage(`{"payment_method_id":"pix"}`)).Return(job, samplePayment(entities.PaymentKindDeposit, 165), nil)

		body := `{"payer_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/deposit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/deposit", h.CollectDeposit)

		uc.EXPECT().CollectDeposit(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, entities.PaymentRecord{}, &workflow.DuplicateSettlementError{Settlement: "deposit"})

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/deposit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "DUPLICATE_SETTLEMENT") {
			t.Fatalf("expected DUPLICATE_SETTLEMENT code, got %s", w.Body.String())
		}
	})

	t.Run("gateway not configured maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/deposit", h.CollectDeposit)

		uc.EXPECT().CollectDeposit(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, entities.PaymentRecord{}, usecase.ErrPaymentGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/deposit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success returns job and payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/deposit", h.CollectDeposit)

		job := sampleJob()
		job.CurrentStage = entities.StageSchedulingPending
		job.DepositPaid = true
		uc.EXPECT().CollectDeposit(gomock.Any(), "job-1", gomock.Any()).Return(job, samplePayment(entities.PaymentKindDeposit, 165), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/deposit", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Job struct {
				DepositPaid bool `json:"deposit_paid"`
			} `json:"job"`
			Payment struct {
				Kind   string  `json:"kind"`
				Amount float64 `json:"amount"`
			} `json:"payment"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Job.DepositPaid || resp.Payment.Kind != "deposit" || resp.Payment.Amount != 165 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestSettlementHandler_RecordFinalPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/invoice", h.RecordFinalPayment)

		job := sampleJob()
		job.CurrentStage = entities.StageVerificationPending
		job.Verified = true
		job.FinalInvoiced = true
		uc.EXPECT().RecordFinalPayment(gomock.Any(), "job-1", gomock.Any()).Return(job, samplePayment(entities.PaymentKindFinal, 385), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"final_invoiced":true`) {
			t.Fatalf("expected invoiced job in body, got %s", w.Body.String())
		}
	})

	t.Run("no accepted quote maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/invoice", h.RecordFinalPayment)

		uc.EXPECT().RecordFinalPayment(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, entities.PaymentRecord{}, usecase.ErrNoAcceptedQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSettlementHandler_GetPaymentByJobID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/payments/:job_id", h.GetPaymentByJobID)

		uc.EXPECT().ListPaymentsByJobID(gomock.Any(), "job-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/payments/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/payments/:job_id", h.GetPaymentByJobID)

		deposit := samplePayment(entities.PaymentKindDeposit, 165)
		final := samplePayment(entities.PaymentKindFinal, 385)
		final.ID = "pay-2"
		final.Date = deposit.Date.Add(96 * time.Hour)
		uc.EXPECT().ListPaymentsByJobID(gomock.Any(), "job-1").Return([]entities.PaymentRecord{deposit, final}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/payments/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			ID   string `json:"id"`
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ID != "pay-2" || resp.Kind != "final" {
			t.Fatalf("expected latest payment, got %+v", resp)
		}
	})

	t.Run("invalid job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/payments/:job_id", h.GetPaymentByJobID)

		uc.EXPECT().ListPaymentsByJobID(gomock.Any(), " ").Return(nil, usecase.ErrInvalidJobID)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/payments/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
