package handlers

import (
	"errors"
	"net/http"

	request "clearlot/internal/adapter/http/dto/request"
	response "clearlot/internal/adapter/http/dto/response"
	"clearlot/internal/domain/projection"
	"clearlot/internal/domain/workflow"
	"clearlot/internal/usecase"
	"clearlot/internal/usecase/interfaces"
	"clearlot/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobWorkflowHandler handles HTTP requests for the job lifecycle: intake, the
// stage transitions, cancellation and the role-gated read views.

type JobWorkflowHandler struct {
	usecase usecase.IJobWorkflowUseCase
}

func NewJobWorkflowHandler(uc usecase.IJobWorkflowUseCase) *JobWorkflowHandler {
	return &JobWorkflowHandler{usecase: uc}
}

// CreateJob opens a job at stage 1 from the booking-intake form.
func (h *JobWorkflowHandler) CreateJob(c *gin.Context) {
	var payload request.IntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), usecase.IntakeInput{
		ClientName:      payload.ClientName,
		ClientEmail:     payload.ClientEmail,
		PropertyAddress: payload.PropertyAddress,
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GenerateEstimate attaches the AI collaborator's estimate to a stage-1 job.
func (h *JobWorkflowHandler) GenerateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.GenerateEstimate(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// SubmitOpsReview records the mandatory operations approval and quote draft.
func (h *JobWorkflowHandler) SubmitOpsReview(c *gin.Context) {
	var payload request.OpsReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.SubmitOpsReview(c.Request.Context(), c.Param("id"), payload.ToReviewInput())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// SendQuote materializes and sends the client quote.
func (h *JobWorkflowHandler) SendQuote(c *gin.Context) {
	job, err := h.usecase.SendQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// RecordClientResponse stores the client's accept/reject answer. The caller
// is the client, so the body is the client-safe projection, never the full
// aggregate.
func (h *JobWorkflowHandler) RecordClientResponse(c *gin.Context) {
	var payload request.QuoteResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Accepted == nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.RecordClientResponse(c.Request.Context(), c.Param("id"), *payload.Accepted, payload.RejectionReason)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, projection.ForClient(job))
}

// ScheduleJob assigns crew and date.
func (h *JobWorkflowHandler) ScheduleJob(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.ScheduleJob(c.Request.Context(), c.Param("id"), payload.Crew, payload.Date)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// CompleteJob marks the work done.
func (h *JobWorkflowHandler) CompleteJob(c *gin.Context) {
	job, err := h.usecase.CompleteJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// CancelJob applies the cancellation policy and records the refund decision.
func (h *JobWorkflowHandler) CancelJob(c *gin.Context) {
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CancelJob(c.Request.Context(), c.Param("id"), payload.Reason, payload.CancelledBy)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// CanCancel tells the UI whether to offer a cancel control.
func (h *JobWorkflowHandler) CanCancel(c *gin.Context) {
	decision, err := h.usecase.CanCancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, decision)
}

// GetClientView returns the client-safe projection.
func (h *JobWorkflowHandler) GetClientView(c *gin.Context) {
	view, err := h.usecase.GetClientView(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetInternalView returns the staff projection with every field included.
func (h *JobWorkflowHandler) GetInternalView(c *gin.Context) {
	view, err := h.usecase.GetInternalView(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, view)
}

func mapJobError(err error) *pkg.AppError {
	var (
		transitionErr *workflow.InvalidTransitionError
		policyErr     *workflow.PolicyViolationError
		duplicateErr  *workflow.DuplicateSettlementError
	)
	switch {
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transitionErr.Error(), http.StatusConflict)
	case errors.As(err, &policyErr):
		return pkg.NewDomainErrorSimple("POLICY_VIOLATION", policyErr.Reason, http.StatusUnprocessableEntity)
	case errors.As(err, &duplicateErr):
		return pkg.NewDomainErrorSimple("DUPLICATE_SETTLEMENT", duplicateErr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidIntake),
		errors.Is(err, usecase.ErrInvalidEstimateInput),
		errors.Is(err, usecase.ErrInvalidReviewer),
		errors.Is(err, usecase.ErrInvalidCrew),
		errors.Is(err, usecase.ErrInvalidScheduleDate),
		errors.Is(err, usecase.ErrMissingCancellationReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConcurrentUpdateExhausted), errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Job was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
