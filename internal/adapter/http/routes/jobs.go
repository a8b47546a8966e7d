package routes

import (
	"clearlot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs     = "/jobs"
	PathPayments = "/payments"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobWorkflowHandler, settlementHandler *handlers.SettlementHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)

		// Role-gated read views and the cancel-control predicate.
		jobs.GET("/:id/client-view", jobHandler.GetClientView)
		jobs.GET("/:id/internal-view", jobHandler.GetInternalView)
		jobs.GET("/:id/can-cancel", jobHandler.CanCancel)

		// Stage transitions, in lifecycle order.
		jobs.POST("/:id/estimate", jobHandler.GenerateEstimate)
		jobs.POST("/:id/review", jobHandler.SubmitOpsReview)
		jobs.POST("/:id/quote/send", jobHandler.SendQuote)
		jobs.POST("/:id/quote/response", jobHandler.RecordClientResponse)
		jobs.POST("/:id/deposit", settlementHandler.CollectDeposit)
		jobs.POST("/:id/schedule", jobHandler.ScheduleJob)
		jobs.POST("/:id/complete", jobHandler.CompleteJob)
		jobs.POST("/:id/invoice", settlementHandler.RecordFinalPayment)

		jobs.POST("/:id/cancel", jobHandler.CancelJob)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:job_id", settlementHandler.GetPaymentByJobID)
	}
}
