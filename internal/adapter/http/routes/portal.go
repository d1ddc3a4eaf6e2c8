package routes

import (
	"research_hub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmissions = "/submissions"
	PathInvoices    = "/invoices"
	PathAttempts    = "/attempts"
	PathDashboard   = "/dashboard"
)

func addPortalRoutes(rg *gin.RouterGroup, submissionHandler *handlers.SubmissionHandler, invoiceHandler *handlers.InvoiceHandler, dashboardHandler *handlers.DashboardHandler) {
	submissions := rg.Group(PathSubmissions)
	{
		submissions.POST("", submissionHandler.CreateSubmission)
		submissions.GET("/:id", submissionHandler.GetSubmission)
		submissions.PATCH("/:id/review", submissionHandler.StartReview)
		submissions.PATCH("/:id/accept", submissionHandler.AcceptSubmission)
		submissions.PATCH("/:id/reject", submissionHandler.RejectSubmission)
		submissions.PATCH("/:id/publish", submissionHandler.PublishSubmission)
		submissions.POST("/:id/resubmit", submissionHandler.ResubmitSubmission)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/attempts", invoiceHandler.CreatePaymentAttempt)
		invoices.POST("/expire-overdue", invoiceHandler.ExpireOverdueInvoices)
	}

	attempts := rg.Group(PathAttempts)
	{
		attempts.POST("/:attempt_id/settle", invoiceHandler.SettlePayment)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/submissions", dashboardHandler.ListByStatus)
		dashboard.GET("/payable", dashboardHandler.ListPayable)
		dashboard.GET("/resubmittable", dashboardHandler.ListResubmittable)
	}
}
