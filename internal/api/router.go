package api

import (
	"github.com/gin-gonic/gin"
	"github.com/invoiceflow/invoiceflow/internal/api/cron"
	v1 "github.com/invoiceflow/invoiceflow/internal/api/v1"
	"github.com/invoiceflow/invoiceflow/internal/config"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/rest/middleware"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type Handlers struct {
	Health      *v1.HealthHandler
	Customer    *v1.CustomerHandler
	Schedule    *v1.ScheduleHandler
	Invoice     *v1.InvoiceHandler
	Payment     *v1.PaymentHandler
	BillingCron *cron.BillingCronHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode != types.RunModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.TenantMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	cronGroup := router.Group("/cron")
	registerCronRoutes(cronGroup, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	customers := router.Group("/customers")
	{
		customers.POST("", handlers.Customer.CreateCustomer)
		customers.GET("", handlers.Customer.ListCustomers)
		customers.GET("/:id", handlers.Customer.GetCustomer)
		customers.PUT("/:id", handlers.Customer.UpdateCustomer)
		customers.DELETE("/:id", handlers.Customer.DeleteCustomer)
	}

	schedules := router.Group("/schedules")
	{
		schedules.POST("", handlers.Schedule.CreateSchedule)
		schedules.GET("", handlers.Schedule.ListSchedules)
		schedules.GET("/:id", handlers.Schedule.GetSchedule)
		schedules.PUT("/:id", handlers.Schedule.UpdateSchedule)
		schedules.DELETE("/:id", handlers.Schedule.DeleteSchedule)
		schedules.POST("/:id/pause", handlers.Schedule.PauseSchedule)
		schedules.POST("/:id/resume", handlers.Schedule.ResumeSchedule)
		schedules.POST("/:id/cancel", handlers.Schedule.CancelSchedule)
		schedules.GET("/:id/executions", handlers.Schedule.ListExecutions)
		schedules.GET("/:id/audit", handlers.Schedule.ListAuditLogs)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.POST("/:id/void", handlers.Invoice.VoidInvoice)
	}

	payments := router.Group("/payments")
	{
		payments.GET("", handlers.Payment.ListPayments)
		payments.GET("/:id", handlers.Payment.GetPayment)
		payments.GET("/:id/attempts", handlers.Payment.ListAttempts)
		payments.POST("/:id/retry", handlers.Payment.RetryPayment)
	}
}

func registerCronRoutes(router *gin.RouterGroup, handlers Handlers) {
	billing := router.Group("/billing")
	{
		billing.POST("/process", handlers.BillingCron.ProcessDueSchedules)
		billing.POST("/retries", handlers.BillingCron.ProcessDueRetries)
	}
}
