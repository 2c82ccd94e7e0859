package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoiceflow/invoiceflow/internal/api"
	"github.com/invoiceflow/invoiceflow/internal/api/cron"
	v1 "github.com/invoiceflow/invoiceflow/internal/api/v1"
	"github.com/invoiceflow/invoiceflow/internal/cache"
	"github.com/invoiceflow/invoiceflow/internal/config"
	"github.com/invoiceflow/invoiceflow/internal/email"
	"github.com/invoiceflow/invoiceflow/internal/gateway"
	"github.com/invoiceflow/invoiceflow/internal/idempotency"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/postgres"
	"github.com/invoiceflow/invoiceflow/internal/repository"
	"github.com/invoiceflow/invoiceflow/internal/service"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/invoiceflow/invoiceflow/internal/validator"
	"go.uber.org/fx"
)

// @title InvoiceFlow API
// @version 1.0
// @description Recurring billing and invoicing API
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Postgres
			postgres.NewEntClient,
			postgres.NewClient,

			// Outbound collaborators
			gateway.NewStripeGateway,
			email.NewEmailClient,
			email.NewEmail,
			idempotency.NewGenerator,

			// Repositories
			repository.NewCustomerRepository,
			repository.NewScheduleRepository,
			repository.NewInvoiceRepository,
			repository.NewPaymentRepository,
			repository.NewAuditLogRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewCustomerService,
			service.NewScheduleService,
			service.NewInvoiceService,
			service.NewPaymentService,
			service.NewPaymentProcessorService,
			service.NewBillingService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	customerService service.CustomerService,
	scheduleService service.ScheduleService,
	invoiceService service.InvoiceService,
	paymentService service.PaymentService,
	paymentProcessorService service.PaymentProcessorService,
	billingService service.BillingService,
) api.Handlers {
	return api.Handlers{
		Health:      v1.NewHealthHandler(logger),
		Customer:    v1.NewCustomerHandler(customerService, logger),
		Schedule:    v1.NewScheduleHandler(scheduleService, logger),
		Invoice:     v1.NewInvoiceHandler(invoiceService, logger),
		Payment:     v1.NewPaymentHandler(paymentService, paymentProcessorService, logger),
		BillingCron: cron.NewBillingCronHandler(logger, billingService, paymentProcessorService),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	billingService service.BillingService,
	paymentProcessor service.PaymentProcessorService,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.RunModeLocal
	}

	switch mode {
	case types.RunModeLocal:
		startAPIServer(lc, r, cfg, log)
		startCronRunner(lc, cfg, billingService, paymentProcessor, log)
	case types.RunModeAPI:
		startAPIServer(lc, r, cfg, log)
	case types.RunModeCron:
		startCronRunner(lc, cfg, billingService, paymentProcessor, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

// startCronRunner sweeps due schedules and due payment retries on a fixed
// interval. The sweeps are idempotent, so overlapping deployments running
// the same interval are safe.
func startCronRunner(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	billingService service.BillingService,
	paymentProcessor service.PaymentProcessorService,
	log *logger.Logger,
) {
	interval := time.Duration(cfg.Billing.CronIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	done := make(chan struct{})

	runSweep := func() {
		ctx := types.SetDefaultContext(context.Background())
		asOf := time.Now().UTC()

		if report, err := billingService.ProcessDueSchedules(ctx, asOf); err != nil {
			log.Errorw("billing sweep failed", "error", err)
		} else {
			log.Infow("billing sweep finished",
				"schedules_examined", report.SchedulesExamined,
				"invoices_generated", report.InvoicesGenerated,
				"schedules_failed", report.SchedulesFailed)
		}

		if report, err := paymentProcessor.ProcessDueRetries(ctx, asOf); err != nil {
			log.Errorw("retry sweep failed", "error", err)
		} else {
			log.Infow("retry sweep finished",
				"payments_examined", report.PaymentsExamined,
				"succeeded", report.Succeeded,
				"exhausted", report.Exhausted)
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting billing cron runner", "interval", interval)
			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				runSweep()
				for {
					select {
					case <-ticker.C:
						runSweep()
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping billing cron runner...")
			close(done)
			return nil
		},
	})
}
