package cron

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/service"
)

// BillingCronHandler exposes the billing drivers as cron endpoints. Both
// endpoints accept an optional as_of override so missed runs can be
// replayed for a past instant.
type BillingCronHandler struct {
	logger           *logger.Logger
	billingService   service.BillingService
	paymentProcessor service.PaymentProcessorService
}

func NewBillingCronHandler(
	logger *logger.Logger,
	billingService service.BillingService,
	paymentProcessor service.PaymentProcessorService,
) *BillingCronHandler {
	return &BillingCronHandler{
		logger:           logger,
		billingService:   billingService,
		paymentProcessor: paymentProcessor,
	}
}

// ProcessDueSchedules generates invoices for every due billing period
func (h *BillingCronHandler) ProcessDueSchedules(c *gin.Context) {
	asOf, err := h.parseAsOf(c)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Infow("starting billing cron run", "as_of", asOf)

	report, err := h.billingService.ProcessDueSchedules(c.Request.Context(), asOf)
	if err != nil {
		h.logger.Errorw("billing cron run failed", "error", err)
		c.Error(err)
		return
	}

	// Individual failures still yield 200 with the tallies; only a run
	// where nothing succeeded signals the monitoring layer
	if report.SchedulesExamined > 0 && report.SchedulesFailed == report.SchedulesExamined {
		c.JSON(http.StatusInternalServerError, report)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ProcessDueRetries runs due payment retries
func (h *BillingCronHandler) ProcessDueRetries(c *gin.Context) {
	asOf, err := h.parseAsOf(c)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Infow("starting payment retry cron run", "as_of", asOf)

	report, err := h.paymentProcessor.ProcessDueRetries(c.Request.Context(), asOf)
	if err != nil {
		h.logger.Errorw("payment retry cron run failed", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *BillingCronHandler) parseAsOf(c *gin.Context) (time.Time, error) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Now().UTC(), nil
	}

	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHint("as_of must be an RFC3339 timestamp").
			WithReportableDetails(map[string]any{
				"as_of": raw,
			}).
			Mark(ierr.ErrValidation)
	}
	return asOf.UTC(), nil
}
