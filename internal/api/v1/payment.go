package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/service"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type PaymentHandler struct {
	service   service.PaymentService
	processor service.PaymentProcessorService
	log       *logger.Logger
}

func NewPaymentHandler(
	service service.PaymentService,
	processor service.PaymentProcessorService,
	log *logger.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		service:   service,
		processor: processor,
		log:       log,
	}
}

// @Summary Get a payment
// @Description Get a payment with its attempt history
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	resp, err := h.service.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List payments
// @Description List payments
// @Tags Payments
// @Produce json
// @Param filter query types.PaymentFilter false "Filter"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var filter types.PaymentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPayments(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List payment attempts
// @Description List the attempt ledger of a payment
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.ListAttemptsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /payments/{id}/attempts [get]
func (h *PaymentHandler) ListAttempts(c *gin.Context) {
	resp, err := h.service.ListAttempts(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Retry a payment
// @Description Run one charge attempt for a non-terminal payment immediately
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /payments/{id}/retry [post]
func (h *PaymentHandler) RetryPayment(c *gin.Context) {
	p, err := h.processor.AttemptCharge(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetPayment(c.Request.Context(), p.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
