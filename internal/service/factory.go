package service

import (
	"github.com/invoiceflow/invoiceflow/internal/config"
	"github.com/invoiceflow/invoiceflow/internal/domain/auditlog"
	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	"github.com/invoiceflow/invoiceflow/internal/domain/payment"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	"github.com/invoiceflow/invoiceflow/internal/email"
	"github.com/invoiceflow/invoiceflow/internal/gateway"
	"github.com/invoiceflow/invoiceflow/internal/idempotency"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	CustomerRepo customer.Repository
	ScheduleRepo schedule.Repository
	InvoiceRepo  invoice.Repository
	PaymentRepo  payment.Repository
	AuditLogRepo auditlog.Repository

	// Collaborators
	Gateway     gateway.Gateway
	EmailSender email.Sender
	IdempGen    *idempotency.Generator
}

// NewServiceParams creates a ServiceParams struct with all dependencies
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	customerRepo customer.Repository,
	scheduleRepo schedule.Repository,
	invoiceRepo invoice.Repository,
	paymentRepo payment.Repository,
	auditLogRepo auditlog.Repository,
	gw gateway.Gateway,
	emailSender email.Sender,
	idempGen *idempotency.Generator,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		DB:           db,
		CustomerRepo: customerRepo,
		ScheduleRepo: scheduleRepo,
		InvoiceRepo:  invoiceRepo,
		PaymentRepo:  paymentRepo,
		AuditLogRepo: auditLogRepo,
		Gateway:      gw,
		EmailSender:  emailSender,
		IdempGen:     idempGen,
	}
}
