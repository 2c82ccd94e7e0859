package repository

import (
	"github.com/invoiceflow/invoiceflow/internal/cache"
	"github.com/invoiceflow/invoiceflow/internal/domain/auditlog"
	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	"github.com/invoiceflow/invoiceflow/internal/domain/payment"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/postgres"
	entRepo "github.com/invoiceflow/invoiceflow/internal/repository/ent"
)

func NewCustomerRepository(client postgres.IClient, logger *logger.Logger, cache cache.Cache) customer.Repository {
	return entRepo.NewCustomerRepository(client, logger, cache)
}

func NewScheduleRepository(client postgres.IClient, logger *logger.Logger, cache cache.Cache) schedule.Repository {
	return entRepo.NewScheduleRepository(client, logger, cache)
}

func NewInvoiceRepository(client postgres.IClient, logger *logger.Logger, cache cache.Cache) invoice.Repository {
	return entRepo.NewInvoiceRepository(client, logger, cache)
}

func NewPaymentRepository(client postgres.IClient, logger *logger.Logger, cache cache.Cache) payment.Repository {
	return entRepo.NewPaymentRepository(client, logger, cache)
}

func NewAuditLogRepository(client postgres.IClient, logger *logger.Logger) auditlog.Repository {
	return entRepo.NewAuditLogRepository(client, logger)
}
