package service

import (
	"testing"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/api/dto"
	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/testutil"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  InvoiceService
	testData struct {
		customer *customer.Customer
		invoice  *invoice.Invoice
	}
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInvoiceService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		CustomerRepo: s.GetStores().CustomerRepo,
		ScheduleRepo: s.GetStores().ScheduleRepo,
		InvoiceRepo:  s.GetStores().InvoiceRepo,
		PaymentRepo:  s.GetStores().PaymentRepo,
		AuditLogRepo: s.GetStores().AuditLogRepo,
	})
	s.setupTestData()
}

func (s *InvoiceServiceSuite) setupTestData() {
	s.testData.customer = &customer.Customer{
		ID:        "cust_test_invoice",
		Name:      "Test Customer",
		Email:     "invoice@example.com",
		Timezone:  "UTC",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), s.testData.customer))

	issueDate := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	s.testData.invoice = &invoice.Invoice{
		ID:              "inv_test_invoice",
		InvoiceNumber:   "INV-TEST-1",
		CustomerID:      s.testData.customer.ID,
		IssueDate:       issueDate,
		DueDate:         issueDate.AddDate(0, 0, 30),
		Currency:        "USD",
		Subtotal:        decimal.NewFromInt(75),
		Total:           decimal.NewFromInt(75),
		AmountRemaining: decimal.NewFromInt(75),
		InvoiceStatus:   types.InvoiceStatusFinalized,
		PaymentStatus:   types.InvoicePaymentStatusPending,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.CreateWithLineItems(s.GetContext(), s.testData.invoice))
}

func (s *InvoiceServiceSuite) TestGetInvoice() {
	resp, err := s.service.GetInvoice(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal("INV-TEST-1", resp.Invoice.InvoiceNumber)

	_, err = s.service.GetInvoice(s.GetContext(), "inv_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestListInvoices() {
	resp, err := s.service.ListInvoices(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Equal(1, resp.Pagination.Total)
	s.Len(resp.Items, 1)

	resp, err = s.service.ListInvoices(s.GetContext(), &types.InvoiceFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
		CustomerIDs: []string{"cust_other"},
	})
	s.NoError(err)
	s.Empty(resp.Items)
}

func (s *InvoiceServiceSuite) TestVoidInvoice() {
	resp, err := s.service.VoidInvoice(s.GetContext(), s.testData.invoice.ID, dto.VoidInvoiceRequest{
		Reason: "duplicate billing",
	})
	s.NoError(err)
	s.Equal(types.InvoiceStatusVoided, resp.Invoice.InvoiceStatus)
	s.NotNil(resp.Invoice.VoidedAt)
	s.Equal("duplicate billing", resp.Invoice.Notes)

	// voiding twice is rejected
	_, err = s.service.VoidInvoice(s.GetContext(), s.testData.invoice.ID, dto.VoidInvoiceRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestVoidInvoice_PaidGuard() {
	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	inv.RecordPayment(inv.Total, time.Now().UTC())
	s.NoError(s.GetStores().InvoiceRepo.Update(s.GetContext(), inv))

	_, err = s.service.VoidInvoice(s.GetContext(), s.testData.invoice.ID, dto.VoidInvoiceRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
