package service

import (
	"testing"

	"github.com/invoiceflow/invoiceflow/internal/api/dto"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/testutil"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CustomerService
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCustomerService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		CustomerRepo: s.GetStores().CustomerRepo,
		ScheduleRepo: s.GetStores().ScheduleRepo,
		InvoiceRepo:  s.GetStores().InvoiceRepo,
		PaymentRepo:  s.GetStores().PaymentRepo,
		AuditLogRepo: s.GetStores().AuditLogRepo,
	})
}

func (s *CustomerServiceSuite) TestCreateCustomer() {
	resp, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		ExternalID: "acme-1",
		Name:       "Acme Corp",
		Email:      "billing@acme.test",
	})
	s.NoError(err)
	s.NotEmpty(resp.Customer.ID)
	s.Equal("Acme Corp", resp.Customer.Name)

	// timezone defaults to UTC when omitted
	s.Equal("UTC", resp.Customer.Timezone)

	got, err := s.service.GetCustomer(s.GetContext(), resp.Customer.ID)
	s.NoError(err)
	s.Equal(resp.Customer.ID, got.Customer.ID)
}

func (s *CustomerServiceSuite) TestCreateCustomer_Validation() {
	_, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Email: "no-name@acme.test",
	})
	s.Error(err)

	_, err = s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:  "Acme Corp",
		Email: "not-an-email",
	})
	s.Error(err)

	_, err = s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:     "Acme Corp",
		Timezone: "Mars/Olympus",
	})
	s.Error(err)
}

func (s *CustomerServiceSuite) TestUpdateCustomer() {
	created, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	})
	s.NoError(err)

	updated, err := s.service.UpdateCustomer(s.GetContext(), created.Customer.ID, dto.UpdateCustomerRequest{
		Email:             lo.ToPtr("finance@acme.test"),
		GatewayCustomerID: lo.ToPtr("cus_stripe_42"),
	})
	s.NoError(err)
	s.Equal("finance@acme.test", updated.Customer.Email)
	s.Equal("cus_stripe_42", *updated.Customer.GatewayCustomerID)
	s.Equal("Acme Corp", updated.Customer.Name)
}

func (s *CustomerServiceSuite) TestDeleteCustomer() {
	created, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name: "Acme Corp",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteCustomer(s.GetContext(), created.Customer.ID))

	// deleted customers disappear from listings
	resp, err := s.service.ListCustomers(s.GetContext(), types.NewNoLimitQueryFilter())
	s.NoError(err)
	s.Empty(resp.Items)

	err = s.service.DeleteCustomer(s.GetContext(), "cust_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerServiceSuite) TestListCustomers() {
	for _, name := range []string{"Acme Corp", "Globex", "Initech"} {
		_, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{Name: name})
		s.NoError(err)
	}

	resp, err := s.service.ListCustomers(s.GetContext(), types.NewNoLimitQueryFilter())
	s.NoError(err)
	s.Equal(3, resp.Pagination.Total)
	s.Len(resp.Items, 3)
}
