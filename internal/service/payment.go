package service

import (
	"context"

	"github.com/invoiceflow/invoiceflow/internal/api/dto"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type PaymentService interface {
	GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context, filter *types.PaymentFilter) (*dto.ListPaymentsResponse, error)
	ListAttempts(ctx context.Context, paymentID string) (*dto.ListAttemptsResponse, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{
		ServiceParams: params,
	}
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	attempts, err := s.PaymentRepo.ListAttempts(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Attempts = attempts

	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, filter *types.PaymentFilter) (*dto.ListPaymentsResponse, error) {
	if filter == nil {
		filter = types.NewPaymentFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.PaymentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = &dto.PaymentResponse{Payment: p}
	}

	response := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &response, nil
}

func (s *paymentService) ListAttempts(ctx context.Context, paymentID string) (*dto.ListAttemptsResponse, error) {
	if _, err := s.PaymentRepo.Get(ctx, paymentID); err != nil {
		return nil, err
	}

	attempts, err := s.PaymentRepo.ListAttempts(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AttemptResponse, len(attempts))
	for i, a := range attempts {
		items[i] = &dto.AttemptResponse{Attempt: a}
	}

	response := types.NewListResponse(items, len(items), len(items), 0)
	return &response, nil
}
