package order

import (
	"context"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/id"
)

// Service accepts customer order submissions. Pricing and promotion
// application happen downstream; this service records what was ordered.
type Service interface {
	Submit(ctx context.Context, req domain.AddOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}

type orderStore interface {
	Put(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	Update(ctx context.Context, orderID string, updates map[string]interface{}) error
}

type service struct {
	repo orderStore
}

func NewService(repo orderStore) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, req domain.AddOrderRequest) (*domain.Order, error) {
	now := time.Now().UTC()
	o := &domain.Order{
		OrderID:       id.New(),
		Items:         req.Items,
		CustomerPhone: req.CustomerPhone,
		Street:        req.Street,
		HouseNumber:   req.HouseNumber,
		City:          req.City,
		Status:        domain.OrderStatusReceived,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Put(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.Get(ctx, orderID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	switch status {
	case domain.OrderStatusReceived, domain.OrderStatusInPreparation,
		domain.OrderStatusReady, domain.OrderStatusDelivered:
	default:
		return nil, domain.ErrBadRequest
	}
	if err := s.repo.Update(ctx, orderID, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, orderID)
}
