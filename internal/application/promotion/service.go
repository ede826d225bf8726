package promotion

import (
	"context"
	"errors"
	"fmt"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/clock"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/promocode"
)

// DefaultValidity is how far out a code expires when no explicit date is
// supplied: one calendar month from issuance.
const DefaultValidityMonths = 1

// Service manages time-bound discount codes. Expiration is enforced lazily
// at lookup; there is no background sweep.
type Service interface {
	Create(ctx context.Context, req domain.CreateDiscountCodeRequest) (*domain.DiscountCode, error)
	Get(ctx context.Context, code string) (*domain.DiscountCode, error)
	List(ctx context.Context) ([]domain.DiscountCode, error)
	Update(ctx context.Context, code string, req domain.UpdateDiscountCodeRequest) (*domain.DiscountCode, error)
	Delete(ctx context.Context, code string) error
}

type discountStore interface {
	Put(ctx context.Context, d *domain.DiscountCode) error
	Get(ctx context.Context, code string) (*domain.DiscountCode, error)
	Scan(ctx context.Context) ([]domain.DiscountCode, error)
	Update(ctx context.Context, code string, updates map[string]interface{}) error
	Delete(ctx context.Context, code string) error
}

type service struct {
	repo discountStore
	clk  clock.Clock
}

func NewService(repo discountStore, clk clock.Clock) Service {
	return &service{repo: repo, clk: clk}
}

func (s *service) Create(ctx context.Context, req domain.CreateDiscountCodeRequest) (*domain.DiscountCode, error) {
	code := ""
	if req.Code != nil {
		code = *req.Code
	} else {
		generated, err := promocode.Generate()
		if err != nil {
			return nil, err
		}
		code = generated
	}

	// The generator does not check uniqueness; the workflow does, here.
	if _, err := s.repo.Get(ctx, code); err == nil {
		return nil, domain.ErrDiscountCodeAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.clk.Now().UTC()
	expiration := now.AddDate(0, DefaultValidityMonths, 0)
	if req.ExpirationDate != nil {
		if !req.ExpirationDate.After(now) {
			return nil, fmt.Errorf("expiration date must be in the future: %w", domain.ErrBadRequest)
		}
		expiration = req.ExpirationDate.UTC()
	}

	d := &domain.DiscountCode{
		Code:               code,
		DiscountPercentage: req.DiscountPercentage,
		ExpirationDate:     expiration,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Put(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) Get(ctx context.Context, code string) (*domain.DiscountCode, error) {
	d, err := s.repo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if d.Expired(s.clk.Now()) {
		return nil, domain.ErrDiscountCodeExpired
	}
	return d, nil
}

func (s *service) List(ctx context.Context) ([]domain.DiscountCode, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Update(ctx context.Context, code string, req domain.UpdateDiscountCodeRequest) (*domain.DiscountCode, error) {
	if _, err := s.repo.Get(ctx, code); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.DiscountPercentage != nil {
		updates["discount_percentage"] = *req.DiscountPercentage
	}
	if req.ExpirationDate != nil {
		// Administrative updates may backdate, which immediately expires
		// the code at the next lookup.
		updates["expiration_date"] = req.ExpirationDate.UTC()
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, code)
	}
	if err := s.repo.Update(ctx, code, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, code)
}

func (s *service) Delete(ctx context.Context, code string) error {
	if _, err := s.repo.Get(ctx, code); err != nil {
		return err
	}
	return s.repo.Delete(ctx, code)
}
