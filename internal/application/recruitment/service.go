package recruitment

import (
	"context"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/id"
)

// Service accepts job-offer applications.
type Service interface {
	Apply(ctx context.Context, req domain.AddJobApplicationRequest) (*domain.JobApplication, error)
	Get(ctx context.Context, applicationID string) (*domain.JobApplication, error)
}

type applicationStore interface {
	Put(ctx context.Context, a *domain.JobApplication) error
	Get(ctx context.Context, applicationID string) (*domain.JobApplication, error)
}

type service struct {
	repo applicationStore
}

func NewService(repo applicationStore) Service {
	return &service{repo: repo}
}

func (s *service) Apply(ctx context.Context, req domain.AddJobApplicationRequest) (*domain.JobApplication, error) {
	a := &domain.JobApplication{
		ApplicationID:      id.New(),
		JobOfferName:       req.JobOfferName,
		ApplicantFirstName: req.ApplicantFirstName,
		ApplicantLastName:  req.ApplicantLastName,
		Email:              req.Email,
		Phone:              req.Phone,
		AdditionalMessage:  req.AdditionalMessage,
		IsStudent:          req.IsStudent,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, applicationID string) (*domain.JobApplication, error) {
	return s.repo.Get(ctx, applicationID)
}
