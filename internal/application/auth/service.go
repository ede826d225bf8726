package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

// Service authenticates staff accounts. The issued bearer's role claim is
// what lets managers and employees bypass the public rate limiter.
type Service interface {
	Login(ctx context.Context, req domain.LoginRequest) (bearer string, emp *domain.Employee, err error)
	CreateEmployee(ctx context.Context, req domain.CreateEmployeeRequest) (*domain.Employee, error)
}

type employeeStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Put(ctx context.Context, e *domain.Employee) error
}

type jwtSigner interface {
	Sign(employeeID, role string) (string, error)
}

type service struct {
	repo        employeeStore
	jwtProvider jwtSigner
}

func NewService(repo employeeStore, jwtProvider jwtSigner) Service {
	return &service{repo: repo, jwtProvider: jwtProvider}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, *domain.Employee, error) {
	emp, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	if !emp.Enable {
		return "", nil, fmt.Errorf("account disabled: %w", domain.ErrForbidden)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	bearer, err := s.jwtProvider.Sign(emp.EmployeeID, emp.Role)
	if err != nil {
		return "", nil, err
	}
	return bearer, emp, nil
}

func (s *service) CreateEmployee(ctx context.Context, req domain.CreateEmployeeRequest) (*domain.Employee, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	emp := &domain.Employee{
		EmployeeID:   id.New(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         req.Role,
		Enable:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}
