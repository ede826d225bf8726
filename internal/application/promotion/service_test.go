package promotion

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockDiscountStore struct{ mock.Mock }

func (m *mockDiscountStore) Put(ctx context.Context, d *domain.DiscountCode) error {
	return m.Called(ctx, d).Error(0)
}
func (m *mockDiscountStore) Get(ctx context.Context, code string) (*domain.DiscountCode, error) {
	args := m.Called(ctx, code)
	if d, _ := args.Get(0).(*domain.DiscountCode); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDiscountStore) Scan(ctx context.Context) ([]domain.DiscountCode, error) {
	args := m.Called(ctx)
	if d, _ := args.Get(0).([]domain.DiscountCode); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDiscountStore) Update(ctx context.Context, code string, updates map[string]interface{}) error {
	return m.Called(ctx, code, updates).Error(0)
}
func (m *mockDiscountStore) Delete(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

var codePattern = regexp.MustCompile(`^[A-Z0-9]{16}$`)

// --- Create ---

func TestCreate_GeneratedCode_DefaultExpiration(t *testing.T) {
	repo := &mockDiscountStore{}
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(now)

	repo.On("Get", mock.Anything, mock.MatchedBy(func(code string) bool {
		return codePattern.MatchString(code)
	})).Return(nil, domain.ErrDiscountCodeNotFound)
	repo.On("Put", mock.Anything, mock.MatchedBy(func(d *domain.DiscountCode) bool {
		return codePattern.MatchString(d.Code) &&
			d.ExpirationDate.Equal(now.AddDate(0, 1, 0))
	})).Return(nil)

	svc := NewService(repo, clk)
	d, err := svc.Create(context.Background(), domain.CreateDiscountCodeRequest{DiscountPercentage: 15})

	require.NoError(t, err)
	assert.Regexp(t, codePattern, d.Code)
	assert.Equal(t, now.AddDate(0, 1, 0), d.ExpirationDate)
	repo.AssertExpectations(t)
}

func TestCreate_CallerSuppliedCode_Collision(t *testing.T) {
	repo := &mockDiscountStore{}
	clk := clock.NewFixed(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	existing := &domain.DiscountCode{Code: "KEBAB2026AAAA001"}
	repo.On("Get", mock.Anything, "KEBAB2026AAAA001").Return(existing, nil)

	svc := NewService(repo, clk)
	code := "KEBAB2026AAAA001"
	_, err := svc.Create(context.Background(), domain.CreateDiscountCodeRequest{Code: &code, DiscountPercentage: 10})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDiscountCodeAlreadyExists))
}

func TestCreate_PastExpiration_Rejected(t *testing.T) {
	repo := &mockDiscountStore{}
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(now)
	repo.On("Get", mock.Anything, mock.Anything).Return(nil, domain.ErrDiscountCodeNotFound)

	svc := NewService(repo, clk)
	past := now.Add(-time.Hour)
	_, err := svc.Create(context.Background(), domain.CreateDiscountCodeRequest{DiscountPercentage: 10, ExpirationDate: &past})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

// --- Get ---

func TestGet_LazyExpiryCheck(t *testing.T) {
	repo := &mockDiscountStore{}
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(now)

	repo.On("Get", mock.Anything, "EXPIREDCODE00001").Return(&domain.DiscountCode{
		Code:           "EXPIREDCODE00001",
		ExpirationDate: now.Add(-time.Minute),
	}, nil)

	svc := NewService(repo, clk)
	_, err := svc.Get(context.Background(), "EXPIREDCODE00001")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDiscountCodeExpired))
}

func TestGet_ValidCode(t *testing.T) {
	repo := &mockDiscountStore{}
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(now)

	repo.On("Get", mock.Anything, "VALIDCODE0000001").Return(&domain.DiscountCode{
		Code:           "VALIDCODE0000001",
		ExpirationDate: now.Add(time.Hour),
	}, nil)

	svc := NewService(repo, clk)
	d, err := svc.Get(context.Background(), "VALIDCODE0000001")

	require.NoError(t, err)
	assert.Equal(t, "VALIDCODE0000001", d.Code)
}

func TestGet_UnknownCode(t *testing.T) {
	repo := &mockDiscountStore{}
	clk := clock.NewFixed(time.Now())
	repo.On("Get", mock.Anything, "NOPE000000000001").Return(nil, domain.ErrDiscountCodeNotFound)

	svc := NewService(repo, clk)
	_, err := svc.Get(context.Background(), "NOPE000000000001")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// --- Update / Delete ---

func TestUpdate_Backdating_Allowed(t *testing.T) {
	repo := &mockDiscountStore{}
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(now)
	past := now.Add(-24 * time.Hour)

	existing := &domain.DiscountCode{Code: "CODE000000000001", ExpirationDate: now.Add(time.Hour)}
	repo.On("Get", mock.Anything, "CODE000000000001").Return(existing, nil)
	repo.On("Update", mock.Anything, "CODE000000000001", map[string]interface{}{
		"expiration_date": past.UTC(),
	}).Return(nil)

	svc := NewService(repo, clk)
	_, err := svc.Update(context.Background(), "CODE000000000001", domain.UpdateDiscountCodeRequest{ExpirationDate: &past})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDelete_UnknownCode(t *testing.T) {
	repo := &mockDiscountStore{}
	clk := clock.NewFixed(time.Now())
	repo.On("Get", mock.Anything, "NOPE000000000001").Return(nil, domain.ErrDiscountCodeNotFound)

	svc := NewService(repo, clk)
	err := svc.Delete(context.Background(), "NOPE000000000001")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
