package newsletter

import (
	"context"
	"log/slog"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/i18n"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/clock"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/keylock"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/otp"
)

// Policy windows. Both are measured in whole seconds against the stored
// generation timestamp.
const (
	OtpExpiry            = 600 * time.Second
	RegenerationCooldown = 300 * time.Second
)

// Service drives the OTP subscription lifecycle:
// NoCode -> PendingVerification -> Activated, with unsubscribe reachable
// from any state.
type Service interface {
	Subscribe(ctx context.Context, req domain.SubscribeRequest, loc i18n.Locale) error
	Verify(ctx context.Context, req domain.VerifySubscriptionRequest, loc i18n.Locale) error
	RegenerateOtp(ctx context.Context, req domain.RegenerateOtpRequest, loc i18n.Locale) error
	Unsubscribe(ctx context.Context, req domain.UnsubscribeRequest, loc i18n.Locale) error
}

type subscriberStore interface {
	Get(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	Put(ctx context.Context, s *domain.NewsletterSubscriber) error
	Update(ctx context.Context, email string, updates map[string]interface{}) error
	Delete(ctx context.Context, email string) error
}

type mailSender interface {
	SendEmail(to, subject, body string) error
}

type service struct {
	repo   subscriberStore
	mailer mailSender
	clk    clock.Clock
	locks  *keylock.KeyLock

	// dispatch runs mail sends off the request path. Replaced with a
	// synchronous variant in tests.
	dispatch func(fn func())
}

type ServiceDeps struct {
	SubscriberRepo subscriberStore
	Mailer         mailSender
	Clock          clock.Clock
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:     deps.SubscriberRepo,
		mailer:   deps.Mailer,
		clk:      deps.Clock,
		locks:    keylock.New(),
		dispatch: func(fn func()) { go fn() },
	}
}

func (s *service) Subscribe(ctx context.Context, req domain.SubscribeRequest, loc i18n.Locale) error {
	s.locks.Lock(req.Email)
	defer s.locks.Unlock(req.Email)

	if _, err := s.repo.Get(ctx, req.Email); err == nil {
		return domain.ErrSubscriberAlreadyExists
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	now := s.clk.Now().UTC()
	sub := &domain.NewsletterSubscriber{
		Email:          req.Email,
		FirstName:      req.FirstName,
		OtpCode:        code,
		OtpGeneratedAt: now.Unix(),
		Active:         false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Put(ctx, sub); err != nil {
		return err
	}

	s.sendMail(req.Email, loc, i18n.KeyVerificationSubject,
		i18n.Messagef(loc, i18n.KeyVerificationBody, req.FirstName, code))
	return nil
}

func (s *service) Verify(ctx context.Context, req domain.VerifySubscriptionRequest, loc i18n.Locale) error {
	s.locks.Lock(req.Email)
	defer s.locks.Unlock(req.Email)

	sub, err := s.repo.Get(ctx, req.Email)
	if err != nil {
		return domain.ErrSubscriberNotFound
	}
	if sub.Active {
		// Already in the state the caller wanted; no mail is re-sent.
		return nil
	}
	// Expiry before mismatch: an expired code is invalid regardless of its
	// value, and the caller's fix (regenerate) is the same either way.
	if s.elapsedSince(sub.OtpGeneratedAt) >= int64(OtpExpiry.Seconds()) {
		return domain.ErrOtpExpired
	}
	if sub.OtpCode != req.OtpCode {
		return domain.ErrOtpMismatch
	}

	if err := s.repo.Update(ctx, req.Email, map[string]interface{}{"active": true}); err != nil {
		return err
	}

	s.sendMail(req.Email, loc, i18n.KeyWelcomeSubject,
		i18n.Messagef(loc, i18n.KeyWelcomeBody, sub.FirstName))
	return nil
}

func (s *service) RegenerateOtp(ctx context.Context, req domain.RegenerateOtpRequest, loc i18n.Locale) error {
	s.locks.Lock(req.Email)
	defer s.locks.Unlock(req.Email)

	sub, err := s.repo.Get(ctx, req.Email)
	if err != nil {
		return domain.ErrSubscriberNotFound
	}

	elapsed := s.elapsedSince(sub.OtpGeneratedAt)
	if elapsed < int64(RegenerationCooldown.Seconds()) {
		return &domain.OtpCooldownError{
			Cooldown:   RegenerationCooldown,
			RetryAfter: RegenerationCooldown - time.Duration(elapsed)*time.Second,
		}
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"otp_code":         code,
		"otp_generated_at": s.clk.Now().Unix(),
	}
	if err := s.repo.Update(ctx, req.Email, updates); err != nil {
		return err
	}

	s.sendMail(req.Email, loc, i18n.KeyVerificationSubject,
		i18n.Messagef(loc, i18n.KeyVerificationBody, sub.FirstName, code))
	return nil
}

func (s *service) Unsubscribe(ctx context.Context, req domain.UnsubscribeRequest, loc i18n.Locale) error {
	s.locks.Lock(req.Email)
	defer s.locks.Unlock(req.Email)

	sub, err := s.repo.Get(ctx, req.Email)
	if err != nil {
		return domain.ErrSubscriberNotFound
	}
	if err := s.repo.Delete(ctx, req.Email); err != nil {
		return err
	}

	s.sendMail(req.Email, loc, i18n.KeyGoodbyeSubject,
		i18n.Messagef(loc, i18n.KeyGoodbyeBody, sub.FirstName))
	return nil
}

// elapsedSince returns whole seconds between the stored generation timestamp
// and now. Boundary values flip the window: elapsed == window means expired
// (or regeneration-eligible).
func (s *service) elapsedSince(generatedAt int64) int64 {
	return s.clk.Now().Unix() - generatedAt
}

// sendMail dispatches a localized email off the request path. The state
// transition has already been committed; delivery failures are logged and
// never propagated.
func (s *service) sendMail(to string, loc i18n.Locale, subjectKey, body string) {
	subject := i18n.Message(loc, subjectKey)
	s.dispatch(func() {
		if err := s.mailer.SendEmail(to, subject, body); err != nil {
			slog.Warn("newsletter mail delivery failed", "to", to, "subject", subject, "err", err)
		}
	})
}
