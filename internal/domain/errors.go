package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)

// Newsletter subscription lifecycle errors. Each wraps a generic sentinel so
// errors.Is checks against the base taxonomy keep working at the boundary.
var (
	ErrSubscriberAlreadyExists = fmt.Errorf("subscriber already exists: %w", ErrConflict)
	ErrSubscriberNotFound      = fmt.Errorf("subscriber: %w", ErrNotFound)
	ErrOtpMismatch             = fmt.Errorf("otp mismatch: %w", ErrUnauthorized)
	ErrOtpExpired              = fmt.Errorf("otp expired: %w", ErrUnauthorized)
	ErrOtpRegenerationTooSoon  = errors.New("otp regeneration too soon")
)

// Discount code errors.
var (
	ErrDiscountCodeAlreadyExists = fmt.Errorf("discount code already exists: %w", ErrConflict)
	ErrDiscountCodeNotFound      = fmt.Errorf("discount code: %w", ErrNotFound)
	ErrDiscountCodeExpired       = errors.New("discount code expired")
)

// ErrInvalidLocale is reported when the Accept-Language header is missing or
// resolves to an unsupported language. It is a client input error, distinct
// from a rate-limit rejection.
var ErrInvalidLocale = fmt.Errorf("unsupported locale: %w", ErrBadRequest)

// OtpCooldownError reports a regeneration attempt inside the cooldown window.
// Cooldown is the policy value; RetryAfter is how long the caller must still
// wait, so the boundary can emit a Retry-After header.
type OtpCooldownError struct {
	Cooldown   time.Duration
	RetryAfter time.Duration
}

func (e *OtpCooldownError) Error() string {
	return fmt.Sprintf("otp regeneration allowed once per %s, retry in %s", e.Cooldown, e.RetryAfter)
}

func (e *OtpCooldownError) Unwrap() error { return ErrOtpRegenerationTooSoon }
