package domain

import "time"

// NewsletterSubscriber is the subscriber record gated by the OTP flow.
// PK: email. The record is created in the pending state with a fresh code,
// flips to active exactly once on successful verification and is deleted
// outright on unsubscribe. The code and its timestamp are kept after
// activation for audit.
type NewsletterSubscriber struct {
	Email          string    `json:"email" dynamodbav:"email"`
	FirstName      string    `json:"first_name" dynamodbav:"first_name"`
	OtpCode        int       `json:"-" dynamodbav:"otp_code"`
	OtpGeneratedAt int64     `json:"-" dynamodbav:"otp_generated_at"` // Unix seconds
	Active         bool      `json:"active" dynamodbav:"active"`
	CreatedAt      time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// SubscribeRequest creates a pending subscription and triggers the
// verification email.
type SubscribeRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
}

// VerifySubscriptionRequest activates a pending subscription.
// The code is compared by exact integer equality.
type VerifySubscriptionRequest struct {
	Email   string `json:"email" validate:"required,email"`
	OtpCode int    `json:"otp_code" validate:"required,min=100000,max=999999"`
}

// RegenerateOtpRequest replaces the stored code, subject to the cooldown.
type RegenerateOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UnsubscribeRequest deletes the subscriber record regardless of activation state.
type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
