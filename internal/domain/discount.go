package domain

import "time"

// DiscountCode is a time-bound promotional token. PK: code.
// Expiration is never swept proactively; it is checked lazily on lookup.
type DiscountCode struct {
	Code               string    `json:"code" dynamodbav:"code"`
	DiscountPercentage float64   `json:"discount_percentage" dynamodbav:"discount_percentage"`
	ExpirationDate     time.Time `json:"expiration_date" dynamodbav:"expiration_date"`
	CreatedAt          time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Expired reports whether the code's expiration date lies before now.
func (d *DiscountCode) Expired(now time.Time) bool {
	return d.ExpirationDate.Before(now)
}

// CreateDiscountCodeRequest creates a discount code. Code is optional; when
// absent a 16-character code is generated. ExpirationDate is optional and
// defaults to one month from issuance; when supplied it must be in the future.
type CreateDiscountCodeRequest struct {
	Code               *string    `json:"code" validate:"omitempty,len=16,alphanum,uppercase"`
	DiscountPercentage float64    `json:"discount_percentage" validate:"required,gt=0,lte=100"`
	ExpirationDate     *time.Time `json:"expiration_date"`
}

// UpdateDiscountCodeRequest is an administrative partial update. Backdating
// the expiration is allowed here, unlike at creation.
type UpdateDiscountCodeRequest struct {
	DiscountPercentage *float64   `json:"discount_percentage" validate:"omitempty,gt=0,lte=100"`
	ExpirationDate     *time.Time `json:"expiration_date"`
}
