package domain

import "time"

// JobApplication is a submission against a published job offer.
// PK: application_id.
type JobApplication struct {
	ApplicationID      string    `json:"application_id" dynamodbav:"application_id"`
	JobOfferName       string    `json:"job_offer_name" dynamodbav:"job_offer_name"`
	ApplicantFirstName string    `json:"applicant_first_name" dynamodbav:"applicant_first_name"`
	ApplicantLastName  string    `json:"applicant_last_name" dynamodbav:"applicant_last_name"`
	Email              string    `json:"email" dynamodbav:"email"`
	Phone              string    `json:"phone" dynamodbav:"phone"`
	AdditionalMessage  string    `json:"additional_message" dynamodbav:"additional_message"`
	IsStudent          bool      `json:"is_student" dynamodbav:"is_student"`
	CreatedAt          time.Time `json:"created_at" dynamodbav:"created_at"`
}

// AddJobApplicationRequest submits an application for a job offer.
type AddJobApplicationRequest struct {
	JobOfferName       string `json:"job_offer_name" validate:"required"`
	ApplicantFirstName string `json:"applicant_first_name" validate:"required"`
	ApplicantLastName  string `json:"applicant_last_name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	Phone              string `json:"phone" validate:"required,numeric,len=9"`
	AdditionalMessage  string `json:"additional_message"`
	IsStudent          bool   `json:"is_student"`
}
