package domain

import "time"

// Employee roles. Manager and employee together form the operational-staff
// capability: callers holding either role bypass the public rate limiter.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// IsOperationalStaff reports whether the role belongs to the operational-staff
// capability set.
func IsOperationalStaff(role string) bool {
	return role == RoleManager || role == RoleEmployee
}

// Employee is a staff account. PK: employee_id, GSI: email-index.
type Employee struct {
	EmployeeID   string    `json:"employee_id" dynamodbav:"employee_id"`
	Email        string    `json:"email" dynamodbav:"email"`
	FirstName    string    `json:"first_name" dynamodbav:"first_name"`
	LastName     string    `json:"last_name" dynamodbav:"last_name"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Role         string    `json:"role" dynamodbav:"role"`
	Enable       bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// LoginRequest authenticates an employee.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateEmployeeRequest registers a new staff account (manager only).
type CreateEmployeeRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=manager employee"`
}
