package http

import (
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/infrastructure/dynamo"
	jwtinfra "github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/infrastructure/jwt"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/infrastructure/smtp"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/clock"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	SubscriberRepo   *dynamo.SubscriberRepo
	DiscountCodeRepo *dynamo.DiscountCodeRepo
	OrderRepo        *dynamo.OrderRepo
	ApplicationRepo  *dynamo.JobApplicationRepo
	EmployeeRepo     *dynamo.EmployeeRepo
	Mailer           smtp.Mailer
	JWTProvider      *jwtinfra.Provider
	Clock            clock.Clock
}
