package http

import (
	"net/http"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/auth"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/newsletter"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/order"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/promotion"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/recruitment"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/config"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/i18n"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/transport/http/handler"
	appmiddleware "github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw, optionalAuthMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
		optionalAuthMw = appmiddleware.OptionalAuth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
		optionalAuthMw = authMw
	}

	// One request per IP, then one more every five minutes. Applied to the
	// guest-facing submission endpoints; authenticated staff bypass it.
	guestRL := appmiddleware.NewRateLimiter(rate.Every(5*time.Minute), 1, deps.Clock)

	newsletterSvc := newsletter.NewService(newsletter.ServiceDeps{
		SubscriberRepo: deps.SubscriberRepo,
		Mailer:         deps.Mailer,
		Clock:          deps.Clock,
	})
	promotionSvc := promotion.NewService(deps.DiscountCodeRepo, deps.Clock)
	orderSvc := order.NewService(deps.OrderRepo)
	recruitmentSvc := recruitment.NewService(deps.ApplicationRepo)
	authSvc := auth.NewService(deps.EmployeeRepo, deps.JWTProvider)

	newsletterH := handler.NewNewsletterHandler(newsletterSvc)
	promotionH := handler.NewPromotionHandler(promotionSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	jobH := handler.NewJobHandler(recruitmentSvc)
	sessionH := handler.NewSessionHandler(authSvc)
	employeeH := handler.NewEmployeeHandler(authSvc)

	r.Get("/health-check", handler.Health)
	r.Post("/auth/login", sessionH.Login)

	// Guest submission surface. Locale resolution runs first so rejections
	// are localized, then optional auth so staff tokens lift the quota.
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Locale)
		r.Use(optionalAuthMw)

		r.With(guestRL.Limit(i18n.KeyRateLimitOrder)).
			Post("/orders/add-order", orderH.AddOrder)
		r.With(guestRL.Limit(i18n.KeyRateLimitJobApplication)).
			Post("/jobs/add-job-offer-application", jobH.AddApplication)
		r.With(guestRL.Limit(i18n.KeyRateLimitNewsletter)).
			Post("/newsletter/subscribe", newsletterH.Subscribe)

		r.Put("/newsletter/verify-subscription", newsletterH.VerifySubscription)
		r.Put("/newsletter/regenerate-otp", newsletterH.RegenerateOtp)
		r.Post("/newsletter/unsubscribe", newsletterH.Unsubscribe)
	})

	// Staff routes.
	r.Group(func(r chi.Router) {
		r.Use(authMw)
		r.Use(appmiddleware.RequireRole(domain.RoleManager, domain.RoleEmployee))

		r.Get("/orders/{id}", orderH.Get)
		r.Put("/orders/{id}/status", orderH.UpdateStatus)
		r.Get("/jobs/applications/{id}", jobH.Get)
		r.Get("/discount-codes", promotionH.List)
		r.Get("/discount-codes/{code}", promotionH.Get)

		// Manager-only routes.
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireRole(domain.RoleManager))

			r.Post("/discount-codes", promotionH.Create)
			r.Put("/discount-codes/{code}", promotionH.Update)
			r.Delete("/discount-codes/{code}", promotionH.Delete)
			r.Post("/employees", employeeH.Create)
		})
	})

	return r
}
