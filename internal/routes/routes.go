package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/config"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Legal    *handlers.LegalHandler
	Report   *handlers.ReportHandler
	Resource *handlers.ResourceHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, reg *prometheus.Registry, h Handlers) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	api.Get("/legal/privacy", h.Legal.PrivacyPolicy)
	api.Get("/legal/terms", h.Legal.TermsOfService)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	// JWT is applied per route so public routes above stay public
	jwt := middleware.JWTProtected(cfg)
	api.Post("/auth/logout", jwt, h.Auth.Logout)
	api.Get("/profile", jwt, h.Auth.Profile)

	api.Get("/reports/types", h.Report.Types)
	api.Post("/reports", jwt, h.Report.Submit)
	api.Get("/reports/recent", jwt, h.Report.Recent)

	api.Get("/resources", h.Resource.List)
	api.Get("/resources/emergency", h.Resource.Emergency)

	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))
	admin.Post("/resources", h.Resource.Create)
	admin.Put("/resources/:id", h.Resource.Update)
	admin.Delete("/resources/:id", h.Resource.Delete)
}
