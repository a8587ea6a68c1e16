package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tradeacademy/backend/internal/config"
	"github.com/tradeacademy/backend/internal/handlers"
	"github.com/tradeacademy/backend/internal/middleware"
	"gorm.io/gorm"
)

// Handlers bundles every route handler so Setup keeps a manageable signature.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Admin        *handlers.AdminHandler
	Purchase     *handlers.PurchaseHandler
	Content      *handlers.ContentHandler
	Post         *handlers.PostHandler
	Announcement *handlers.AnnouncementHandler
	Booking      *handlers.BookingHandler
	Activity     *handlers.ActivityHandler
	Upload       *handlers.UploadHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h *Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", h.Health.Health)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
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

	// Purchase applications come from anonymous visitors
	api.Post("/purchase-requests", h.Purchase.Submit)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so it never touches the public ones
	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, h.Auth.Logout)
	api.Get("/auth/me", jwt, h.Auth.Me)

	// Member catalog
	api.Get("/content", jwt, h.Content.List)
	api.Get("/content/:id", jwt, h.Content.Show)
	api.Get("/posts", jwt, h.Post.List)
	api.Get("/posts/:id", jwt, h.Post.Show)
	api.Get("/announcements", jwt, h.Announcement.List)
	api.Get("/announcements/:id", jwt, h.Announcement.Show)

	// Mentorship bookings (list is admin-or-own inside the handler)
	api.Post("/bookings", jwt, h.Booking.Create)
	api.Get("/bookings", jwt, h.Booking.List)

	// Presence heartbeat
	api.Post("/activity/heartbeat", jwt, h.Activity.Heartbeat)
	api.Post("/activity/logout", jwt, h.Activity.Logout)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))

	admin.Get("/dashboard", h.Admin.Dashboard)

	admin.Get("/users", h.Admin.ListUsers)
	admin.Post("/users", h.Admin.CreateUser)
	admin.Put("/users/:id", h.Admin.UpdateUser)
	admin.Patch("/users/:id/password", h.Admin.UpdateUserPassword)
	admin.Delete("/users/:id", h.Admin.DeleteUser)

	admin.Get("/purchase-requests", h.Purchase.List)
	admin.Get("/purchase-requests/:id", h.Purchase.Show)
	admin.Put("/purchase-requests/:id/status", h.Purchase.UpdateStatus)
	admin.Post("/purchase-requests/:id/approve", h.Purchase.Approve)
	admin.Delete("/purchase-requests/:id", h.Purchase.Delete)

	admin.Post("/content", h.Content.Create)
	admin.Put("/content/:id", h.Content.Update)
	admin.Delete("/content/:id", h.Content.Delete)

	admin.Post("/posts", h.Post.Create)
	admin.Put("/posts/:id", h.Post.Update)
	admin.Delete("/posts/:id", h.Post.Delete)

	admin.Post("/announcements", h.Announcement.Create)
	admin.Put("/announcements/:id", h.Announcement.Update)
	admin.Delete("/announcements/:id", h.Announcement.Delete)

	admin.Put("/bookings/:id/status", h.Booking.UpdateStatus)
	admin.Put("/bookings/:id", h.Booking.Update)

	admin.Get("/activity/status", h.Activity.Status)

	admin.Post("/upload", h.Upload.Upload)
}
