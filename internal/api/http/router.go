package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/pusdatin-umc/helpdesk-service/internal/api/http/handlers"
	"github.com/pusdatin-umc/helpdesk-service/internal/auth"
	"github.com/pusdatin-umc/helpdesk-service/internal/observability"
	"github.com/pusdatin-umc/helpdesk-service/internal/storage"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Drafts         *handlers.DraftsHandler
	Assets         *handlers.AssetsHandler
	Catalog        *handlers.CatalogHandler
	Files          *handlers.FilesHandler
	AuthMiddleware *auth.AuthMiddleware
	StatusLimiter  *IPRateLimiter
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}
	if cfg.Files != nil {
		app.Get(storage.LocalPathPrefix+"*", cfg.Files.Serve)
	}

	requireAuth := cfg.AuthMiddleware.Handle
	helpdeskOnly := auth.RequireRole(auth.HelpdeskRoles...)
	assetOnly := auth.RequireRole(auth.AssetRoles...)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", requireAuth, cfg.Auth.Me)

	tickets := app.Group("/tickets")
	tickets.Post("/", cfg.Tickets.CreateTicket)
	statusLookup := []fiber.Handler{}
	if cfg.StatusLimiter != nil {
		statusLookup = append(statusLookup, cfg.StatusLimiter.Handler())
	}
	statusLookup = append(statusLookup, cfg.Tickets.CheckStatus)
	tickets.Get("/status/:ticketNumber", statusLookup...)
	tickets.Get("/my", requireAuth, cfg.Tickets.ListMine)
	tickets.Get("/", requireAuth, helpdeskOnly, cfg.Tickets.ListTickets)
	tickets.Get("/:ticketNumber", requireAuth, helpdeskOnly, cfg.Tickets.GetTicket)
	tickets.Post("/:ticketNumber/comments", cfg.AuthMiddleware.Optional, cfg.Tickets.AddComment)
	tickets.Post("/:ticketNumber/attachments", cfg.AuthMiddleware.Optional, cfg.Tickets.AddAttachments)
	tickets.Patch("/:ticketNumber/status", requireAuth, helpdeskOnly, cfg.Tickets.ChangeStatus)
	tickets.Post("/:ticketNumber/assign", requireAuth, helpdeskOnly, cfg.Tickets.Assign)

	drafts := app.Group("/drafts")
	drafts.Put("/:draftID", cfg.Drafts.Save)
	drafts.Get("/:draftID", cfg.Drafts.Load)
	drafts.Delete("/:draftID", cfg.Drafts.Discard)

	assets := app.Group("/assets")
	assets.Get("/", cfg.Assets.ListAssets)
	assets.Get("/my-borrows", requireAuth, cfg.Assets.MyBorrows)
	assets.Post("/borrow", cfg.Assets.SubmitBorrow)
	assets.Get("/borrow", requireAuth, assetOnly, cfg.Assets.ListBorrows)
	assets.Patch("/borrow/:id/status", requireAuth, assetOnly, cfg.Assets.UpdateBorrowStatus)
	assets.Get("/:id", cfg.Assets.GetAsset)

	app.Get("/services", cfg.Catalog.ListServices)
	app.Get("/services/status", cfg.Catalog.SystemStatus)
	app.Get("/services/:slug", cfg.Catalog.GetService)
	app.Get("/announcements", cfg.Catalog.Announcements)
	app.Get("/faq", cfg.Catalog.FAQs)
	app.Get("/faq/categories", cfg.Catalog.FAQCategories)
	app.Post("/contact", cfg.Catalog.Contact)
}
