package server

import (
	"go-legal-cms/internal/audit"
	"go-legal-cms/internal/config"
	"go-legal-cms/internal/handler"
	"go-legal-cms/internal/middleware"
	"go-legal-cms/internal/repository"
	"go-legal-cms/internal/service"
	"go-legal-cms/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// New wires repositories, services, and handlers into a ready fiber app
func New(cfg *config.Config, db *gorm.DB, recorder *audit.Recorder, log *logger.Logger) *fiber.App {
	// Dependency injection (wiring layers)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	caseRepo := repository.NewCaseRepo(db)
	advisoryRepo := repository.NewAdvisoryRepo(db)
	documentRepo := repository.NewDocumentRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	resolver := service.NewRoleResolver(roleRepo, cfg.RoleCacheTTL, log)
	authService := service.NewAuthService(userRepo, recorder)
	userService := service.NewUserService(userRepo, roleRepo, resolver, recorder, log)
	caseService := service.NewCaseService(caseRepo)
	advisoryService := service.NewAdvisoryService(advisoryRepo)
	documentService := service.NewDocumentService(documentRepo, caseRepo)
	dashService := service.NewDashboardService(caseRepo, advisoryRepo, cfg.MetricsCacheTTL)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	caseHandler := handler.NewCaseHandler(caseService, recorder)
	advisoryHandler := handler.NewAdvisoryHandler(advisoryService, recorder)
	documentHandler := handler.NewDocumentHandler(documentService, recorder)
	auditHandler := handler.NewAuditHandler(auditRepo)
	dashHandler := handler.NewDashboardHandler(dashService)

	app := fiber.New(fiber.Config{
		AppName: "LASU Legal CMS v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Request logging
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/bootstrap-admin", authHandler.BootstrapAdmin)
	auth.Post("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/me", authHandler.Me)

	// Dashboard
	protected.Get("/dashboard/metrics", dashHandler.GetMetrics)
	protected.Get("/dashboard/upcoming-hearings", dashHandler.UpcomingHearings)
	protected.Get("/dashboard/risk", dashHandler.RiskMonitor)

	// Litigation registry. Calendar goes before the :id routes.
	protected.Get("/cases/calendar", caseHandler.Calendar)
	protected.Get("/cases", caseHandler.ListCases)
	protected.Post("/cases", caseHandler.CreateCase)
	protected.Get("/cases/:id", caseHandler.GetCase)
	protected.Put("/cases/:id", caseHandler.UpdateCase)
	protected.Delete("/cases/:id", middleware.RequireAdmin(resolver), caseHandler.DeleteCase)

	// Advisory workflow
	protected.Get("/advisory/board", advisoryHandler.Board)
	protected.Get("/advisory", advisoryHandler.ListRequests)
	protected.Post("/advisory", advisoryHandler.CreateRequest)
	protected.Get("/advisory/:id", advisoryHandler.GetRequest)
	protected.Put("/advisory/:id", advisoryHandler.UpdateRequest)
	protected.Delete("/advisory/:id", middleware.RequireAdmin(resolver), advisoryHandler.DeleteRequest)

	// Document vault
	protected.Get("/documents", documentHandler.ListDocuments)
	protected.Post("/documents", documentHandler.CreateDocument)
	protected.Get("/documents/:id", documentHandler.GetDocument)
	protected.Put("/documents/:id", documentHandler.UpdateDocument)
	protected.Delete("/documents/:id", middleware.RequireAdmin(resolver), documentHandler.DeleteDocument)
	protected.Get("/documents/:id/download", documentHandler.Download)

	// Audit trail
	protected.Get("/audit", auditHandler.ListLogs)

	// User administration
	admin := protected.Group("/admin", middleware.RequireAdmin(resolver))
	admin.Get("/users", userHandler.GetUsers)
	admin.Get("/users/:id", userHandler.GetUser)
	admin.Post("/users", userHandler.CreateUser)
	admin.Put("/users/:id", userHandler.UpdateUser)
	admin.Delete("/users/:id", userHandler.DeleteUser)

	return app
}
