package routes

import (
	"ems-gateway/internal/adapters/http/handlers"
	"ems-gateway/internal/adapters/http/middleware"
	"ems-gateway/internal/adapters/persistence/repositories"
	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/config"
	"ems-gateway/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository(db)

	// Upstream API client
	api := upstream.New(cfg.Upstream)

	// Initialize services
	sessionService := services.NewSessionService(sessionRepo, cfg)
	authService := services.NewAuthService(api, sessionService)
	employeeService := services.NewEmployeeService(api)
	hrService := services.NewHRService(api)
	portalService := services.NewPortalService(api)
	dashboardService := services.NewDashboardService(api)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	hrStaffHandler := handlers.NewHRStaffHandler(hrService)
	hrHandler := handlers.NewHRHandler(hrService)
	portalHandler := handlers.NewPortalHandler(portalService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Session middleware shared by every signed-in surface
	loadSession := middleware.LoadSession(sessionService, cfg)

	// Sign-in target. Guard redirects land here, so it stays public.
	app.Get("/login", middleware.NoCacheHeaders(), authHandler.LoginPrompt)

	// Auth routes
	authRoutes := app.Group("/auth", middleware.NoCacheHeaders())
	setupAuthRoutes(authRoutes, authHandler, loadSession)

	// Admin panel (ADMIN only past the guard)
	adminRoutes := app.Group("/admin", loadSession, middleware.AccessGuard())
	setupAdminRoutes(adminRoutes, dashboardHandler, employeeHandler, hrStaffHandler)

	// HR panel (HR only past the guard)
	hrRoutes := app.Group("/hr", loadSession, middleware.AccessGuard())
	setupHRRoutes(hrRoutes, hrHandler)

	// Employee panel (EMPLOYEE only past the guard)
	employeeRoutes := app.Group("/employee", loadSession, middleware.AccessGuard())
	setupEmployeeRoutes(employeeRoutes, portalHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, loadSession fiber.Handler) {
	// Public routes, rate limited against credential stuffing
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)

	// Session-backed routes
	router.Post("/logout", loadSession, handler.Logout)
	router.Get("/me", loadSession, handler.Me)
}

// setupAdminRoutes configures the admin panel routes
func setupAdminRoutes(
	router fiber.Router,
	dashboardHandler *handlers.DashboardHandler,
	employeeHandler *handlers.EmployeeHandler,
	hrStaffHandler *handlers.HRStaffHandler,
) {
	// Dashboard & profile
	router.Get("/", dashboardHandler.AdminDashboard)
	router.Get("/profile", dashboardHandler.Profile)

	// Manage employees
	router.Get("/manageemployees", employeeHandler.List)
	router.Post("/manageemployees", employeeHandler.Create)
	router.Put("/manageemployees/:id", employeeHandler.Update)
	router.Delete("/manageemployees/:id", employeeHandler.Delete)
	router.Get("/departments", employeeHandler.Departments)

	// Manage HR staff
	router.Get("/managehr", hrStaffHandler.List)
	router.Post("/managehr", hrStaffHandler.Create)
	router.Put("/managehr/:id", hrStaffHandler.Update)
	router.Delete("/managehr/:id", hrStaffHandler.Delete)
}

// setupHRRoutes configures the HR panel routes
func setupHRRoutes(router fiber.Router, handler *handlers.HRHandler) {
	// Attendance
	router.Get("/attendance", handler.Attendance)
	router.Post("/attendance/:id", handler.MarkAttendance)

	// Leaves
	router.Get("/leaves", handler.Leaves)
	router.Put("/leaves/:id/status", handler.DecideLeave)

	// Recruitment
	router.Get("/recruitment", handler.Recruitment)
	router.Patch("/candidates/:id/status", handler.SetCandidateStatus)
	router.Delete("/candidates", handler.ClearCandidates)
	router.Put("/recruitments/:id/status", handler.SetRecruitmentStatus)
}

// setupEmployeeRoutes configures the employee panel routes
func setupEmployeeRoutes(router fiber.Router, handler *handlers.PortalHandler) {
	router.Get("/", handler.Dashboard)
	router.Get("/attendance", handler.MyAttendance)
	router.Get("/leaves", handler.MyLeaves)
	router.Post("/leaves", handler.SubmitLeave)
}
