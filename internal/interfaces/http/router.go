package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/registry"
	"github.com/jhoicas/almacen-api/internal/application/request"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Registry      *registry.Registry
	Procurement   *ledger.ProcurementLedger
	Movement      *ledger.MovementEngine
	Discard       *ledger.DiscardLedger
	Requests      *request.Workflow
	Dashboard     *analytics.DashboardUseCase
	Recorder      *audit.Recorder
	Balances      repository.BalanceRepository
	Movements     repository.MovementRepository
	Procurements  repository.ProcurementRepository
	Discards      repository.DiscardRepository
	Notifications repository.NotificationRepository
	JWTSecret     string
}

// Router registra las rutas de la API. Las mutaciones del registro, las
// adquisiciones, los descartes y la resolución de solicitudes son de admin;
// el resto requiere solo sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.Registry, deps.Balances)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Get("/:id/balances", itemHandler.Balances)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Put("/:id", adminOnly, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Registry)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Departments
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.Registry)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)
	departments.Post("/", adminOnly, departmentHandler.Create)
	departments.Put("/:id", adminOnly, departmentHandler.Update)
	departments.Delete("/:id", adminOnly, departmentHandler.Delete)

	// Locations
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.Registry, deps.Balances)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Get("/:id/balances", locationHandler.Balances)
	locations.Post("/", adminOnly, locationHandler.Create)
	locations.Put("/:id", adminOnly, locationHandler.Update)
	locations.Delete("/:id", adminOnly, locationHandler.Delete)

	// Users (administración; el alta va por /auth/register)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.Registry)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Procurement lots
	procurements := protected.Group("/procurements")
	procurementHandler := NewProcurementHandler(deps.Procurement, deps.Procurements)
	procurements.Get("/", procurementHandler.List)
	procurements.Get("/:id", procurementHandler.GetByID)
	procurements.Post("/", adminOnly, procurementHandler.Create)
	procurements.Patch("/:id", adminOnly, procurementHandler.Amend)

	// Stock movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Movement, deps.Movements)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", adminOnly, movementHandler.Create)

	// Discards
	discards := protected.Group("/discards")
	discardHandler := NewDiscardHandler(deps.Discard, deps.Discards)
	discards.Get("/", discardHandler.List)
	discards.Get("/:id", discardHandler.GetByID)
	discards.Post("/", adminOnly, discardHandler.Create)

	// Stock requests
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.Requests)
	requests.Post("/", requestHandler.Submit)
	requests.Get("/mine", requestHandler.Mine)
	requests.Get("/", adminOnly, requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Post("/:id/approve", adminOnly, requestHandler.Approve)
	requests.Post("/:id/reject", adminOnly, requestHandler.Reject)

	// Audit log (solo admin)
	auditGroup := protected.Group("/audit", adminOnly)
	auditHandler := NewAuditHandler(deps.Recorder)
	auditGroup.Get("/", auditHandler.List)
	auditGroup.Get("/export", auditHandler.Export)

	// Notifications del usuario autenticado
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Notifications)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
