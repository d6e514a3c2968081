package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/http/handlers"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Payments       *handlers.PaymentsHandler
	Tasks          *handlers.TasksHandler
	Catalog        *handlers.CatalogHandler
	Contact        *handlers.ContactHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Registration, token issuance and reads
// stay open; role and status mutations require an admin or HR token, and
// task mutations require the owning identity (or HR/admin).
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/jwt", cfg.Auth.IssueToken)

	authenticated := cfg.AuthMiddleware.Handle
	adminOnly := auth.RequireRole(domain.RoleAdmin)
	adminOrHR := auth.RequireRole(domain.RoleAdmin, domain.RoleHR)

	app.Post("/users", cfg.Users.Register)
	app.Get("/users", cfg.Users.List)
	app.Get("/users/payable", cfg.Users.ListPayable)
	app.Get("/users/role/:email", cfg.Users.RoleOf)
	app.Get("/users/admin/:email", authenticated, auth.RequireSelf("email"), cfg.Users.IsAdmin)
	app.Get("/users/:email", cfg.Users.GetByEmail)
	app.Get("/employees/:id", cfg.Users.GetEmployee)

	app.Patch("/users/admin/:id", authenticated, adminOnly, cfg.Users.MakeAdmin)
	app.Patch("/users/hr/:id", authenticated, adminOnly, cfg.Users.MakeHR)
	app.Patch("/users/fire/:id", authenticated, adminOnly, cfg.Users.Fire)
	app.Patch("/users/salary/:id", authenticated, adminOrHR, cfg.Users.UpdateSalary)
	app.Patch("/users/verify/:id", authenticated, adminOrHR, cfg.Users.ToggleVerified)
	app.Patch("/users/payable/:id", authenticated, adminOrHR, cfg.Users.MarkPayable)

	app.Post("/create-payment-intent", cfg.Payments.CreateIntent)
	app.Post("/payments", cfg.Payments.Record)
	app.Get("/payment-history", cfg.Payments.History)

	app.Get("/tasks", cfg.Tasks.List)
	app.Get("/allWorkRecords", cfg.Tasks.ListAll)
	app.Post("/tasks", authenticated, cfg.Tasks.Create)
	app.Put("/tasks/:id", authenticated, cfg.Tasks.Replace)
	app.Delete("/tasks/:id", authenticated, cfg.Tasks.Delete)

	app.Get("/services", cfg.Catalog.Services)
	app.Get("/reviews", cfg.Catalog.Reviews)

	app.Post("/contact-us", cfg.Contact.Submit)
	app.Get("/contact-us", cfg.Contact.List)
}
