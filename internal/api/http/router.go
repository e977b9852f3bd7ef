package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mytask-service/internal/api/http/handlers"
	"github.com/spec-kit/mytask-service/internal/auth"
)

// APIPrefix is the versioned base path of the task API.
const APIPrefix = "/my-task/api/v1"

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Tasks          *handlers.TasksHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group(APIPrefix)
	api.Post("/auth/access-token", cfg.Auth.IssueToken)
	api.Get("/logout", cfg.Auth.Logout)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Put("/create-or-update-user/:email", cfg.Users.UpsertProfile)
	protected.Get("/get-user-data/:email", cfg.Users.GetProfile)

	protected.Post("/add-new-task", cfg.Tasks.CreateTask)
	protected.Get("/all-tasks/:email", cfg.Tasks.ListTasks)
	protected.Get("/task-data/:id", cfg.Tasks.GetTask)
	protected.Patch("/update-task-data/:id", cfg.Tasks.UpdateTask)
	protected.Delete("/delete-task/:id", cfg.Tasks.DeleteTask)
}
