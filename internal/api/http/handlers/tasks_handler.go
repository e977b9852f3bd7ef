package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mytask-service/internal/domain"
	"github.com/spec-kit/mytask-service/internal/repository"
	apperrors "github.com/spec-kit/mytask-service/pkg/util"
)

// TasksHandler exposes task record endpoints.
//
// Listing is identity-scoped; the by-id operations only require a valid
// credential. Task payloads are stored verbatim, so the owner email
// inside a payload is trusted as supplied.
type TasksHandler struct {
	tasks repository.TaskRepository
}

// NewTasksHandler constructs handler.
func NewTasksHandler(tasks repository.TaskRepository) *TasksHandler {
	return &TasksHandler{tasks: tasks}
}

// CreateTask handles POST /add-new-task.
func (h *TasksHandler) CreateTask(c *fiber.Ctx) error {
	payload := domain.Document{}
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid task payload")
	}

	result, err := h.tasks.Insert(c.Context(), payload)
	if err != nil {
		return storageFailure(c, err)
	}
	return c.JSON(insertResult(result))
}

// ListTasks handles GET /all-tasks/:email?taskStatus=.
func (h *TasksHandler) ListTasks(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := requireOwner(c, email); err != nil {
		return err
	}

	filter := domain.TaskFilter{OwnerEmail: email, Status: c.Query("taskStatus")}
	tasks, err := h.tasks.FindByOwner(c.Context(), filter)
	if err != nil {
		return storageFailure(c, err)
	}
	return c.JSON(tasks)
}

// GetTask handles GET /task-data/:id. An absent record yields an empty
// body, not an error.
func (h *TasksHandler) GetTask(c *fiber.Ctx) error {
	task, err := h.tasks.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return storageFailure(c, err)
	}
	return c.JSON(task)
}

// UpdateTask handles PATCH /update-task-data/:id. Only the named fields
// are overwritten; the rest of the record is untouched.
func (h *TasksHandler) UpdateTask(c *fiber.Ctx) error {
	payload := domain.Document{}
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid task payload")
	}

	result, err := h.tasks.UpdateFields(c.Context(), c.Params("id"), payload)
	if err != nil {
		return storageFailure(c, err)
	}
	return c.JSON(updateResult(result))
}

// DeleteTask handles DELETE /delete-task/:id.
func (h *TasksHandler) DeleteTask(c *fiber.Ctx) error {
	result, err := h.tasks.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return storageFailure(c, err)
	}
	return c.JSON(deleteResult(result))
}
