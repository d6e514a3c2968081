package dto

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// TaskRequest payload for create and replace.
type TaskRequest struct {
	Email string `json:"email"`
	Task  string `json:"task"`
	Date  string `json:"date"`
}

// TaskResponse is the serialized work record.
type TaskResponse struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Task      string    `json:"task"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTaskResponse maps the domain model.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Email:     task.Email,
		Task:      task.Description,
		Date:      task.WorkedDate,
		CreatedAt: task.CreatedAt,
	}
}

// NewTaskResponses maps a slice of domain models.
func NewTaskResponses(tasks []domain.Task) []TaskResponse {
	items := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, NewTaskResponse(&tasks[i]))
	}
	return items
}
