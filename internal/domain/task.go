package domain

import "time"

// Task is a work record submitted by an employee.
type Task struct {
	ID          string
	Email       string
	Description string
	WorkedDate  string
	CreatedAt   time.Time
}
