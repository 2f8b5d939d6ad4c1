package dto

import "time"

// CreateTaskRequest payload.
type CreateTaskRequest struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Deadline             *time.Time `json:"deadline"`
	WarningBoundaryHours int        `json:"warningBoundaryHours"`
}
