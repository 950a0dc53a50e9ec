// Package task exposes the task REST resource at /api/tasks.
package task

import (
	"time"

	"crud-starter/internal/domain/entity"
)

type DTO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	Done      bool       `json:"done"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toDTO(t *entity.Task) any {
	return DTO{
		ID:        t.ID,
		Title:     t.Title,
		Notes:     t.Notes,
		Done:      t.Done,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
