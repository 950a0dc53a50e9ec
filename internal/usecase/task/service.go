// Package task implements the task management use cases.
package task

import (
	"context"
	"fmt"
	"time"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/repository"
)

// CreateInput represents the input for creating a new task.
type CreateInput struct {
	Title   string     `json:"title"`
	Notes   string     `json:"notes"`
	DueDate *time.Time `json:"due_date"`
}

// UpdateInput represents the input for replacing an existing task.
// PUT semantics: every field is rewritten from the input. ID is optional in
// the body; when present it must match the path id (checked by the handler).
type UpdateInput struct {
	ID      *int64     `json:"id,omitempty"`
	Title   string     `json:"title"`
	Notes   string     `json:"notes"`
	Done    bool       `json:"done"`
	DueDate *time.Time `json:"due_date"`
}

// BodyID returns the id carried in the request body, if any.
func (in UpdateInput) BodyID() (int64, bool) {
	if in.ID == nil {
		return 0, false
	}
	return *in.ID, true
}

// Service provides task use cases. It validates input and delegates
// persistence to the repository.
type Service struct {
	Repo repository.TaskRepository
}

// List returns all tasks.
func (s *Service) List(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the task with the given id.
// Returns entity.ErrNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, nil
}

// Create validates the input and persists a new task, returning it with its
// generated id and timestamps.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Task, error) {
	task := &entity.Task{
		Title:   in.Title,
		Notes:   in.Notes,
		DueDate: in.DueDate,
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update replaces the stored task with the input.
// Returns entity.ErrNotFound if the task does not exist and entity.ErrConflict
// if a concurrent writer updated it after this caller read it.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	task, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}

	task.Title = in.Title
	task.Notes = in.Notes
	task.Done = in.Done
	task.DueDate = in.DueDate

	if err := task.Validate(); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, task); err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

// Delete removes the task with the given id.
// Returns entity.ErrNotFound if it does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}
