package entity

import "time"

// Task represents a single to-do item.
// DueDate is optional; Done flips via normal updates (no separate endpoint).
type Task struct {
	ID        int64
	Title     string
	Notes     string
	Done      bool
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// maxTitleLength bounds task titles to keep list views and indexes sane.
const maxTitleLength = 200

// maxNotesLength bounds free-form notes.
const maxNotesLength = 4000

// Validate checks the Task's field constraints.
// It returns a ValidationError describing the first violated constraint.
func (t *Task) Validate() error {
	if err := RequireString("title", t.Title, maxTitleLength); err != nil {
		return err
	}
	if err := MaxLength("notes", t.Notes, maxNotesLength); err != nil {
		return err
	}
	return nil
}
