package sqlstore

import (
	"database/sql"
	"time"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/repository"
)

// TaskSchema binds entity.Task to the tasks table.
var TaskSchema = Schema[entity.Task]{
	Table:   "tasks",
	Columns: []string{"title", "notes", "done", "due_date"},
	Values: func(t *entity.Task) []any {
		return []any{t.Title, t.Notes, t.Done, t.DueDate}
	},
	Scan: func(s Scanner) (*entity.Task, error) {
		var t entity.Task
		var due sql.NullTime
		if err := s.Scan(
			&t.ID, &t.Title, &t.Notes, &t.Done, &due,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if due.Valid {
			t.DueDate = &due.Time
		}
		return &t, nil
	},
	ID:    func(t *entity.Task) int64 { return t.ID },
	SetID: func(t *entity.Task, id int64) { t.ID = id },
	StampNew: func(t *entity.Task, now time.Time) {
		t.CreatedAt = now
		t.UpdatedAt = now
	},
	StampUpdate: func(t *entity.Task, now time.Time) time.Time {
		prev := t.UpdatedAt
		t.UpdatedAt = now
		return prev
	},
}

// NewTaskStore returns the task repository backed by the given database.
func NewTaskStore(db *sql.DB, d Dialect) repository.TaskRepository {
	return New(db, TaskSchema, d)
}
