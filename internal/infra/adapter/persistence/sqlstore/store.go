// Package sqlstore implements the generic CRUD repository over database/sql.
// One Store serves any entity type; per-entity knowledge lives in a Schema and
// driver differences in a Dialect. Adding a new entity to the template means
// writing a Schema and a constructor, not another repository.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/observability/metrics"
)

// Store is a generic CRUD repository for one entity type over one table.
// It satisfies repository.CrudRepository[E].
type Store[E any] struct {
	db     *sql.DB
	schema Schema[E]

	selectByID string
	selectAll  string
	insert     string
	update     string
	delete     string
	exists     string

	returningID bool
	now         func() time.Time
}

// New builds a Store for the given schema and dialect. All SQL statements are
// rendered once up front.
func New[E any](db *sql.DB, schema Schema[E], d Dialect) *Store[E] {
	allCols := "id, " + strings.Join(schema.Columns, ", ") + ", created_at, updated_at"
	dataCount := len(schema.Columns)

	insertCols := strings.Join(schema.Columns, ", ") + ", created_at, updated_at"
	insert := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		schema.Table, insertCols, d.Placeholders(1, dataCount+2),
	)
	if d.ReturningID {
		insert += " RETURNING id"
	}

	sets := make([]string, 0, dataCount+1)
	for i, col := range schema.Columns {
		sets = append(sets, col+" = "+d.Placeholder(i+1))
	}
	sets = append(sets, "updated_at = "+d.Placeholder(dataCount+1))
	update := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = %s AND updated_at = %s",
		schema.Table, strings.Join(sets, ", "),
		d.Placeholder(dataCount+2), d.Placeholder(dataCount+3),
	)

	return &Store[E]{
		db:     db,
		schema: schema,
		selectByID: fmt.Sprintf(
			"SELECT %s FROM %s WHERE id = %s LIMIT 1",
			allCols, schema.Table, d.Placeholder(1),
		),
		selectAll: fmt.Sprintf(
			"SELECT %s FROM %s ORDER BY id ASC",
			allCols, schema.Table,
		),
		insert: insert,
		update: update,
		delete: fmt.Sprintf(
			"DELETE FROM %s WHERE id = %s", schema.Table, d.Placeholder(1),
		),
		exists: fmt.Sprintf(
			"SELECT 1 FROM %s WHERE id = %s LIMIT 1", schema.Table, d.Placeholder(1),
		),
		returningID: d.ReturningID,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// observe records the outcome and latency of one operation.
func (s *Store[E]) observe(op string, start time.Time, err error) {
	metrics.RecordEntityOperation(s.schema.Table, op, err, time.Since(start))
}

// Get returns the entity with the given id, or entity.ErrNotFound.
func (s *Store[E]) Get(ctx context.Context, id int64) (_ *E, err error) {
	start := time.Now()
	defer func() { s.observe("get", start, err) }()

	row := s.db.QueryRowContext(ctx, s.selectByID, id)
	e, err := s.schema.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get %s: %w", s.schema.Table, err)
	}
	return e, nil
}

// List returns all entities ordered by id.
func (s *Store[E]) List(ctx context.Context) (_ []*E, err error) {
	start := time.Now()
	defer func() { s.observe("list", start, err) }()

	rows, err := s.db.QueryContext(ctx, s.selectAll)
	if err != nil {
		return nil, fmt.Errorf("List %s: %w", s.schema.Table, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*E, 0, 32)
	for rows.Next() {
		e, err := s.schema.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("List %s: %w", s.schema.Table, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Create inserts the entity, stamping both timestamps and storing the
// generated id back on the entity.
func (s *Store[E]) Create(ctx context.Context, e *E) (err error) {
	start := time.Now()
	defer func() { s.observe("create", start, err) }()

	now := s.now()
	s.schema.StampNew(e, now)

	args := append(s.schema.Values(e), now, now)

	if s.returningID {
		var id int64
		if err := s.db.QueryRowContext(ctx, s.insert, args...).Scan(&id); err != nil {
			return fmt.Errorf("Create %s: %w", s.schema.Table, err)
		}
		s.schema.SetID(e, id)
		return nil
	}

	res, err := s.db.ExecContext(ctx, s.insert, args...)
	if err != nil {
		return fmt.Errorf("Create %s: %w", s.schema.Table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create %s: LastInsertId: %w", s.schema.Table, err)
	}
	s.schema.SetID(e, id)
	return nil
}

// Update rewrites the entity's data columns, guarded by the updated_at the
// caller read. Zero rows affected means either the row is gone
// (entity.ErrNotFound) or someone else updated it first (entity.ErrConflict);
// an existence probe tells the two apart.
func (s *Store[E]) Update(ctx context.Context, e *E) (err error) {
	start := time.Now()
	defer func() { s.observe("update", start, err) }()

	id := s.schema.ID(e)
	now := s.now()
	prev := s.schema.StampUpdate(e, now)

	args := append(s.schema.Values(e), now, id, prev)
	res, err := s.db.ExecContext(ctx, s.update, args...)
	if err != nil {
		return fmt.Errorf("Update %s: %w", s.schema.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update %s: RowsAffected: %w", s.schema.Table, err)
	}
	if n == 0 {
		ok, err := s.rowExists(ctx, id)
		if err != nil {
			return fmt.Errorf("Update %s: %w", s.schema.Table, err)
		}
		if !ok {
			return entity.ErrNotFound
		}
		return entity.ErrConflict
	}
	return nil
}

// Delete removes the entity with the given id, or returns entity.ErrNotFound.
func (s *Store[E]) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { s.observe("delete", start, err) }()

	res, err := s.db.ExecContext(ctx, s.delete, id)
	if err != nil {
		return fmt.Errorf("Delete %s: %w", s.schema.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete %s: RowsAffected: %w", s.schema.Table, err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (s *Store[E]) rowExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, s.exists, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
