package sqlstore

import "time"

// Scanner is the subset of *sql.Row / *sql.Rows the schema scan functions need.
type Scanner interface {
	Scan(dest ...any) error
}

// Schema binds one entity type to its table. It names the data columns and
// supplies the value/scan plumbing the generic store cannot derive itself.
//
// Column order is a contract: Values must return bind values in Columns order,
// and Scan must read id, the data columns in Columns order, then created_at
// and updated_at.
type Schema[E any] struct {
	// Table is the SQL table name.
	Table string

	// Columns lists the data columns, excluding id, created_at and updated_at.
	Columns []string

	// Values returns the bind values for the data columns, in Columns order.
	Values func(e *E) []any

	// Scan reads one full row: id, data columns, created_at, updated_at.
	Scan func(s Scanner) (*E, error)

	// ID returns the entity's identifier.
	ID func(e *E) int64

	// SetID stores a generated identifier on the entity after insert.
	SetID func(e *E, id int64)

	// StampNew sets both timestamps on a freshly created entity.
	StampNew func(e *E, now time.Time)

	// StampUpdate sets the new updated_at and returns the previous value,
	// which guards the UPDATE against concurrent writers.
	StampUpdate func(e *E, now time.Time) (prev time.Time)
}
