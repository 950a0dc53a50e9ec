package sqlstore

import (
	"fmt"
	"strings"
)

// Dialect captures the SQL differences between the supported drivers.
// Postgres numbers its placeholders and can return generated keys inline;
// SQLite uses positional markers and LastInsertId.
type Dialect struct {
	Name        string
	ReturningID bool

	placeholder func(n int) string
}

// Postgres is the dialect for the pgx stdlib driver.
var Postgres = Dialect{
	Name:        "postgres",
	ReturningID: true,
	placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
}

// SQLite is the dialect for the modernc sqlite driver.
var SQLite = Dialect{
	Name:        "sqlite",
	ReturningID: false,
	placeholder: func(n int) string { return "?" },
}

// Placeholder returns the bind marker for the n-th parameter (1-based).
func (d Dialect) Placeholder(n int) string {
	return d.placeholder(n)
}

// Placeholders returns a comma-joined list of bind markers for parameters
// start..start+count-1.
func (d Dialect) Placeholders(start, count int) string {
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		parts = append(parts, d.placeholder(start+i))
	}
	return strings.Join(parts, ", ")
}
