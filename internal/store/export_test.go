package store

import (
	"context"
	"database/sql"
)

// Conn pins one pooled connection so tests can force work onto the others.
func (s *Store) Conn(ctx context.Context) (*sql.Conn, error) {
	return s.db.Conn(ctx)
}
