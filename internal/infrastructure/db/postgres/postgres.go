// Package postgres implements the storage collaborators on PostgreSQL.
// Referential integrity (cases reference agents) and email uniqueness are enforced
// by the schema itself, so writes racing a concurrent delete fail atomically
// instead of persisting dangling rows.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/policedept/records-system/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Connect opens a connection pool and verifies connectivity with a ping.
func Connect(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

// SQLSTATE classes for constraint violations.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// constraintError translates constraint violations raised by the schema into
// the domain taxonomy. Non-constraint errors pass through unchanged.
func constraintError(err error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return err
	}
	switch string(pqErr.Code) {
	case codeForeignKeyViolation:
		return domain.DanglingReference("agent", "agentId")
	case codeUniqueViolation:
		return domain.FieldError(domain.KindEmailInUse, "email", "email already in use")
	}
	return err
}
