// internal/domain/audit/repository.go
package audit

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	// CreateWithTx appends one entry inside the caller's vehicle-database
	// transaction so the audit row rolls back with a failed modification.
	CreateWithTx(ctx context.Context, tx pgx.Tx, entry *Entry) error
}

// UserResolver is the upstream collaborator that expands an authenticated
// user id into its acting-user context. Implementations must never return
// nulls: unknown users resolve to zero-valued fields.
type UserResolver interface {
	ResolveActingUser(ctx context.Context, userID int64) (ActingUser, error)
}
