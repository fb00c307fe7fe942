// internal/domain/catalog/repository.go
package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	// Find-or-create resolution. The transactional variants participate in
	// the caller's vehicle-database transaction so that rows created for a
	// modification that later fails are rolled back with it. The bool result
	// reports whether a new row was created.
	ResolveWithTx(ctx context.Context, tx pgx.Tx, kind Kind, label string) (int64, bool, error)
	ResolveTypeWithTx(ctx context.Context, tx pgx.Tx, classID int64, label string) (int64, bool, error)

	// Read-only access for the catalog endpoints.
	FindIDByLabel(ctx context.Context, kind Kind, label string) (int64, error)
	List(ctx context.Context, kind Kind) ([]Entry, error)
}

// CategoryRepository resolves a vehicular classification key to its category
// row. A key maps to at most one category.
type CategoryRepository interface {
	FindByVehicularKey(ctx context.Context, tx pgx.Tx, key string) (*Category, error)
}
