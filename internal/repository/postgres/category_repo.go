// internal/repository/postgres/category_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"transporte-service/internal/domain/catalog"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindByVehicularKey returns the category mapped to a vehicular key. A miss
// is reported as ErrNotFound; the caller decides whether that is fatal (it
// is not: unmapped vehicles stay unclassified).
func (r *CategoryRepository) FindByVehicularKey(ctx context.Context, tx pgx.Tx, key string) (*catalog.Category, error) {
	var c catalog.Category
	err := tx.QueryRow(ctx,
		`SELECT id_categoria, clave_vehicular, descripcion FROM cat_categorias WHERE clave_vehicular = $1`,
		key,
	).Scan(&c.ID, &c.VehicularKey, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up category for key %q: %w", key, err)
	}
	return &c, nil
}
