// internal/repository/postgres/catalog_repo.go
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

// catalogTables maps each catalog to its table. Every table exposes the same
// (id, descripcion) shape; cat_tipos additionally carries id_clase.
var catalogTables = map[catalog.Kind]string{
	catalog.KindClass:     "cat_clases",
	catalog.KindType:      "cat_tipos",
	catalog.KindUse:       "cat_usos",
	catalog.KindColor:     "cat_colores",
	catalog.KindFuel:      "cat_combustibles",
	catalog.KindOrigin:    "cat_origenes",
	catalog.KindMake:      "cat_marcas",
	catalog.KindSubmodel:  "cat_submarcas",
	catalog.KindVersion:   "cat_versiones",
	catalog.KindPlateType: "cat_tipos_placa",
}

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func tableFor(kind catalog.Kind) (string, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown catalog %q: %w", kind, xerrors.ErrInvalidInput)
	}
	return table, nil
}

// ResolveWithTx finds the id of label in the given catalog, creating the row
// when no exact match exists. The ON CONFLICT clause makes the create path
// safe under a concurrent insert of the same label: the loser of the race
// re-reads and uses the winner's id.
func (r *CatalogRepository) ResolveWithTx(ctx context.Context, tx pgx.Tx, kind catalog.Kind, label string) (int64, bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, false, err
	}

	var id int64
	query := fmt.Sprintf(`SELECT id FROM %s WHERE descripcion = $1`, table)
	err = tx.QueryRow(ctx, query, label).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("failed to look up %s %q: %w", kind, label, err)
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (descripcion) VALUES ($1)
		ON CONFLICT (descripcion) DO UPDATE SET descripcion = EXCLUDED.descripcion
		RETURNING id
	`, table)
	if err := tx.QueryRow(ctx, insert, label).Scan(&id); err != nil {
		return 0, false, fmt.Errorf("failed to create %s %q: %w", kind, label, err)
	}
	return id, true, nil
}

// ResolveTypeWithTx is the clase-scoped variant for cat_tipos: the same label
// under two clases resolves to two distinct ids.
func (r *CatalogRepository) ResolveTypeWithTx(ctx context.Context, tx pgx.Tx, classID int64, label string) (int64, bool, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`SELECT id FROM cat_tipos WHERE id_clase = $1 AND descripcion = $2`,
		classID, label,
	).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("failed to look up tipo %q: %w", label, err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO cat_tipos (id_clase, descripcion) VALUES ($1, $2)
		ON CONFLICT (id_clase, descripcion) DO UPDATE SET descripcion = EXCLUDED.descripcion
		RETURNING id
	`, classID, label).Scan(&id)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create tipo %q: %w", label, err)
	}
	return id, true, nil
}

// FindIDByLabel is the read-only exact-match lookup used outside the
// modification transaction.
func (r *CatalogRepository) FindIDByLabel(ctx context.Context, kind catalog.Kind, label string) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	var id int64
	query := fmt.Sprintf(`SELECT id FROM %s WHERE descripcion = $1`, table)
	err = r.db.QueryRow(ctx, query, label).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, xerrors.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up %s %q: %w", kind, label, err)
	}
	return id, nil
}

// List returns every entry of a catalog ordered by label.
func (r *CatalogRepository) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, descripcion, created_at FROM %s ORDER BY descripcion`, table)
	if kind == catalog.KindType {
		query = `SELECT id, descripcion, id_clase, created_at FROM cat_tipos ORDER BY id_clase, descripcion`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog %s: %w", kind, err)
	}
	defer rows.Close()

	var entries []catalog.Entry
	for rows.Next() {
		var e catalog.Entry
		if kind == catalog.KindType {
			err = rows.Scan(&e.ID, &e.Label, &e.ClassID, &e.CreatedAt)
		} else {
			err = rows.Scan(&e.ID, &e.Label, &e.CreatedAt)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", kind, err)
	}
	return entries, nil
}
