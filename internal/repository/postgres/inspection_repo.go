// internal/repository/postgres/inspection_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transporte-service/internal/domain/inspection"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type InspectionRepository struct {
	db *pgxpool.Pool
}

func NewInspectionRepository(db *pgxpool.Pool) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) Create(ctx context.Context, in *inspection.Inspection) error {
	query := `
		INSERT INTO inspecciones (folio, id_vehiculo, numero_serie, id_inspector, estado, fotos, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		in.Folio, in.VehicleID, in.Serial, in.InspectorID, in.Status,
		pq.Array(in.Photos), in.Notes,
	).Scan(&in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create inspection %q: %w", in.Folio, err)
	}
	return nil
}

func (r *InspectionRepository) FindByFolio(ctx context.Context, folio string) (*inspection.Inspection, error) {
	query := `
		SELECT folio, id_vehiculo, numero_serie, id_inspector, estado, fotos, observaciones,
		       created_at, updated_at, fecha_cierre
		FROM inspecciones
		WHERE folio = $1
	`

	var in inspection.Inspection
	var photos []string
	err := r.db.QueryRow(ctx, query, folio).Scan(
		&in.Folio, &in.VehicleID, &in.Serial, &in.InspectorID, &in.Status,
		pq.Array(&photos), &in.Notes, &in.CreatedAt, &in.UpdatedAt, &in.ClosedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inspection %q: %w", folio, err)
	}
	in.Photos = photos
	return &in, nil
}

// AppendPhoto adds one photo URL and moves the inspection to the given
// status in a single statement.
func (r *InspectionRepository) AppendPhoto(ctx context.Context, folio string, photoURL string, status inspection.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE inspecciones
		SET fotos = array_append(fotos, $1), estado = $2, updated_at = $3
		WHERE folio = $4
	`, photoURL, status, time.Now(), folio)
	if err != nil {
		return fmt.Errorf("failed to append photo to inspection %q: %w", folio, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inspection %q: %w", folio, xerrors.ErrNotFound)
	}
	return nil
}

func (r *InspectionRepository) UpdateStatus(ctx context.Context, in *inspection.Inspection) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE inspecciones
		SET estado = $1, updated_at = $2, fecha_cierre = $3
		WHERE folio = $4
	`, in.Status, time.Now(), in.ClosedAt, in.Folio)
	if err != nil {
		return fmt.Errorf("failed to update inspection %q: %w", in.Folio, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inspection %q: %w", in.Folio, xerrors.ErrNotFound)
	}
	return nil
}
