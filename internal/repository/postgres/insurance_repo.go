// internal/repository/postgres/insurance_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transporte-service/internal/domain/insurance"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsuranceRepository runs against the concession database pool, a separate
// transaction domain from the vehicle repositories.
type InsuranceRepository struct {
	db *pgxpool.Pool
}

func NewInsuranceRepository(db *pgxpool.Pool) *InsuranceRepository {
	return &InsuranceRepository{db: db}
}

// Upsert inserts or refreshes the policy for its concession. Latest wins:
// the previous policy detail is overwritten, not versioned.
func (r *InsuranceRepository) Upsert(ctx context.Context, policy *insurance.Policy) error {
	query := `
		INSERT INTO aseguradoras_concesion (
			id_concesion, aseguradora, numero_poliza,
			fecha_expedicion, fecha_vencimiento, folio_pago, observaciones, fecha_actualizacion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id_concesion) DO UPDATE SET
			aseguradora = EXCLUDED.aseguradora,
			numero_poliza = EXCLUDED.numero_poliza,
			fecha_expedicion = EXCLUDED.fecha_expedicion,
			fecha_vencimiento = EXCLUDED.fecha_vencimiento,
			folio_pago = EXCLUDED.folio_pago,
			observaciones = EXCLUDED.observaciones,
			fecha_actualizacion = EXCLUDED.fecha_actualizacion
	`

	policy.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx, query,
		policy.ConcessionID, policy.Insurer, policy.PolicyNumber,
		policy.IssueDate, policy.ExpirationDate, policy.PaymentFolio,
		policy.Remarks, policy.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert insurance policy for concession %d: %w", policy.ConcessionID, err)
	}
	return nil
}

func (r *InsuranceRepository) FindByConcession(ctx context.Context, concessionID int64) (*insurance.Policy, error) {
	query := `
		SELECT id_concesion, aseguradora, numero_poliza,
		       fecha_expedicion, fecha_vencimiento, folio_pago, observaciones, fecha_actualizacion
		FROM aseguradoras_concesion
		WHERE id_concesion = $1
	`

	var p insurance.Policy
	err := r.db.QueryRow(ctx, query, concessionID).Scan(
		&p.ConcessionID, &p.Insurer, &p.PolicyNumber,
		&p.IssueDate, &p.ExpirationDate, &p.PaymentFolio, &p.Remarks, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find insurance policy for concession %d: %w", concessionID, err)
	}
	return &p, nil
}
