// internal/repository/postgres/audit_repo.go
package postgres

import (
	"context"
	"fmt"

	"transporte-service/internal/domain/audit"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateWithTx appends one bitácora row. The timestamp comes from the
// database server, not the application clock.
func (r *AuditRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, entry *audit.Entry) error {
	query := `
		INSERT INTO bitacora_vehiculos (
			id_vehiculo, numero_serie, id_usuario, id_perfil, id_tarjeta, id_delegacion, operacion
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_bitacora, fecha
	`

	err := tx.QueryRow(ctx, query,
		entry.VehicleID, entry.Serial,
		entry.UserID, entry.ProfileID, entry.SmartCardID, entry.DelegationID,
		entry.Operation,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}
