// internal/domain/vehicle/repository.go
package vehicle

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	// UpdateBySerialWithTx overwrites the mutable attributes of the vehicle
	// identified by serial and returns its surrogate id. Zero rows affected
	// means the serial is unknown and surfaces as a not-found error.
	UpdateBySerialWithTx(ctx context.Context, tx pgx.Tx, serial string, rec *Record) (int64, error)

	FindBySerial(ctx context.Context, serial string) (*Vehicle, error)

	// Search queries, one per filter variant.
	SearchByConcession(ctx context.Context, concessionID int64, offset, limit int) ([]Summary, int64, error)
	SearchByPlate(ctx context.Context, plate string, offset, limit int) ([]Summary, int64, error)
	SearchAll(ctx context.Context, offset, limit int) ([]Summary, int64, error)
}
