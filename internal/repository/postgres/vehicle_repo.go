// internal/repository/postgres/vehicle_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transporte-service/internal/domain/vehicle"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// UpdateBySerialWithTx overwrites every mutable attribute of the vehicle row
// keyed by numero_serie and stamps fecha_actualizacion. The RETURNING clause
// doubles as the existence check: no row means the serial is unknown.
func (r *VehicleRepository) UpdateBySerialWithTx(ctx context.Context, tx pgx.Tx, serial string, rec *vehicle.Record) (int64, error) {
	query := `
		UPDATE vehiculos SET
			modelo_anio = $1, pasajeros = $2, cilindros = $3,
			id_clase = $4, id_tipo = $5, id_marca = $6, id_submarca = $7,
			id_version = $8, id_uso = $9, id_combustible = $10, id_origen = $11,
			id_color = $12, id_categoria = $13, id_tipo_placa = $14, id_servicio = $15,
			numero_motor = $16, puertas = $17, placa_anterior = $18, placa_asignada = $19,
			clasificacion_peso = $20, capacidad_carga = $21, clave_vehicular = $22,
			fecha_actualizacion = $23
		WHERE numero_serie = $24
		RETURNING id_vehiculo
	`

	var vehicleID int64
	err := tx.QueryRow(ctx, query,
		rec.Year, rec.Passengers, rec.Cylinders,
		rec.ClassID, rec.TypeID, rec.MakeID, rec.SubmodelID,
		rec.VersionID, rec.UseID, rec.FuelID, rec.OriginID,
		rec.ColorID, rec.CategoryID, rec.PlateTypeID, rec.ServiceID,
		rec.EngineNumber, rec.Doors, rec.PreviousPlate, rec.AssignedPlate,
		rec.WeightClass, rec.Capacity, rec.VehicularKey,
		time.Now(), serial,
	).Scan(&vehicleID)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("vehicle %q: %w", serial, xerrors.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update vehicle %q: %w", serial, err)
	}
	return vehicleID, nil
}

func (r *VehicleRepository) FindBySerial(ctx context.Context, serial string) (*vehicle.Vehicle, error) {
	query := `
		SELECT id_vehiculo, numero_serie, id_concesion, modelo_anio, pasajeros, cilindros,
		       id_clase, id_tipo, id_marca, id_submarca, id_version, id_uso,
		       id_combustible, id_origen, id_color, id_categoria, id_tipo_placa, id_servicio,
		       numero_motor, puertas, placa_anterior, placa_asignada,
		       clasificacion_peso, capacidad_carga, clave_vehicular, fecha_actualizacion
		FROM vehiculos
		WHERE numero_serie = $1
	`

	var v vehicle.Vehicle
	err := r.db.QueryRow(ctx, query, serial).Scan(
		&v.ID, &v.Serial, &v.ConcessionID, &v.Year, &v.Passengers, &v.Cylinders,
		&v.ClassID, &v.TypeID, &v.MakeID, &v.SubmodelID, &v.VersionID, &v.UseID,
		&v.FuelID, &v.OriginID, &v.ColorID, &v.CategoryID, &v.PlateTypeID, &v.ServiceID,
		&v.EngineNumber, &v.Doors, &v.PreviousPlate, &v.AssignedPlate,
		&v.WeightClass, &v.Capacity, &v.VehicularKey, &v.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle %q: %w", serial, err)
	}
	return &v, nil
}

const searchSelect = `
	SELECT v.id_vehiculo, v.numero_serie, v.id_concesion, v.placa_asignada, v.modelo_anio,
	       COALESCE(m.descripcion, ''), COALESCE(s.descripcion, ''), COALESCE(c.descripcion, ''),
	       v.fecha_actualizacion
	FROM vehiculos v
	LEFT JOIN cat_marcas m ON m.id = v.id_marca
	LEFT JOIN cat_submarcas s ON s.id = v.id_submarca
	LEFT JOIN cat_colores c ON c.id = v.id_color
`

func (r *VehicleRepository) SearchByConcession(ctx context.Context, concessionID int64, offset, limit int) ([]vehicle.Summary, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM vehiculos WHERE id_concesion = $1`, concessionID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles by concession: %w", err)
	}

	rows, err := r.db.Query(ctx,
		searchSelect+` WHERE v.id_concesion = $1 ORDER BY v.fecha_actualizacion DESC OFFSET $2 LIMIT $3`,
		concessionID, offset, limit,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search vehicles by concession: %w", err)
	}
	summaries, err := scanSummaries(rows)
	return summaries, total, err
}

func (r *VehicleRepository) SearchByPlate(ctx context.Context, plate string, offset, limit int) ([]vehicle.Summary, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM vehiculos WHERE placa_asignada = $1 OR placa_anterior = $1`, plate,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles by plate: %w", err)
	}

	rows, err := r.db.Query(ctx,
		searchSelect+` WHERE v.placa_asignada = $1 OR v.placa_anterior = $1 ORDER BY v.fecha_actualizacion DESC OFFSET $2 LIMIT $3`,
		plate, offset, limit,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search vehicles by plate: %w", err)
	}
	summaries, err := scanSummaries(rows)
	return summaries, total, err
}

func (r *VehicleRepository) SearchAll(ctx context.Context, offset, limit int) ([]vehicle.Summary, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vehiculos`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	rows, err := r.db.Query(ctx,
		searchSelect+` ORDER BY v.fecha_actualizacion DESC OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}
	summaries, err := scanSummaries(rows)
	return summaries, total, err
}

func scanSummaries(rows pgx.Rows) ([]vehicle.Summary, error) {
	defer rows.Close()

	var summaries []vehicle.Summary
	for rows.Next() {
		var s vehicle.Summary
		if err := rows.Scan(
			&s.ID, &s.Serial, &s.ConcessionID, &s.AssignedPlate, &s.Year,
			&s.MakeLabel, &s.SubmodelLabel, &s.ColorLabel, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicle summaries: %w", err)
	}
	return summaries, nil
}
