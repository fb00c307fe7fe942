package audit

import "time"

// Operation codes written to the bitácora. The values are fixed by the
// downstream reporting queries and must not change.
type Operation int

const (
	OperationRegister Operation = 1
	OperationModify   Operation = 2
	OperationSuspend  Operation = 3
)

// ActingUser identifies who performed an operation. Every field defaults to
// 0 (an unknown/system actor) rather than null so the bitácora stays
// queryable by exact match.
type ActingUser struct {
	UserID       int64 `json:"id_usuario"`
	ProfileID    int64 `json:"id_perfil"`
	SmartCardID  int64 `json:"id_tarjeta"`
	DelegationID int64 `json:"id_delegacion"`
}

// Entry is one append-only bitácora row. Entries are never mutated or
// deleted; the timestamp is assigned by the database server.
type Entry struct {
	ID           int64     `json:"id" db:"id_bitacora"`
	VehicleID    int64     `json:"id_vehiculo" db:"id_vehiculo"`
	Serial       string    `json:"numero_serie" db:"numero_serie"`
	UserID       int64     `json:"id_usuario" db:"id_usuario"`
	ProfileID    int64     `json:"id_perfil" db:"id_perfil"`
	SmartCardID  int64     `json:"id_tarjeta" db:"id_tarjeta"`
	DelegationID int64     `json:"id_delegacion" db:"id_delegacion"`
	Operation    Operation `json:"operacion" db:"operacion"`
	CreatedAt    time.Time `json:"created_at" db:"fecha"`
}
