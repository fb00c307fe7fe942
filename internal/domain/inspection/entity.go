package inspection

import "time"

// Status is the lifecycle state of an inspection (persisted as a string).
type Status string

const (
	StatusOpen    Status = "abierta"   // created, no photos yet
	StatusPhotos  Status = "con_fotos" // at least one photo attached
	StatusPrinted Status = "impresa"   // report printed, awaiting sign-off
	StatusClosed  Status = "cerrada"   // finalized, immutable
)

// Inspection is one vehicle inspection. Photos hold document/image URLs only;
// the binary upload itself is handled elsewhere.
type Inspection struct {
	Folio       string     `json:"folio" db:"folio"`
	VehicleID   int64      `json:"id_vehiculo" db:"id_vehiculo"`
	Serial      string     `json:"numero_serie" db:"numero_serie"`
	InspectorID int64      `json:"id_inspector" db:"id_inspector"`
	Status      Status     `json:"estado" db:"estado"`
	Photos      []string   `json:"fotos" db:"fotos"`
	Notes       string     `json:"observaciones" db:"observaciones"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty" db:"fecha_cierre"`
}

// CreateInspectionRequest opens an inspection for an existing vehicle.
type CreateInspectionRequest struct {
	Serial string `json:"numero_serie" binding:"required"`
	Notes  string `json:"observaciones"`
}

// AttachPhotoRequest adds one photo URL to an open inspection.
type AttachPhotoRequest struct {
	PhotoURL string `json:"foto_url" binding:"required,url"`
}
