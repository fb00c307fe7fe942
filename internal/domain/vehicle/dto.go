package vehicle

import "time"

// ModifyVehicleRequest is the payload of the vehicle/insurance modification
// endpoint. Catalog attributes arrive as free text and are resolved (or
// created) against the reference catalogs during the update.
type ModifyVehicleRequest struct {
	Attributes VehicleAttributes `json:"vehicle" binding:"required"`
	Insurance  InsurancePolicy   `json:"insurance" binding:"required"`
}

// VehicleAttributes are the mutable attributes of a vehicle. The serial comes
// from the URL path, not the body.
type VehicleAttributes struct {
	Serial        string  `json:"-"`
	Year          int     `json:"modelo_anio" binding:"required,min=1900,max=2100"`
	Passengers    int     `json:"pasajeros" binding:"min=0"`
	Cylinders     int     `json:"cilindros" binding:"min=0"`
	Class         string  `json:"clase" binding:"required"`
	Type          string  `json:"tipo" binding:"required"`
	Make          string  `json:"marca" binding:"required"`
	Submodel      string  `json:"submarca"`
	Version       string  `json:"version"`
	Use           string  `json:"uso"`
	Fuel          string  `json:"combustible"`
	Origin        string  `json:"origen"`
	Color         string  `json:"color"`
	EngineNumber  string  `json:"numero_motor"`
	Doors         int     `json:"puertas" binding:"min=0"`
	PreviousPlate string  `json:"placa_anterior"`
	AssignedPlate string  `json:"placa_asignada"`
	WeightClass   string  `json:"clasificacion_peso"`
	Capacity      float64 `json:"capacidad_carga"`
	ServiceID     int64   `json:"id_servicio"`
	PlateType     string  `json:"tipo_placa"`
	VehicularKey  string  `json:"clave_vehicular"`
}

// InsurancePolicy is the insurance portion of a modification request. It is
// written to the concession database after the vehicle transaction commits.
type InsurancePolicy struct {
	ConcessionID   int64     `json:"id_concesion" binding:"required"`
	Insurer        string    `json:"aseguradora" binding:"required"`
	PolicyNumber   string    `json:"numero_poliza" binding:"required"`
	IssueDate      time.Time `json:"fecha_expedicion"`
	ExpirationDate time.Time `json:"fecha_vencimiento"`
	PaymentFolio   string    `json:"folio_pago"`
	Remarks        string    `json:"observaciones"`
}

// ModifyVehicleResult reports the outcome of a modification. The two updated
// flags are independent: the vehicle transaction can commit and the insurance
// write still fail, and callers must be able to tell that apart from a full
// failure.
type ModifyVehicleResult struct {
	VehicleID        int64    `json:"vehicle_id"`
	VehicleUpdated   bool     `json:"vehicle_updated"`
	InsuranceUpdated bool     `json:"insurance_updated"`
	CreatedEntries   []string `json:"created_catalog_entries,omitempty"`
}

// SearchResult is the paginated response of the search endpoints.
type SearchResult struct {
	Vehicles   []Summary `json:"vehicles"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
