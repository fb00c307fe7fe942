package vehicle

// internal/domain/vehicle/entity.go
import "time"

// Vehicle represents one registered vehicle. The serial (NIV/chassis number)
// is the immutable natural key; ID is the database surrogate. A vehicle row
// must already exist before it can be modified: this flow never creates one.
type Vehicle struct {
	ID            int64     `json:"id" db:"id_vehiculo"`
	Serial        string    `json:"numero_serie" db:"numero_serie"`
	ConcessionID  int64     `json:"id_concesion" db:"id_concesion"`
	Year          int       `json:"modelo_anio" db:"modelo_anio"`
	Passengers    int       `json:"pasajeros" db:"pasajeros"`
	Cylinders     int       `json:"cilindros" db:"cilindros"`
	ClassID       int64     `json:"id_clase" db:"id_clase"`
	TypeID        int64     `json:"id_tipo" db:"id_tipo"`
	MakeID        int64     `json:"id_marca" db:"id_marca"`
	SubmodelID    int64     `json:"id_submarca" db:"id_submarca"`
	VersionID     int64     `json:"id_version" db:"id_version"`
	UseID         int64     `json:"id_uso" db:"id_uso"`
	FuelID        int64     `json:"id_combustible" db:"id_combustible"`
	OriginID      int64     `json:"id_origen" db:"id_origen"`
	ColorID       int64     `json:"id_color" db:"id_color"`
	CategoryID    int64     `json:"id_categoria" db:"id_categoria"`
	PlateTypeID   int64     `json:"id_tipo_placa" db:"id_tipo_placa"`
	ServiceID     int64     `json:"id_servicio" db:"id_servicio"`
	EngineNumber  string    `json:"numero_motor" db:"numero_motor"`
	Doors         int       `json:"puertas" db:"puertas"`
	PreviousPlate string    `json:"placa_anterior" db:"placa_anterior"`
	AssignedPlate string    `json:"placa_asignada" db:"placa_asignada"`
	WeightClass   string    `json:"clasificacion_peso" db:"clasificacion_peso"`
	Capacity      float64   `json:"capacidad_carga" db:"capacidad_carga"`
	VehicularKey  string    `json:"clave_vehicular" db:"clave_vehicular"`
	UpdatedAt     time.Time `json:"updated_at" db:"fecha_actualizacion"`
}

// Summary is the trimmed view returned by the search endpoints.
type Summary struct {
	ID            int64     `json:"id"`
	Serial        string    `json:"numero_serie"`
	ConcessionID  int64     `json:"id_concesion"`
	AssignedPlate string    `json:"placa_asignada"`
	Year          int       `json:"modelo_anio"`
	MakeLabel     string    `json:"marca"`
	SubmodelLabel string    `json:"submarca"`
	ColorLabel    string    `json:"color"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Record carries the resolved catalog ids plus scalar attributes that the
// updater writes onto an existing vehicle row.
type Record struct {
	Year          int
	Passengers    int
	Cylinders     int
	ClassID       int64
	TypeID        int64
	MakeID        int64
	SubmodelID    int64
	VersionID     int64
	UseID         int64
	FuelID        int64
	OriginID      int64
	ColorID       int64
	CategoryID    int64
	PlateTypeID   int64
	ServiceID     int64
	EngineNumber  string
	Doors         int
	PreviousPlate string
	AssignedPlate string
	WeightClass   string
	Capacity      float64
	VehicularKey  string
}
