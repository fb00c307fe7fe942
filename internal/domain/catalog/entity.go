package catalog

import "time"

// Kind identifies one of the reference catalogs of the vehicle database.
// The string value matches the URL segment used by the catalog endpoints.
type Kind string

const (
	KindClass     Kind = "clase"
	KindType      Kind = "tipo"
	KindUse       Kind = "uso"
	KindColor     Kind = "color"
	KindFuel      Kind = "combustible"
	KindOrigin    Kind = "origen"
	KindMake      Kind = "marca"
	KindSubmodel  Kind = "submarca"
	KindVersion   Kind = "version"
	KindPlateType Kind = "tipo_placa"
)

// Kinds lists every catalog in resolution order. Class comes first because
// Type rows are scoped by their Class id.
var Kinds = []Kind{
	KindClass, KindType, KindUse, KindColor, KindFuel,
	KindOrigin, KindMake, KindSubmodel, KindVersion, KindPlateType,
}

// IsValid reports whether k names a known catalog.
func (k Kind) IsValid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Entry is one row of a reference catalog: a stable integer id for a stored
// text label. Lookups are exact-match against the stored text.
type Entry struct {
	ID        int64     `json:"id" db:"id"`
	Label     string    `json:"descripcion" db:"descripcion"`
	ClassID   int64     `json:"id_clase,omitempty" db:"id_clase"` // only set for the tipo catalog
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Category maps a vehicular classification key to a category id. Unlike the
// plain catalogs, a missing category is not an error: the vehicle is left
// unclassified (id 0).
type Category struct {
	ID           int64  `json:"id" db:"id_categoria"`
	VehicularKey string `json:"clave_vehicular" db:"clave_vehicular"`
	Description  string `json:"descripcion" db:"descripcion"`
}

// CategoryUnclassified is the category id used when no mapping exists for a
// vehicular key.
const CategoryUnclassified int64 = 0
