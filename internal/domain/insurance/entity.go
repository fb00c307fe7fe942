package insurance

import "time"

// Policy is the insurance record tied 1:1 to a concession. Writes are
// latest-wins: an upsert supersedes the previous policy detail instead of
// versioning it.
type Policy struct {
	ConcessionID   int64     `json:"id_concesion" db:"id_concesion"`
	Insurer        string    `json:"aseguradora" db:"aseguradora"`
	PolicyNumber   string    `json:"numero_poliza" db:"numero_poliza"`
	IssueDate      time.Time `json:"fecha_expedicion" db:"fecha_expedicion"`
	ExpirationDate time.Time `json:"fecha_vencimiento" db:"fecha_vencimiento"`
	PaymentFolio   string    `json:"folio_pago" db:"folio_pago"`
	Remarks        string    `json:"observaciones" db:"observaciones"`
	UpdatedAt      time.Time `json:"updated_at" db:"fecha_actualizacion"`
}
