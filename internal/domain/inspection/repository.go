// internal/domain/inspection/repository.go
package inspection

import "context"

type Repository interface {
	Create(ctx context.Context, in *Inspection) error
	FindByFolio(ctx context.Context, folio string) (*Inspection, error)
	AppendPhoto(ctx context.Context, folio string, photoURL string, status Status) error
	UpdateStatus(ctx context.Context, in *Inspection) error
}
