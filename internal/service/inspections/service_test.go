package inspections

import (
	"context"
	"testing"

	"transporte-service/internal/domain/inspection"
	"transporte-service/internal/domain/vehicle"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type fakeInspectionRepo struct {
	byFolio map[string]*inspection.Inspection
}

func (r *fakeInspectionRepo) Create(ctx context.Context, in *inspection.Inspection) error {
	r.byFolio[in.Folio] = in
	return nil
}

func (r *fakeInspectionRepo) FindByFolio(ctx context.Context, folio string) (*inspection.Inspection, error) {
	in, ok := r.byFolio[folio]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	copied := *in
	return &copied, nil
}

func (r *fakeInspectionRepo) AppendPhoto(ctx context.Context, folio string, photoURL string, status inspection.Status) error {
	in, ok := r.byFolio[folio]
	if !ok {
		return xerrors.ErrNotFound
	}
	in.Photos = append(in.Photos, photoURL)
	in.Status = status
	return nil
}

func (r *fakeInspectionRepo) UpdateStatus(ctx context.Context, in *inspection.Inspection) error {
	stored, ok := r.byFolio[in.Folio]
	if !ok {
		return xerrors.ErrNotFound
	}
	stored.Status = in.Status
	stored.ClosedAt = in.ClosedAt
	return nil
}

type fakeVehicleRepo struct {
	serials map[string]int64
}

func (r *fakeVehicleRepo) FindBySerial(ctx context.Context, serial string) (*vehicle.Vehicle, error) {
	if id, ok := r.serials[serial]; ok {
		return &vehicle.Vehicle{ID: id, Serial: serial}, nil
	}
	return nil, xerrors.ErrNotFound
}

func (r *fakeVehicleRepo) UpdateBySerialWithTx(ctx context.Context, tx pgx.Tx, serial string, rec *vehicle.Record) (int64, error) {
	return 0, xerrors.ErrNotFound
}

func (r *fakeVehicleRepo) SearchByConcession(ctx context.Context, concessionID int64, offset, limit int) ([]vehicle.Summary, int64, error) {
	return nil, 0, nil
}

func (r *fakeVehicleRepo) SearchByPlate(ctx context.Context, plate string, offset, limit int) ([]vehicle.Summary, int64, error) {
	return nil, 0, nil
}

func (r *fakeVehicleRepo) SearchAll(ctx context.Context, offset, limit int) ([]vehicle.Summary, int64, error) {
	return nil, 0, nil
}

func newService() (*Service, *fakeInspectionRepo) {
	repo := &fakeInspectionRepo{byFolio: map[string]*inspection.Inspection{}}
	vehicles := &fakeVehicleRepo{serials: map[string]int64{"NIV12345": 812}}
	return NewService(repo, vehicles, zap.NewNop()), repo
}

func TestInspectionLifecycle(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	in, err := svc.Create(ctx, 9, &inspection.CreateInspectionRequest{Serial: "NIV12345"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if in.Folio == "" || in.Status != inspection.StatusOpen || in.VehicleID != 812 {
		t.Fatalf("unexpected inspection: %+v", in)
	}

	in, err = svc.AttachPhoto(ctx, in.Folio, "https://fotos.example/1.jpg")
	if err != nil {
		t.Fatalf("attach photo: %v", err)
	}
	if in.Status != inspection.StatusPhotos || len(in.Photos) != 1 {
		t.Fatalf("unexpected state after photo: %+v", in)
	}

	if _, err := svc.Print(ctx, in.Folio); err != nil {
		t.Fatalf("print: %v", err)
	}
	in, err = svc.Finalize(ctx, in.Folio)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if in.Status != inspection.StatusClosed || in.ClosedAt == nil {
		t.Fatalf("expected closed inspection, got %+v", in)
	}

	if _, err := svc.AttachPhoto(ctx, in.Folio, "https://fotos.example/2.jpg"); !xerrors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("expected conflict attaching photo to closed inspection, got %v", err)
	}
	if got := repo.byFolio[in.Folio]; len(got.Photos) != 1 {
		t.Fatalf("closed inspection gained a photo: %+v", got)
	}
}

func TestCreateRequiresExistingVehicle(t *testing.T) {
	svc, _ := newService()
	if _, err := svc.Create(context.Background(), 9, &inspection.CreateInspectionRequest{Serial: "UNKNOWN"}); !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestPrintRequiresPhotos(t *testing.T) {
	svc, _ := newService()
	in, err := svc.Create(context.Background(), 9, &inspection.CreateInspectionRequest{Serial: "NIV12345"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Print(context.Background(), in.Folio); !xerrors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("expected conflict printing without photos, got %v", err)
	}
}
