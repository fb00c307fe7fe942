package search

import (
	"context"
	"testing"

	"transporte-service/internal/domain/vehicle"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// recordingRepo notes which search variant was dispatched.
type recordingRepo struct {
	called string
	offset int
	limit  int
}

func (r *recordingRepo) SearchByConcession(ctx context.Context, concessionID int64, offset, limit int) ([]vehicle.Summary, int64, error) {
	r.called, r.offset, r.limit = "concession", offset, limit
	return []vehicle.Summary{{ConcessionID: concessionID}}, 1, nil
}

func (r *recordingRepo) SearchByPlate(ctx context.Context, plate string, offset, limit int) ([]vehicle.Summary, int64, error) {
	r.called, r.offset, r.limit = "plate", offset, limit
	return []vehicle.Summary{{AssignedPlate: plate}}, 1, nil
}

func (r *recordingRepo) SearchAll(ctx context.Context, offset, limit int) ([]vehicle.Summary, int64, error) {
	r.called, r.offset, r.limit = "all", offset, limit
	return nil, 45, nil
}

func (r *recordingRepo) UpdateBySerialWithTx(ctx context.Context, tx pgx.Tx, serial string, rec *vehicle.Record) (int64, error) {
	return 0, xerrors.ErrNotFound
}

func (r *recordingRepo) FindBySerial(ctx context.Context, serial string) (*vehicle.Vehicle, error) {
	return nil, xerrors.ErrNotFound
}

func TestParseQueryVariants(t *testing.T) {
	if _, err := ParseQuery(7, "ABC-123", Page{}); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("both filters must be rejected, got %v", err)
	}

	q, err := ParseQuery(7, "", Page{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := q.(ByConcession); !ok {
		t.Fatalf("expected ByConcession, got %T", q)
	}

	q, _ = ParseQuery(0, "ABC-123", Page{})
	if _, ok := q.(ByPlate); !ok {
		t.Fatalf("expected ByPlate, got %T", q)
	}

	q, _ = ParseQuery(0, "  ", Page{})
	if _, ok := q.(All); !ok {
		t.Fatalf("expected All, got %T", q)
	}
}

func TestSearchDispatchesByVariant(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo, zap.NewNop())

	if _, err := svc.Search(context.Background(), ByConcession{ConcessionID: 7}); err != nil {
		t.Fatalf("search by concession: %v", err)
	}
	if repo.called != "concession" {
		t.Fatalf("dispatched to %q, want concession", repo.called)
	}

	if _, err := svc.Search(context.Background(), ByPlate{Plate: "ABC-123"}); err != nil {
		t.Fatalf("search by plate: %v", err)
	}
	if repo.called != "plate" {
		t.Fatalf("dispatched to %q, want plate", repo.called)
	}

	result, err := svc.Search(context.Background(), All{Page: Page{Number: 3, Size: 10}})
	if err != nil {
		t.Fatalf("search all: %v", err)
	}
	if repo.called != "all" || repo.offset != 20 || repo.limit != 10 {
		t.Fatalf("unexpected dispatch: %s offset=%d limit=%d", repo.called, repo.offset, repo.limit)
	}
	if result.TotalPages != 5 {
		t.Fatalf("expected 5 total pages for 45 rows of 10, got %d", result.TotalPages)
	}
}
