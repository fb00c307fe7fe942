package modification

import (
	"context"
	"fmt"

	"transporte-service/internal/domain/audit"
	"transporte-service/internal/domain/catalog"
	"transporte-service/internal/domain/insurance"
	"transporte-service/internal/domain/vehicle"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies pgx.Tx through embedding; only Commit/Rollback are used by
// the workflow under test.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
	begins   int
}

func (db *fakeDB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	db.begins++
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

// fakeCatalogRepo keeps catalogs in maps. Tipo entries are keyed by
// (class id, label) to preserve the class scoping.
type fakeCatalogRepo struct {
	entries map[catalog.Kind]map[string]int64
	types   map[string]int64
	nextID  int64
	creates int
	err     error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		entries: map[catalog.Kind]map[string]int64{},
		types:   map[string]int64{},
		nextID:  100,
	}
}

func (r *fakeCatalogRepo) seed(kind catalog.Kind, label string, id int64) {
	if r.entries[kind] == nil {
		r.entries[kind] = map[string]int64{}
	}
	r.entries[kind][label] = id
}

func (r *fakeCatalogRepo) ResolveWithTx(ctx context.Context, tx pgx.Tx, kind catalog.Kind, label string) (int64, bool, error) {
	if r.err != nil {
		return 0, false, r.err
	}
	if id, ok := r.entries[kind][label]; ok {
		return id, false, nil
	}
	r.nextID++
	r.creates++
	r.seed(kind, label, r.nextID)
	return r.nextID, true, nil
}

func (r *fakeCatalogRepo) ResolveTypeWithTx(ctx context.Context, tx pgx.Tx, classID int64, label string) (int64, bool, error) {
	if r.err != nil {
		return 0, false, r.err
	}
	key := fmt.Sprintf("%d/%s", classID, label)
	if id, ok := r.types[key]; ok {
		return id, false, nil
	}
	r.nextID++
	r.creates++
	r.types[key] = r.nextID
	return r.nextID, true, nil
}

func (r *fakeCatalogRepo) FindIDByLabel(ctx context.Context, kind catalog.Kind, label string) (int64, error) {
	if id, ok := r.entries[kind][label]; ok {
		return id, nil
	}
	return 0, xerrors.ErrNotFound
}

func (r *fakeCatalogRepo) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	var entries []catalog.Entry
	for label, id := range r.entries[kind] {
		entries = append(entries, catalog.Entry{ID: id, Label: label})
	}
	return entries, nil
}

type fakeCategoryRepo struct {
	byKey map[string]*catalog.Category
}

func (r *fakeCategoryRepo) FindByVehicularKey(ctx context.Context, tx pgx.Tx, key string) (*catalog.Category, error) {
	if c, ok := r.byKey[key]; ok {
		return c, nil
	}
	return nil, xerrors.ErrNotFound
}

type fakeVehicleRepo struct {
	serials map[string]int64
	updated *vehicle.Record
	err     error
}

func (r *fakeVehicleRepo) UpdateBySerialWithTx(ctx context.Context, tx pgx.Tx, serial string, rec *vehicle.Record) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	id, ok := r.serials[serial]
	if !ok {
		return 0, fmt.Errorf("vehicle %q: %w", serial, xerrors.ErrNotFound)
	}
	r.updated = rec
	return id, nil
}

func (r *fakeVehicleRepo) FindBySerial(ctx context.Context, serial string) (*vehicle.Vehicle, error) {
	if id, ok := r.serials[serial]; ok {
		return &vehicle.Vehicle{ID: id, Serial: serial}, nil
	}
	return nil, xerrors.ErrNotFound
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

type fakeAuditRepo struct {
	entries []*audit.Entry
	err     error
}

func (r *fakeAuditRepo) CreateWithTx(ctx context.Context, tx pgx.Tx, entry *audit.Entry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

type fakeInsuranceRepo struct {
	upserts []*insurance.Policy
	err     error
}

func (r *fakeInsuranceRepo) Upsert(ctx context.Context, policy *insurance.Policy) error {
	if r.err != nil {
		return r.err
	}
	r.upserts = append(r.upserts, policy)
	return nil
}

func (r *fakeInsuranceRepo) FindByConcession(ctx context.Context, concessionID int64) (*insurance.Policy, error) {
	return nil, xerrors.ErrNotFound
}

type fakeUserResolver struct {
	actors map[int64]audit.ActingUser
}

func (r *fakeUserResolver) ResolveActingUser(ctx context.Context, userID int64) (audit.ActingUser, error) {
	if userID <= 0 {
		return audit.ActingUser{}, nil
	}
	if actor, ok := r.actors[userID]; ok {
		return actor, nil
	}
	return audit.ActingUser{UserID: userID}, nil
}

type fakeInvalidator struct {
	kinds []catalog.Kind
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, kind catalog.Kind) error {
	f.kinds = append(f.kinds, kind)
	return nil
}
