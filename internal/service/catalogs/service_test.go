package catalogs

import (
	"context"
	"testing"
	"time"

	"transporte-service/internal/domain/catalog"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type countingRepo struct {
	lists   int
	entries []catalog.Entry
}

func (r *countingRepo) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	r.lists++
	return r.entries, nil
}

func (r *countingRepo) FindIDByLabel(ctx context.Context, kind catalog.Kind, label string) (int64, error) {
	return 0, xerrors.ErrNotFound
}

func (r *countingRepo) ResolveWithTx(ctx context.Context, tx pgx.Tx, kind catalog.Kind, label string) (int64, bool, error) {
	return 0, false, nil
}

func (r *countingRepo) ResolveTypeWithTx(ctx context.Context, tx pgx.Tx, classID int64, label string) (int64, bool, error) {
	return 0, false, nil
}

func TestMemoryCacheExpires(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Now()
	cache.now = func() time.Time { return now }

	if err := cache.Set(context.Background(), "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, _ := cache.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := cache.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss after expiry")
	}
}

func TestListCachesAndInvalidates(t *testing.T) {
	repo := &countingRepo{entries: []catalog.Entry{{ID: 7, Label: "Azul"}}}
	svc := NewService(repo, NewMemoryCache(), time.Minute, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entries, err := svc.List(ctx, catalog.KindColor)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(entries) != 1 || entries[0].ID != 7 {
			t.Fatalf("unexpected entries: %+v", entries)
		}
	}
	if repo.lists != 1 {
		t.Fatalf("expected one repository read, got %d", repo.lists)
	}

	if err := svc.Invalidate(ctx, catalog.KindColor); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err := svc.List(ctx, catalog.KindColor); err != nil {
		t.Fatalf("list after invalidate: %v", err)
	}
	if repo.lists != 2 {
		t.Fatalf("expected re-read after invalidation, got %d reads", repo.lists)
	}
}

func TestListRejectsUnknownCatalog(t *testing.T) {
	svc := NewService(&countingRepo{}, NewMemoryCache(), time.Minute, zap.NewNop())
	if _, err := svc.List(context.Background(), catalog.Kind("nope")); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid-input error, got %v", err)
	}
}
