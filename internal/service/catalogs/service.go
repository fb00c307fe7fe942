package catalogs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"transporte-service/internal/domain/catalog"
	xerrors "transporte-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// Service serves catalog listings through an injected TTL cache instead of
// process-wide maps, so entries refresh on expiry or on explicit
// invalidation after a find-or-create wrote a new row.
type Service struct {
	repo   catalog.Repository
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewService(repo catalog.Repository, cache Cache, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

func cacheKey(kind catalog.Kind) string {
	return "catalogo:" + string(kind)
}

// List returns every entry of a catalog, cached.
func (s *Service) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown catalog %q: %w", kind, xerrors.ErrInvalidInput)
	}

	key := cacheKey(kind)
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		// Cache trouble must not take the endpoint down.
		s.logger.Warn("catalog cache read failed", zap.String("catalog", string(kind)), zap.Error(err))
	} else if ok {
		var entries []catalog.Entry
		if err := json.Unmarshal(raw, &entries); err == nil {
			return entries, nil
		}
		s.logger.Warn("dropping corrupt catalog cache entry", zap.String("catalog", string(kind)))
		_ = s.cache.Delete(ctx, key)
	}

	entries, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(entries); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn("catalog cache write failed", zap.String("catalog", string(kind)), zap.Error(err))
		}
	}
	return entries, nil
}

// Invalidate drops the cached listing of one catalog.
func (s *Service) Invalidate(ctx context.Context, kind catalog.Kind) error {
	return s.cache.Delete(ctx, cacheKey(kind))
}
