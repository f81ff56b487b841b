// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"research_backend/internal/feature/symbollist/domain/entity"
	"research_backend/internal/feature/symbollist/usecase"
)

// CachingSymbolRepository decorates a SymbolRepository with Redis caching.
// The instrument directory is slow-moving, so short-TTL caching is safe here;
// bar series are never cached anywhere (always-fresh-or-fallback).
type CachingSymbolRepository struct {
	inner     usecase.SymbolRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SymbolRepository = (*CachingSymbolRepository)(nil)

// NewCachingSymbolRepository decorates a SymbolRepository with Redis caching.
// If ttl is 0 or negative, it defaults to 5 minutes. If namespace is empty,
// it uses "symbols". A nil Redis client disables caching entirely.
func NewCachingSymbolRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SymbolRepository, namespace string) *CachingSymbolRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "symbols"
	}
	return &CachingSymbolRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListActive retrieves the active symbols, checking the cache first and
// falling back to the underlying repository.
func (c *CachingSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if c.rdb == nil {
		return c.inner.ListActive(ctx)
	}

	key := fmt.Sprintf("%s:active", c.namespace)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Symbol
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupted entry: drop it and fall through to the repository
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// Best effort: a failed cache write never fails the request
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ListActiveCodes retrieves the active symbol codes, cache first.
func (c *CachingSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	if c.rdb == nil {
		return c.inner.ListActiveCodes(ctx)
	}

	key := fmt.Sprintf("%s:active:codes", c.namespace)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []string
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListActiveCodes(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByCode retrieves one symbol, cache first. Only successful lookups are
// cached; errors (including ErrSymbolNotFound) always pass through so a newly
// activated instrument becomes visible without waiting out a negative entry.
func (c *CachingSymbolRepository) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	if c.rdb == nil {
		return c.inner.FindByCode(ctx, code)
	}

	key := fmt.Sprintf("%s:code:%s", c.namespace, strings.ToUpper(strings.TrimSpace(code)))

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Symbol
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
