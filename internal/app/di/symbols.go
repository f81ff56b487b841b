package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"research_backend/internal/feature/symbollist/adapters"
	"research_backend/internal/feature/symbollist/usecase"
	"research_backend/internal/platform/cache"
)

// NewSymbolRepository creates the instrument-directory repository, wrapped
// with Redis caching when a client is available. A nil rdb means the
// decorator passes straight through to the database.
func NewSymbolRepository(rdb *redis.Client, db *gorm.DB) usecase.SymbolRepository {
	repo := adapters.NewSymbolRepository(db)
	return cache.NewCachingSymbolRepository(rdb, 5*time.Minute, repo, "symbols")
}
