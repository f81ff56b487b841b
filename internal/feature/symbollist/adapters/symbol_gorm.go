// Package adapters provides the repository implementations for the
// symbollist feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"research_backend/internal/feature/symbollist/domain"
	"research_backend/internal/feature/symbollist/domain/entity"
	"research_backend/internal/feature/symbollist/usecase"
)

// symbolGorm is the gorm-backed implementation of SymbolRepository.
type symbolGorm struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolGorm)(nil)

// NewSymbolRepository creates a new symbolGorm repository over the given
// database handle.
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// ListActive returns all active symbols in display order. Code is the
// tie-breaker so rows sharing a sort_key come back in a stable order.
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC, code ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// ListActiveCodes returns only the codes of active symbols in display order.
func (r *symbolGorm) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("sort_key ASC, code ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// FindByCode looks up one active symbol by its code, case-insensitively.
// Inactive or unknown codes map to domain.ErrSymbolNotFound.
func (r *symbolGorm) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	var symbol entity.Symbol
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND code = ?", true, strings.ToUpper(strings.TrimSpace(code))).
		First(&symbol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSymbolNotFound
	}
	if err != nil {
		return nil, err
	}
	return &symbol, nil
}
