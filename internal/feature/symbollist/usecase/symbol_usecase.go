// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"

	"research_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for symbol (instrument)
// data. Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	// FindByCode resolves one active symbol; unknown codes yield
	// domain.ErrSymbolNotFound.
	FindByCode(ctx context.Context, code string) (*entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols in display order.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// GetSymbol resolves a single instrument by code.
func (u *SymbolUsecase) GetSymbol(ctx context.Context, code string) (*entity.Symbol, error) {
	return u.repo.FindByCode(ctx, code)
}
