package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"research_backend/internal/feature/symbollist/domain"
	"research_backend/internal/feature/symbollist/domain/entity"
	"research_backend/internal/feature/symbollist/usecase"
)

// ErrDB is the sentinel shared between mocks and expectations.
var ErrDB = errors.New("database error")

// mockSymbolRepository is a mock implementation of SymbolRepository.
type mockSymbolRepository struct {
	ListActiveFunc      func(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodesFunc func(ctx context.Context) ([]string, error)
	FindByCodeFunc      func(ctx context.Context, code string) (*entity.Symbol, error)
}

func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, errors.New("ListActiveFunc is not implemented")
}

func (m *mockSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	if m.ListActiveCodesFunc != nil {
		return m.ListActiveCodesFunc(ctx)
	}
	return nil, errors.New("ListActiveCodesFunc is not implemented")
}

func (m *mockSymbolRepository) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, errors.New("FindByCodeFunc is not implemented")
}

func TestSymbolUsecase_ListActiveSymbols(t *testing.T) {
	t.Parallel()

	expected := []entity.Symbol{
		{ID: 1, Code: "SPY", Name: "SPDR S&P 500 ETF Trust", Market: "NYSE Arca", RefPrice: 580.0, IsActive: true, SortKey: 1},
	}

	tests := []struct {
		name        string
		mockFn      func(ctx context.Context) ([]entity.Symbol, error)
		expected    []entity.Symbol
		expectedErr error
	}{
		{
			name: "success",
			mockFn: func(ctx context.Context) ([]entity.Symbol, error) {
				return expected, nil
			},
			expected: expected,
		},
		{
			name: "repository error passes through",
			mockFn: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, ErrDB
			},
			expectedErr: ErrDB,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{ListActiveFunc: tt.mockFn})

			out, err := uc.ListActiveSymbols(context.Background())

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if !reflect.DeepEqual(out, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, out)
			}
		})
	}
}

func TestSymbolUsecase_GetSymbol(t *testing.T) {
	t.Parallel()

	spy := &entity.Symbol{ID: 1, Code: "SPY", Name: "SPDR S&P 500 ETF Trust", Market: "NYSE Arca", RefPrice: 580.0, IsActive: true, SortKey: 1}

	tests := []struct {
		name        string
		code        string
		mockFn      func(ctx context.Context, code string) (*entity.Symbol, error)
		expected    *entity.Symbol
		expectedErr error
	}{
		{
			name: "success",
			code: "SPY",
			mockFn: func(ctx context.Context, code string) (*entity.Symbol, error) {
				return spy, nil
			},
			expected: spy,
		},
		{
			name: "not found passes through",
			code: "NOPE",
			mockFn: func(ctx context.Context, code string) (*entity.Symbol, error) {
				return nil, domain.ErrSymbolNotFound
			},
			expectedErr: domain.ErrSymbolNotFound,
		},
		{
			name: "repository error passes through",
			code: "SPY",
			mockFn: func(ctx context.Context, code string) (*entity.Symbol, error) {
				return nil, ErrDB
			},
			expectedErr: ErrDB,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotCode string
			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{
				FindByCodeFunc: func(ctx context.Context, code string) (*entity.Symbol, error) {
					gotCode = code
					return tt.mockFn(ctx, code)
				},
			})

			out, err := uc.GetSymbol(context.Background(), tt.code)

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if gotCode != tt.code {
				t.Errorf("expected code %q passed to repository, got %q", tt.code, gotCode)
			}
			if !reflect.DeepEqual(out, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, out)
			}
		})
	}
}
