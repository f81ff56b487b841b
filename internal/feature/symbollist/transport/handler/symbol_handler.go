// Package handler provides the HTTP handlers for the symbollist feature.
package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"research_backend/internal/api"
	"research_backend/internal/feature/symbollist/domain"
	"research_backend/internal/feature/symbollist/domain/entity"
	"research_backend/internal/feature/symbollist/transport/http/dto"
)

// SymbolUsecase defines the symbol operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
	GetSymbol(ctx context.Context, code string) (*entity.Symbol, error)
}

// SymbolHandler serves instrument-directory requests.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List handles GET /api/market/symbols and returns the active instruments in
// the envelope shape. Directory data is authoritative, so meta.isMock stays
// false here.
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		status, env := api.EncodeError(api.CodeInternalError, "failed to load symbol directory", api.ErrorOptions{})
		c.JSON(status, env)
		return
	}

	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{
			Code:     s.Code,
			Name:     s.Name,
			Market:   s.Market,
			RefPrice: s.RefPrice,
		})
	}
	status, env := api.EncodeSuccess(dto.SymbolListData{Symbols: out}, api.SuccessOptions{Source: "directory"})
	c.JSON(status, env)
}

// Get handles GET /api/market/symbols/:code. Unknown or inactive codes come
// back as a NOT_FOUND envelope rather than an empty body.
func (h *SymbolHandler) Get(c *gin.Context) {
	code := c.Param("code")

	s, err := h.uc.GetSymbol(c.Request.Context(), code)
	if err != nil {
		var status int
		var env api.Envelope
		if errors.Is(err, domain.ErrSymbolNotFound) {
			status, env = api.EncodeError(api.CodeNotFound, "unknown symbol", api.ErrorOptions{
				Details: map[string]any{"code": code},
			})
		} else {
			status, env = api.EncodeError(api.CodeInternalError, "failed to load symbol", api.ErrorOptions{})
		}
		c.JSON(status, env)
		return
	}

	item := dto.SymbolItem{
		Code:     s.Code,
		Name:     s.Name,
		Market:   s.Market,
		RefPrice: s.RefPrice,
	}
	status, env := api.EncodeSuccess(dto.SymbolData{Symbol: item}, api.SuccessOptions{Source: "directory"})
	c.JSON(status, env)
}
