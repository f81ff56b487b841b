// Package handler provides the HTTP handlers for the bars feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"research_backend/internal/api"
	"research_backend/internal/feature/bars/domain"
	"research_backend/internal/feature/bars/domain/entity"
	"research_backend/internal/feature/bars/transport/http/dto"
	"research_backend/internal/feature/bars/usecase"
)

// BarsUsecase defines the gateway operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type BarsUsecase interface {
	GetBars(ctx context.Context, symbol, timeframe string, limit int) (usecase.Result, error)
}

// BarsHandler serves bar series requests from the UI.
type BarsHandler struct {
	uc BarsUsecase
}

// NewBarsHandler creates a new BarsHandler with the given usecase.
func NewBarsHandler(uc BarsUsecase) *BarsHandler {
	return &BarsHandler{uc: uc}
}

// GetBarsHandler handles GET /api/market/bars and responds in the envelope
// shape. A synthetic fallback is still a 200: the mock flag and warning in
// meta are the only observable difference from live data.
//
// Example: GET /api/market/bars?symbol=SPY&timeframe=1d&limit=100
func (h *BarsHandler) GetBarsHandler(c *gin.Context) {
	symbol := c.Query("symbol")
	timeframe := c.DefaultQuery("timeframe", usecase.DefaultTimeframe)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultLimit)))

	result, err := h.uc.GetBars(c.Request.Context(), symbol, timeframe, limit)
	if err != nil {
		status, env := encodeGetBarsError(err)
		c.JSON(status, env)
		return
	}

	status, env := api.EncodeSuccess(dto.BarsData{Bars: toBarDTOs(result.Bars)}, api.SuccessOptions{
		IsMock: result.Mock,
		Source: result.Source,
	})
	c.JSON(status, env)
}

// GetBarsLegacyHandler handles GET /api/market/bars/legacy in the flat
// pre-envelope shape. Deprecated: remove once the chart panel reads the
// envelope route.
func (h *BarsHandler) GetBarsLegacyHandler(c *gin.Context) {
	symbol := c.Query("symbol")
	timeframe := c.DefaultQuery("timeframe", usecase.DefaultTimeframe)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultLimit)))

	result, err := h.uc.GetBars(c.Request.Context(), symbol, timeframe, limit)
	if err != nil {
		if errors.Is(err, domain.ErrSymbolRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := dto.LegacyBarsResponse{
		Bars: toBarDTOs(result.Bars),
		Mock: result.Mock,
	}
	if result.Mock {
		out.Warning = api.MockDataWarning
	}
	c.JSON(http.StatusOK, out)
}

// encodeGetBarsError maps gateway errors onto the envelope error taxonomy.
// Only caller mistakes and internal faults arrive here; upstream
// unavailability is absorbed by the fallback path and never reaches this
// function.
func encodeGetBarsError(err error) (int, api.Envelope) {
	if errors.Is(err, domain.ErrSymbolRequired) {
		return api.EncodeError(api.CodeInvalidParameters, "symbol query parameter is required", api.ErrorOptions{
			Details: map[string]any{"parameter": "symbol"},
		})
	}
	return api.EncodeError(api.CodeInternalError, err.Error(), api.ErrorOptions{})
}

// toBarDTOs converts domain bars to their wire representation.
func toBarDTOs(bars []entity.Bar) []dto.Bar {
	out := make([]dto.Bar, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.Bar{
			Time:   b.Time.UTC().Format(time.RFC3339),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return out
}
