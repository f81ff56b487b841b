// Package router wires the HTTP routes.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	barshandler "research_backend/internal/feature/bars/transport/handler"
	symbolhandler "research_backend/internal/feature/symbollist/transport/handler"
	"research_backend/internal/platform/http/handler"
	"research_backend/internal/platform/middleware"
)

// NewRouter builds the Gin engine with all routes mounted. The app serves a
// browser UI, so CORS is enabled; every request gets a request ID.
func NewRouter(bars *barshandler.BarsHandler, symbols *symbolhandler.SymbolHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	market := r.Group("/api/market")
	{
		// Envelope-shaped bars route
		market.GET("/bars", bars.GetBarsHandler)
		// Flat pre-envelope shape, kept while clients migrate
		market.GET("/bars/legacy", bars.GetBarsLegacyHandler)
		market.GET("/symbols", symbols.List)
		market.GET("/symbols/:code", symbols.Get)
	}

	return r
}
