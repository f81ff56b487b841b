package main

import (
	"os"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"research_backend/internal/app/di"
	"research_backend/internal/app/router"
	"research_backend/internal/feature/bars/synth"
	barshandler "research_backend/internal/feature/bars/transport/handler"
	barsusecase "research_backend/internal/feature/bars/usecase"
	symbolhandler "research_backend/internal/feature/symbollist/transport/handler"
	symbolusecase "research_backend/internal/feature/symbollist/usecase"
	"research_backend/internal/platform/db"
	"research_backend/internal/platform/logging"
	infraredis "research_backend/internal/platform/redis"
)

func main() {
	logging.Setup("research-backend")

	// db (instrument directory only; bar series are never persisted)
	gdb := db.OpenDB()

	// Redis (optional: the symbol cache degrades to direct DB reads)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		logrus.Warn("Redis unavailable. Running without symbol cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				logrus.WithError(err).Error("Failed to close Redis client")
			}
		}()
	}

	// Repository
	symbolRepo := di.NewSymbolRepository(rdb, gdb)

	// Usecase
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo)
	barsUC := barsusecase.NewBarsUsecase(di.NewUpstreamClient(), synth.NewGenerator())

	// Handler
	symbolH := symbolhandler.NewSymbolHandler(symbolUC)
	barsH := barshandler.NewBarsHandler(barsUC)

	r := router.NewRouter(barsH, symbolH)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
