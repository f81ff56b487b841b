// Package db opens and migrates the application database.
package db

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"research_backend/internal/feature/symbollist/domain/entity"
)

// OpenDB opens the sqlite database at DB_PATH (default "research_backend.db")
// and prepares the schema. Migration and seeding run by default so a fresh
// checkout works with no setup; set RUN_MIGRATIONS=false when the schema is
// managed out of band. The instrument directory is the only persisted data;
// bar series are never stored.
func OpenDB() *gorm.DB {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "research_backend.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("DB connect failed: %v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") != "false" {
		if err := migrateAndSeed(db); err != nil {
			logrus.Fatalf("failed to prepare schema: %v", err)
		}
	}

	return db
}

// migrateAndSeed migrates the schema and seeds the instrument directory when
// it is empty.
func migrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Symbol{}); err != nil {
		return err
	}
	return seedSymbols(db)
}

// seedSymbols inserts the default instrument directory on first run.
func seedSymbols(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Symbol{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []entity.Symbol{
		{Code: "SPY", Name: "SPDR S&P 500 ETF Trust", Market: "NYSE Arca", RefPrice: 580.0, IsActive: true, SortKey: 1},
		{Code: "QQQ", Name: "Invesco QQQ Trust", Market: "NASDAQ", RefPrice: 500.0, IsActive: true, SortKey: 2},
		{Code: "DIA", Name: "SPDR Dow Jones Industrial Average ETF", Market: "NYSE Arca", RefPrice: 430.0, IsActive: true, SortKey: 3},
		{Code: "IWM", Name: "iShares Russell 2000 ETF", Market: "NYSE Arca", RefPrice: 225.0, IsActive: true, SortKey: 4},
		{Code: "AAPL", Name: "Apple Inc.", Market: "NASDAQ", RefPrice: 235.0, IsActive: true, SortKey: 5},
		{Code: "MSFT", Name: "Microsoft Corporation", Market: "NASDAQ", RefPrice: 430.0, IsActive: true, SortKey: 6},
		{Code: "GOOG", Name: "Alphabet Inc.", Market: "NASDAQ", RefPrice: 180.0, IsActive: true, SortKey: 7},
		{Code: "AMZN", Name: "Amazon.com, Inc.", Market: "NASDAQ", RefPrice: 210.0, IsActive: true, SortKey: 8},
		{Code: "NVDA", Name: "NVIDIA Corporation", Market: "NASDAQ", RefPrice: 140.0, IsActive: true, SortKey: 9},
		{Code: "META", Name: "Meta Platforms, Inc.", Market: "NASDAQ", RefPrice: 590.0, IsActive: true, SortKey: 10},
		{Code: "TSLA", Name: "Tesla, Inc.", Market: "NASDAQ", RefPrice: 260.0, IsActive: true, SortKey: 11},
	}
	return db.Create(&seed).Error
}
