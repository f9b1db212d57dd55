// Seeds the lookup vocabularies and a starter taxonomy. Safe to run more
// than once; existing rows are left alone.
package main

import (
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog-service/domain/models"
	"catalog-service/infrastructure/postgres"
	"catalog-service/pkg/config"
	"catalog-service/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.DefaultConfig()); err != nil {
		os.Exit(1)
	}

	db, err := postgres.NewDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("Failed to migrate", "error", err)
		os.Exit(1)
	}

	if err := seedSizes(db); err != nil {
		logger.Error("Failed to seed sizes", "error", err)
		os.Exit(1)
	}
	if err := seedColors(db); err != nil {
		logger.Error("Failed to seed colors", "error", err)
		os.Exit(1)
	}
	if err := seedDensities(db); err != nil {
		logger.Error("Failed to seed densities", "error", err)
		os.Exit(1)
	}

	logger.Info("Seed completed")
}

func seedSizes(db *gorm.DB) error {
	sizes := []models.Size{
		{ID: uuid.New(), Name: "XS", DisplayName: "Extra Small", SortOrder: 1},
		{ID: uuid.New(), Name: "S", DisplayName: "Small", SortOrder: 2},
		{ID: uuid.New(), Name: "M", DisplayName: "Medium", SortOrder: 3},
		{ID: uuid.New(), Name: "L", DisplayName: "Large", SortOrder: 4},
		{ID: uuid.New(), Name: "XL", DisplayName: "Extra Large", SortOrder: 5},
		{ID: uuid.New(), Name: "XXL", DisplayName: "2X Large", SortOrder: 6},
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&sizes).Error
}

func seedColors(db *gorm.DB) error {
	colors := []models.Color{
		{ID: uuid.New(), Name: "white", DisplayName: "White", HexCode: "#FFFFFF", SortOrder: 1},
		{ID: uuid.New(), Name: "black", DisplayName: "Black", HexCode: "#000000", SortOrder: 2},
		{ID: uuid.New(), Name: "red", DisplayName: "Red", HexCode: "#FF0000", SortOrder: 3},
		{ID: uuid.New(), Name: "green", DisplayName: "Green", HexCode: "#00FF00", SortOrder: 4},
		{ID: uuid.New(), Name: "blue", DisplayName: "Blue", HexCode: "#0000FF", SortOrder: 5},
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&colors).Error
}

func seedDensities(db *gorm.DB) error {
	densities := []models.Density{
		{ID: uuid.New(), Value: 130, Description: "Lightweight jersey", SortOrder: 1},
		{ID: uuid.New(), Value: 160, Description: "Standard tee weight", SortOrder: 2},
		{ID: uuid.New(), Value: 240, Description: "Heavy cotton", SortOrder: 3},
		{ID: uuid.New(), Value: 320, Description: "Fleece", SortOrder: 4},
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "value"}},
		DoNothing: true,
	}).Create(&densities).Error
}
