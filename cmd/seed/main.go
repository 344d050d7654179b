package main

import (
	"os"

	"github.com/optomarket/optomarket-api/internal/config"
	"github.com/optomarket/optomarket-api/internal/logger"
	"github.com/optomarket/optomarket-api/internal/models"

	"github.com/shopspring/decimal"
)

// Seeds a small demo catalog: a category tree, two suppliers with prices,
// and a banner. Safe to re-run; it bails when categories already exist.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer func() { _ = logger.Z().Sync() }()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
	}); err != nil {
		logger.Errorw("database_init_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("database_migrate_failed", "error", err)
		os.Exit(1)
	}

	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		logger.Infow("seed_skipped_data_present", "categories", count)
		return
	}

	if err := seed(); err != nil {
		logger.Errorw("seed_failed", "error", err)
		os.Exit(1)
	}
	logger.Infow("seed_completed")
}

func seed() error {
	electronics := models.Category{Name: "Electronics", SortOrder: 10}
	if err := models.DB.Create(&electronics).Error; err != nil {
		return err
	}
	phones := models.Category{Name: "Phones", ParentID: &electronics.ID, SortOrder: 5}
	household := models.Category{Name: "Household", SortOrder: 8}
	if err := models.DB.Create(&phones).Error; err != nil {
		return err
	}
	if err := models.DB.Create(&household).Error; err != nil {
		return err
	}

	techTrade := models.Supplier{
		Name:          "TechTrade LLC",
		City:          "Tashkent",
		Rating:        decimal.NewFromFloat(4.6),
		ContactNumber: "+998901234567",
		Categories:    []models.Category{electronics, phones},
	}
	homePlus := models.Supplier{
		Name:          "HomePlus",
		City:          "Samarkand",
		Rating:        decimal.NewFromFloat(4.2),
		ContactNumber: "+998907654321",
		Categories:    []models.Category{household},
	}
	if err := models.DB.Create(&techTrade).Error; err != nil {
		return err
	}
	if err := models.DB.Create(&homePlus).Error; err != nil {
		return err
	}

	phone := models.Product{
		Name:       "Smartphone X10",
		Article:    "PH-X10",
		City:       "Tashkent",
		CategoryID: &phones.ID,
		Characteristics: models.JSON{
			"memory": "128GB",
			"color":  "black",
		},
	}
	kettle := models.Product{
		Name:       "Electric Kettle 1.7L",
		Article:    "HK-17",
		City:       "Samarkand",
		CategoryID: &household.ID,
	}
	if err := models.DB.Create(&phone).Error; err != nil {
		return err
	}
	if err := models.DB.Create(&kettle).Error; err != nil {
		return err
	}

	prices := []models.SupplierPrice{
		{
			SupplierID:    techTrade.ID,
			ProductID:     phone.ID,
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
			DeliveryDays:  3,
			DeliveryLabel: "3 days",
		},
		{
			SupplierID:    homePlus.ID,
			ProductID:     kettle.ID,
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(24.50)),
			DeliveryDays:  7,
			DeliveryLabel: "up to a week",
		},
	}
	for i := range prices {
		if err := models.DB.Create(&prices[i]).Error; err != nil {
			return err
		}
	}

	banner := models.Banner{
		Title:      "New electronics arrivals",
		CategoryID: &electronics.ID,
		SortOrder:  10,
	}
	return models.DB.Create(&banner).Error
}
