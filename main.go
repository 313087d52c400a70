package main

import (
	"fmt"
	"log"

	"garagepro-backend/config"
	"garagepro-backend/models"
	"garagepro-backend/repository/gormstore"
	"garagepro-backend/routes"
	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer config.CloseDB(db)

	if err := migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := seed(db, cfg); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	store := gormstore.New(db)

	monitor := services.NewStockMonitor(store, logger, cfg.LowStockThreshold, cfg.StockScanSchedule)
	if err := monitor.Start(); err != nil {
		logger.Fatal("stock monitor failed to start", zap.Error(err))
	}
	defer monitor.Stop()

	r := routes.SetupRouter(cfg, store, logger)
	printRoutes(r)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.VehicleBrand{},
		&models.VehicleType{},
		&models.Vehicle{},
		&models.Status{},
		&models.Part{},
		&models.Booking{},
		&models.RepairItem{},
		&models.Review{},
	)
}

// seed inserts the fixed status vocabulary and, when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured, a bootstrap admin account.
func seed(db *gorm.DB, cfg config.Config) error {
	for _, s := range models.Statuses() {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error; err != nil {
			return err
		}
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
