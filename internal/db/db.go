package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bellasalon/booking-api/internal/config"
	"github.com/bellasalon/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedServices(db)

	return db
}

// seedServices popula o catálogo apenas no primeiro boot; depois disso o
// catálogo é somente leitura.
func seedServices(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count services: %v", err)
	}
	if count > 0 {
		return
	}

	services := []models.Service{
		{Name: "Haircut", DurationMin: 30, Price: 25.0},
		{Name: "Beard Trim", DurationMin: 15, Price: 12.0},
		{Name: "Hair Coloring", DurationMin: 90, Price: 80.0},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Fatalf("failed to seed services: %v", err)
	}
	log.Println("Seeded services")
}
