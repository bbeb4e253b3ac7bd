package configs

import (
	"servibook/entity"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		Log.Fatal("failed to connect database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	err := db.AutoMigrate(
		&entity.User{}, &entity.OwnerApplication{},
		&entity.Category{}, &entity.CategoryRequest{},
		&entity.Business{}, &entity.BusinessPhoto{}, &entity.Schedule{},
		&entity.Employee{}, &entity.EmployeeSlot{},
		&entity.Appointment{},
		&entity.Review{},
	)
	if err != nil {
		Log.Fatal("auto migration failed", zap.Error(err))
	}
}
