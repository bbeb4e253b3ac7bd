package configs

import (
	"servibook/entity"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		Log.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		Log.Info("admin already exists", zap.String("email", email))
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Administrator",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the starter business categories.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{"Barbershop", "Beauty Salon", "Spa", "Dental Clinic", "Workshop"} {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
