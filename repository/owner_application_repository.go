// repository/owner_application_repository.go
package repository

import (
	"servibook/entity"

	"gorm.io/gorm"
)

type OwnerApplicationRepository struct {
	DB *gorm.DB
}

func NewOwnerApplicationRepository(db *gorm.DB) *OwnerApplicationRepository {
	return &OwnerApplicationRepository{DB: db}
}

func (r *OwnerApplicationRepository) Create(app *entity.OwnerApplication) error {
	return r.DB.Create(app).Error
}

func (r *OwnerApplicationRepository) FindByID(id uint) (*entity.OwnerApplication, error) {
	var app entity.OwnerApplication
	if err := r.DB.Preload("User").First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *OwnerApplicationRepository) FindByStatus(status string) ([]entity.OwnerApplication, error) {
	var apps []entity.OwnerApplication
	err := r.DB.Preload("User").Where("status = ?", status).Find(&apps).Error
	return apps, err
}

func (r *OwnerApplicationRepository) CountPendingByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OwnerApplication{}).
		Where("user_id = ? AND status = ?", userID, entity.RequestPending).
		Count(&count).Error
	return count, err
}

// ApproveAndPromote marks the application approved and promotes the user to
// owner in one transaction.
func (r *OwnerApplicationRepository) ApproveAndPromote(app *entity.OwnerApplication) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(app).Update("status", entity.RequestApproved).Error; err != nil {
			return err
		}
		return tx.Model(&entity.User{}).
			Where("id = ?", app.UserID).
			Update("role", entity.RoleOwner).Error
	})
}

func (r *OwnerApplicationRepository) UpdateStatus(app *entity.OwnerApplication, status string) error {
	return r.DB.Model(app).Update("status", status).Error
}
