// repository/business_repository.go
package repository

import (
	"servibook/entity"

	"gorm.io/gorm"
)

type BusinessRepository struct {
	DB *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

func (r *BusinessRepository) preloaded() *gorm.DB {
	return r.DB.
		Preload("Categories").
		Preload("Schedules").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("business_photos.position ASC")
		})
}

func (r *BusinessRepository) Create(b *entity.Business) error {
	return r.DB.Create(b).Error
}

func (r *BusinessRepository) FindByID(id uint) (*entity.Business, error) {
	var b entity.Business
	if err := r.preloaded().First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) FindByOwnerID(ownerID uint) (*entity.Business, error) {
	var b entity.Business
	if err := r.preloaded().Where("owner_id = ?", ownerID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) FindPublished() ([]entity.Business, error) {
	var list []entity.Business
	err := r.preloaded().Where("status = ?", entity.BusinessPublished).Find(&list).Error
	return list, err
}

func (r *BusinessRepository) Save(b *entity.Business) error {
	return r.DB.Save(b).Error
}

func (r *BusinessRepository) UpdateStatus(businessID uint, status string) error {
	return r.DB.Model(&entity.Business{}).Where("id = ?", businessID).
		Update("status", status).Error
}

func (r *BusinessRepository) UpdateRating(businessID uint, avg float64, count int) error {
	return r.DB.Model(&entity.Business{}).Where("id = ?", businessID).
		Updates(map[string]any{"avg_rating": avg, "reviews_count": count}).Error
}

// ReplaceSchedule swaps the full 7-day timetable atomically.
func (r *BusinessRepository) ReplaceSchedule(businessID uint, days []entity.Schedule) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("business_id = ?", businessID).
			Delete(&entity.Schedule{}).Error; err != nil {
			return err
		}
		for i := range days {
			days[i].ID = 0
			days[i].BusinessID = businessID
			if err := tx.Create(&days[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplacePhotos swaps the ordered gallery.
func (r *BusinessRepository) ReplacePhotos(businessID uint, urls []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("business_id = ?", businessID).
			Delete(&entity.BusinessPhoto{}).Error; err != nil {
			return err
		}
		for i, u := range urls {
			photo := entity.BusinessPhoto{BusinessID: businessID, URL: u, Position: i}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BusinessRepository) SetCategories(b *entity.Business, categories []entity.Category) error {
	return r.DB.Model(b).Association("Categories").Replace(categories)
}
