// repository/review_repository.go
package repository

import (
	"servibook/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) FindByBusiness(businessID uint) ([]entity.Review, error) {
	var list []entity.Review
	err := r.DB.Preload("User").
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *ReviewRepository) Save(rev *entity.Review) error {
	return r.DB.Save(rev).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}

// Aggregate returns the average rating and review count for a business.
func (r *ReviewRepository) Aggregate(businessID uint) (float64, int, error) {
	var row struct {
		Avg   float64
		Count int
	}
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("business_id = ? AND rating >= 1", businessID).
		Scan(&row).Error
	return row.Avg, row.Count, err
}
