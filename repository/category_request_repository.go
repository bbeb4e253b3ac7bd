// repository/category_request_repository.go
package repository

import (
	"servibook/entity"

	"gorm.io/gorm"
)

type CategoryRequestRepository struct {
	DB *gorm.DB
}

func NewCategoryRequestRepository(db *gorm.DB) *CategoryRequestRepository {
	return &CategoryRequestRepository{DB: db}
}

func (r *CategoryRequestRepository) Create(req *entity.CategoryRequest) error {
	return r.DB.Create(req).Error
}

func (r *CategoryRequestRepository) FindByID(id uint) (*entity.CategoryRequest, error) {
	var req entity.CategoryRequest
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *CategoryRequestRepository) FindPending() ([]entity.CategoryRequest, error) {
	var list []entity.CategoryRequest
	err := r.DB.Preload("Owner").
		Where("status = ?", entity.RequestPending).
		Find(&list).Error
	return list, err
}

// ApproveAndCreateCategory approves the request and inserts the category if
// it does not exist yet, in one transaction.
func (r *CategoryRequestRepository) ApproveAndCreateCategory(req *entity.CategoryRequest) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(req).Update("status", entity.RequestApproved).Error; err != nil {
			return err
		}
		return tx.FirstOrCreate(&cat, entity.Category{Name: req.CategoryName}).Error
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
