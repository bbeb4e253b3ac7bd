// repository/category_repository.go
package repository

import (
	"servibook/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var list []entity.Category
	err := r.DB.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *CategoryRepository) FindByName(name string) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.Where("name = ?", name).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) FindByNames(names []string) ([]entity.Category, error) {
	var list []entity.Category
	err := r.DB.Where("name IN ?", names).Find(&list).Error
	return list, err
}
