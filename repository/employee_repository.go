// repository/employee_repository.go
package repository

import (
	"servibook/entity"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) withSlots() *gorm.DB {
	return r.DB.Preload("AllowedSlots", func(db *gorm.DB) *gorm.DB {
		return db.Order("employee_slots.position ASC")
	})
}

func (r *EmployeeRepository) Create(e *entity.Employee) error {
	return r.DB.Create(e).Error
}

func (r *EmployeeRepository) FindByID(id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.withSlots().First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByBusiness(businessID uint, includeInactive bool) ([]entity.Employee, error) {
	q := r.withSlots().Where("business_id = ?", businessID)
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var list []entity.Employee
	err := q.Find(&list).Error
	return list, err
}

func (r *EmployeeRepository) Update(employeeID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Employee{}).Where("id = ?", employeeID).Updates(updates).Error
}

func (r *EmployeeRepository) Delete(employeeID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("employee_id = ?", employeeID).
			Delete(&entity.EmployeeSlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Employee{}, employeeID).Error
	})
}

// ReplaceAllowedSlots swaps the employee's full allow-list.
func (r *EmployeeRepository) ReplaceAllowedSlots(employeeID uint, slots []entity.EmployeeSlot) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("employee_id = ?", employeeID).
			Delete(&entity.EmployeeSlot{}).Error; err != nil {
			return err
		}
		for i := range slots {
			slots[i].ID = 0
			slots[i].EmployeeID = employeeID
			slots[i].Position = i
			if err := tx.Create(&slots[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
