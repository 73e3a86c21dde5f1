package repository

import (
	"github.com/2741538125/sky-takeout/entity"
	"gorm.io/gorm"
)

type EmployeeRepository struct{ DB *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{DB: db} }

func (r *EmployeeRepository) FindByUsername(username string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.Where("username = ?", username).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
