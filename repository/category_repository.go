package repository

import (
	"github.com/2741538125/sky-takeout/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List(categoryType int) ([]entity.Category, error) {
	q := r.DB.Model(&entity.Category{})
	if categoryType != 0 {
		q = q.Where("type = ?", categoryType)
	}
	var out []entity.Category
	err := q.Order("sort, id").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) GetByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) CountDishes(id uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Dish{}).Where("category_id = ?", id).Count(&n).Error
	return n, err
}

func (r *CategoryRepository) CountSetmeals(id uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Setmeal{}).Where("category_id = ?", id).Count(&n).Error
	return n, err
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
