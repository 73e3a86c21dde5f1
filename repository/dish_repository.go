package repository

import (
	"github.com/2741538125/sky-takeout/entity"
	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

func (r *DishRepository) GetByID(tx *gorm.DB, id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := tx.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) GetByIDWithFlavors(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.Preload("Flavors").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) GetByIDs(tx *gorm.DB, ids []uint) ([]entity.Dish, error) {
	var out []entity.Dish
	err := tx.Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *DishRepository) ListByCategory(categoryID uint, onSaleOnly bool) ([]entity.Dish, error) {
	q := r.DB.Preload("Flavors").Where("category_id = ?", categoryID)
	if onSaleOnly {
		q = q.Where("status = ?", entity.StatusOnSale)
	}
	var out []entity.Dish
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *DishRepository) Page(name string, categoryID uint, status *int, page, limit int) ([]entity.Dish, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	q := r.DB.Model(&entity.Dish{})
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Dish
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

func (r *DishRepository) Create(tx *gorm.DB, d *entity.Dish) error {
	return tx.Create(d).Error
}

func (r *DishRepository) Update(tx *gorm.DB, d *entity.Dish) error {
	return tx.Model(&entity.Dish{}).Where("id = ?", d.ID).Updates(map[string]any{
		"name":        d.Name,
		"price":       d.Price,
		"image":       d.Image,
		"description": d.Description,
		"category_id": d.CategoryID,
	}).Error
}

func (r *DishRepository) UpdateStatus(tx *gorm.DB, id uint, status int) error {
	return tx.Model(&entity.Dish{}).Where("id = ?", id).Update("status", status).Error
}

func (r *DishRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	return tx.Where("id IN ?", ids).Delete(&entity.Dish{}).Error
}

// ----- flavor rows (owned by the dish, replaced wholesale) -----

func (r *DishRepository) InsertFlavors(tx *gorm.DB, dishID uint, flavors []entity.DishFlavor) error {
	if len(flavors) == 0 {
		return nil
	}
	for i := range flavors {
		flavors[i].ID = 0
		flavors[i].DishID = dishID
	}
	return tx.Create(&flavors).Error
}

func (r *DishRepository) DeleteFlavorsByDishIDs(tx *gorm.DB, dishIDs []uint) error {
	return tx.Where("dish_id IN ?", dishIDs).Delete(&entity.DishFlavor{}).Error
}

func (r *DishRepository) FlavorsByDishID(dishID uint) ([]entity.DishFlavor, error) {
	var out []entity.DishFlavor
	err := r.DB.Where("dish_id = ?", dishID).Order("id").Find(&out).Error
	return out, err
}
