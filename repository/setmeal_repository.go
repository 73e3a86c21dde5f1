package repository

import (
	"github.com/2741538125/sky-takeout/entity"
	"gorm.io/gorm"
)

type SetmealRepository struct{ DB *gorm.DB }

func NewSetmealRepository(db *gorm.DB) *SetmealRepository { return &SetmealRepository{DB: db} }

func (r *SetmealRepository) GetByID(tx *gorm.DB, id uint) (*entity.Setmeal, error) {
	var s entity.Setmeal
	if err := tx.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SetmealRepository) GetByIDWithDishes(id uint) (*entity.Setmeal, error) {
	var s entity.Setmeal
	if err := r.DB.Preload("Dishes").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SetmealRepository) ListByCategory(categoryID uint, onSaleOnly bool) ([]entity.Setmeal, error) {
	q := r.DB.Where("category_id = ?", categoryID)
	if onSaleOnly {
		q = q.Where("status = ?", entity.StatusOnSale)
	}
	var out []entity.Setmeal
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *SetmealRepository) Page(name string, categoryID uint, status *int, page, limit int) ([]entity.Setmeal, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	q := r.DB.Model(&entity.Setmeal{})
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
	var out []entity.Setmeal
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

func (r *SetmealRepository) Create(tx *gorm.DB, s *entity.Setmeal) error {
	return tx.Create(s).Error
}

func (r *SetmealRepository) Update(tx *gorm.DB, s *entity.Setmeal) error {
	return tx.Model(&entity.Setmeal{}).Where("id = ?", s.ID).Updates(map[string]any{
		"name":        s.Name,
		"price":       s.Price,
		"image":       s.Image,
		"description": s.Description,
		"category_id": s.CategoryID,
	}).Error
}

func (r *SetmealRepository) UpdateStatus(tx *gorm.DB, id uint, status int) error {
	return tx.Model(&entity.Setmeal{}).Where("id = ?", id).Update("status", status).Error
}

func (r *SetmealRepository) UpdateStatusByIDs(tx *gorm.DB, ids []uint, status int) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Model(&entity.Setmeal{}).Where("id IN ?", ids).Update("status", status).Error
}

func (r *SetmealRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	return tx.Where("id IN ?", ids).Delete(&entity.Setmeal{}).Error
}

// ----- membership rows (owned by the setmeal, replaced wholesale) -----

// SetmealIDsByDishIDs returns every setmeal referencing any of the dishes,
// regardless of status.
func (r *SetmealRepository) SetmealIDsByDishIDs(tx *gorm.DB, dishIDs []uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.SetmealDish{}).
		Distinct("setmeal_id").
		Where("dish_id IN ?", dishIDs).
		Pluck("setmeal_id", &ids).Error
	return ids, err
}

func (r *SetmealRepository) InsertDishes(tx *gorm.DB, setmealID uint, rows []entity.SetmealDish) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ID = 0
		rows[i].SetmealID = setmealID
	}
	return tx.Create(&rows).Error
}

func (r *SetmealRepository) DeleteDishesBySetmealIDs(tx *gorm.DB, setmealIDs []uint) error {
	return tx.Where("setmeal_id IN ?", setmealIDs).Delete(&entity.SetmealDish{}).Error
}

func (r *SetmealRepository) DishesBySetmealID(tx *gorm.DB, setmealID uint) ([]entity.SetmealDish, error) {
	var out []entity.SetmealDish
	err := tx.Where("setmeal_id = ?", setmealID).Order("id").Find(&out).Error
	return out, err
}
