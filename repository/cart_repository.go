package repository

import (
	"github.com/2741538125/sky-takeout/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindLine looks up the single line matching (user, dish-or-setmeal id).
// Exactly one of dishID/setmealID is non-nil.
func (r *CartRepository) FindLine(tx *gorm.DB, userID uint, dishID, setmealID *uint) (*entity.ShoppingCart, error) {
	q := tx.Where("user_id = ?", userID)
	if dishID != nil {
		q = q.Where("dish_id = ?", *dishID)
	} else {
		q = q.Where("setmeal_id = ?", *setmealID)
	}
	var line entity.ShoppingCart
	if err := q.First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) Insert(tx *gorm.DB, line *entity.ShoppingCart) error {
	return tx.Create(line).Error
}

// IncrementNumber bumps the line relative to its stored value, so two
// concurrent merges both land instead of the later write absorbing the
// earlier one.
func (r *CartRepository) IncrementNumber(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&entity.ShoppingCart{}).Where("id = ?", id).
		Update("number", gorm.Expr("number + ?", delta)).Error
}

// DecrementNumberGuard decrements only while more than one unit remains;
// RowsAffected == 0 means the line is down to its last unit.
func (r *CartRepository) DecrementNumberGuard(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Model(&entity.ShoppingCart{}).Where("id = ? AND number > 1", id).
		Update("number", gorm.Expr("number - 1"))
	return res.RowsAffected, res.Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.ShoppingCart{}, id).Error
}

func (r *CartRepository) ListByUser(userID uint) ([]entity.ShoppingCart, error) {
	var out []entity.ShoppingCart
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *CartRepository) ListByUserTx(tx *gorm.DB, userID uint) ([]entity.ShoppingCart, error) {
	var out []entity.ShoppingCart
	err := tx.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *CartRepository) DeleteByUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.ShoppingCart{}).Error
}
