package repository

import (
	"github.com/2741538125/sky-takeout/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetByID(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByNumber(tx *gorm.DB, number string) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Where("number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Update(tx *gorm.DB, id uint, fields map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateStatusGuard moves the order from one status to another only if it is
// still in the expected source status; RowsAffected == 0 means the order was
// missing or already somewhere else.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// UpdateGuard applies fields only while the order is still in the expected
// status; a transition that raced ahead leaves RowsAffected at 0 and the
// row untouched.
func (r *OrderRepository) UpdateGuard(tx *gorm.DB, orderID uint, from entity.OrderStatus, fields map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Page(userID uint, status *entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	q := r.DB.Model(&entity.Order{})
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Order
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

// ----- order detail rows (written once, never mutated) -----

func (r *OrderRepository) InsertDetails(tx *gorm.DB, details []entity.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	return tx.Create(&details).Error
}

func (r *OrderRepository) DetailsByOrderID(orderID uint) ([]entity.OrderDetail, error) {
	var out []entity.OrderDetail
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&out).Error
	return out, err
}
