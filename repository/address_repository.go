package repository

import (
	"github.com/2741538125/sky-takeout/entity"
	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) GetForUser(tx *gorm.DB, userID, id uint) (*entity.AddressBook, error) {
	var a entity.AddressBook
	if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) ListByUser(userID uint) ([]entity.AddressBook, error) {
	var out []entity.AddressBook
	err := r.DB.Where("user_id = ?", userID).Order("is_default DESC, id").Find(&out).Error
	return out, err
}

func (r *AddressRepository) Create(a *entity.AddressBook) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) Update(a *entity.AddressBook) error {
	return r.DB.Model(&entity.AddressBook{}).
		Where("id = ? AND user_id = ?", a.ID, a.UserID).
		Updates(map[string]any{
			"consignee": a.Consignee,
			"phone":     a.Phone,
			"detail":    a.Detail,
		}).Error
}

// SetDefault clears the previous default and marks the given address, as one
// transaction.
func (r *AddressRepository) SetDefault(userID, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.AddressBook{}).
			Where("user_id = ?", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		res := tx.Model(&entity.AddressBook{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *AddressRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.AddressBook{}).Error
}
