package services

import (
	"errors"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	Repo        *repository.CartRepository
	DishRepo    *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, dishRepo *repository.DishRepository, setmealRepo *repository.SetmealRepository) *CartService {
	return &CartService{DB: db, Repo: repo, DishRepo: dishRepo, SetmealRepo: setmealRepo}
}

// CartLineIn identifies one dish or one setmeal; exactly one id is set.
// DishFlavor is the customer's flavor choice, stored for display but not
// part of the line identity.
type CartLineIn struct {
	DishID     *uint  `json:"dishId"`
	SetmealID  *uint  `json:"setmealId"`
	DishFlavor string `json:"dishFlavor"`
}

func (in *CartLineIn) valid() bool {
	return (in.DishID != nil) != (in.SetmealID != nil)
}

var errBadCartLine = errors.New("exactly one of dishId and setmealId must be set")

// Add merges into the existing line for (user, dish-or-setmeal id) by
// incrementing its number, keeping the stored snapshot fields untouched.
// When no line exists, current catalog name/image/price are captured and a
// new line inserted with number 1.
func (s *CartService) Add(userID uint, in *CartLineIn) error {
	if !in.valid() {
		return errBadCartLine
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.add(tx, userID, in)
	})
}

// add is the transactional body of Add, taking the caller's tx so a replay
// of several lines can run as a single unit. The merge is a relative
// increment in SQL rather than a write of the value read here.
func (s *CartService) add(tx *gorm.DB, userID uint, in *CartLineIn) error {
	line, err := s.Repo.FindLine(tx, userID, in.DishID, in.SetmealID)
	if err == nil {
		return s.Repo.IncrementNumber(tx, line.ID, 1)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row := &entity.ShoppingCart{
		UserID:     userID,
		DishID:     in.DishID,
		SetmealID:  in.SetmealID,
		DishFlavor: in.DishFlavor,
		Number:     1,
	}
	if in.DishID != nil {
		d, err := s.DishRepo.GetByID(tx, *in.DishID)
		if err != nil {
			return err
		}
		row.Name, row.Image, row.Amount = d.Name, d.Image, d.Price
	} else {
		m, err := s.SetmealRepo.GetByID(tx, *in.SetmealID)
		if err != nil {
			return err
		}
		row.Name, row.Image, row.Amount = m.Name, m.Image, m.Price
	}
	return s.Repo.Insert(tx, row)
}

// Sub decrements the matching line, deleting it when the number reaches 0.
func (s *CartService) Sub(userID uint, in *CartLineIn) error {
	if !in.valid() {
		return errBadCartLine
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.Repo.FindLine(tx, userID, in.DishID, in.SetmealID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		if err != nil {
			return err
		}
		affected, err := s.Repo.DecrementNumberGuard(tx, line.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return s.Repo.DeleteLine(tx, line.ID)
		}
		return nil
	})
}

func (s *CartService) List(userID uint) ([]entity.ShoppingCart, error) {
	return s.Repo.ListByUser(userID)
}

func (s *CartService) Clean(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteByUser(tx, userID)
	})
}
