package services

import (
	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/cache"
	"github.com/2741538125/sky-takeout/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SetmealService struct {
	DB       *gorm.DB
	Repo     *repository.SetmealRepository
	DishRepo *repository.DishRepository
	Cache    cache.Invalidator
	Log      *logrus.Logger
}

func NewSetmealService(db *gorm.DB, repo *repository.SetmealRepository, dishRepo *repository.DishRepository, inv cache.Invalidator, log *logrus.Logger) *SetmealService {
	return &SetmealService{DB: db, Repo: repo, DishRepo: dishRepo, Cache: inv, Log: log}
}

type SetmealDishIn struct {
	DishID uint `json:"dishId" binding:"required"`
	Copies int  `json:"copies" binding:"required,min=1"`
}

type SetmealIn struct {
	Name        string          `json:"name" binding:"required"`
	Price       int64           `json:"price" binding:"required,min=1"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	Dishes      []SetmealDishIn `json:"setmealDishes" binding:"required,min=1"`
}

// Create inserts the setmeal with its membership rows, snapshotting each
// member dish's name and price.
func (s *SetmealService) Create(in *SetmealIn) (*entity.Setmeal, error) {
	m := &entity.Setmeal{
		Name:        in.Name,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Status:      entity.StatusOffSale,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, m); err != nil {
			return err
		}
		rows, err := s.membershipRows(tx, in.Dishes)
		if err != nil {
			return err
		}
		return s.Repo.InsertDishes(tx, m.ID, rows)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(m.CategoryID)
	return m, nil
}

// Update rewrites the base row and replaces the membership rows wholesale
// (delete all, then reinsert).
func (s *SetmealService) Update(id uint, in *SetmealIn) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		m := &entity.Setmeal{
			Name:        in.Name,
			Price:       in.Price,
			Image:       in.Image,
			Description: in.Description,
			CategoryID:  in.CategoryID,
		}
		m.ID = id
		if err := s.Repo.Update(tx, m); err != nil {
			return err
		}
		if err := s.Repo.DeleteDishesBySetmealIDs(tx, []uint{id}); err != nil {
			return err
		}
		rows, err := s.membershipRows(tx, in.Dishes)
		if err != nil {
			return err
		}
		return s.Repo.InsertDishes(tx, id, rows)
	})
	if err != nil {
		return err
	}
	s.invalidate(in.CategoryID)
	return nil
}

func (s *SetmealService) membershipRows(tx *gorm.DB, in []SetmealDishIn) ([]entity.SetmealDish, error) {
	rows := make([]entity.SetmealDish, 0, len(in))
	for _, md := range in {
		d, err := s.DishRepo.GetByID(tx, md.DishID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, entity.SetmealDish{
			DishID: d.ID,
			Name:   d.Name,
			Price:  d.Price,
			Copies: md.Copies,
		})
	}
	return rows, nil
}

// DeleteBatch removes setmeals and their membership rows. Any on-sale
// setmeal blocks the whole batch; membership rows carry no independent
// on-sale flag and follow their owner.
func (s *SetmealService) DeleteBatch(ids []uint) error {
	var categoryIDs []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			m, err := s.Repo.GetByID(tx, id)
			if err != nil {
				return err
			}
			if m.Status == entity.StatusOnSale {
				return ErrSetmealOnSale
			}
			categoryIDs = append(categoryIDs, m.CategoryID)
		}
		if err := s.Repo.DeleteByIDs(tx, ids); err != nil {
			return err
		}
		return s.Repo.DeleteDishesBySetmealIDs(tx, ids)
	})
	if err != nil {
		return err
	}
	for _, cid := range categoryIDs {
		s.invalidate(cid)
	}
	return nil
}

// StartOrStop changes the setmeal availability. Enabling requires every
// member dish to be on sale ("setmeal sellable" implies "all members
// sellable"); the violating dishes are named in the error.
func (s *SetmealService) StartOrStop(id uint, status int) error {
	var categoryID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		m, err := s.Repo.GetByID(tx, id)
		if err != nil {
			return err
		}
		categoryID = m.CategoryID

		if status == entity.StatusOnSale {
			members, err := s.Repo.DishesBySetmealID(tx, id)
			if err != nil {
				return err
			}
			dishIDs := make([]uint, 0, len(members))
			for _, md := range members {
				dishIDs = append(dishIDs, md.DishID)
			}
			dishes, err := s.DishRepo.GetByIDs(tx, dishIDs)
			if err != nil {
				return err
			}
			var blocked []string
			for _, d := range dishes {
				if d.Status == entity.StatusOffSale {
					blocked = append(blocked, d.Name)
				}
			}
			if len(blocked) > 0 {
				return &SetmealEnableBlockedError{DishNames: blocked}
			}
		}

		return s.Repo.UpdateStatus(tx, id, status)
	})
	if err != nil {
		return err
	}
	s.invalidate(categoryID)
	return nil
}

func (s *SetmealService) Get(id uint) (*entity.Setmeal, error) {
	return s.Repo.GetByIDWithDishes(id)
}

func (s *SetmealService) ListByCategory(categoryID uint, onSaleOnly bool) ([]entity.Setmeal, error) {
	return s.Repo.ListByCategory(categoryID, onSaleOnly)
}

func (s *SetmealService) Page(name string, categoryID uint, status *int, page, limit int) ([]entity.Setmeal, int64, error) {
	return s.Repo.Page(name, categoryID, status, page, limit)
}

func (s *SetmealService) invalidate(categoryID uint) {
	if s.Cache != nil {
		s.Cache.Invalidate("setmeal", categoryID)
	}
}
