package services

import (
	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/cache"
	"github.com/2741538125/sky-takeout/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DishService struct {
	DB          *gorm.DB
	Repo        *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
	Cache       cache.Invalidator
	Log         *logrus.Logger
}

func NewDishService(db *gorm.DB, repo *repository.DishRepository, setmealRepo *repository.SetmealRepository, inv cache.Invalidator, log *logrus.Logger) *DishService {
	return &DishService{DB: db, Repo: repo, SetmealRepo: setmealRepo, Cache: inv, Log: log}
}

type DishIn struct {
	Name        string              `json:"name" binding:"required"`
	Price       int64               `json:"price" binding:"required,min=1"`
	Image       string              `json:"image"`
	Description string              `json:"description"`
	CategoryID  uint                `json:"categoryId" binding:"required"`
	Flavors     []entity.DishFlavor `json:"flavors"`
}

// Create inserts the dish together with its flavor rows.
func (s *DishService) Create(in *DishIn) (*entity.Dish, error) {
	d := &entity.Dish{
		Name:        in.Name,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Status:      entity.StatusOffSale,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, d); err != nil {
			return err
		}
		return s.Repo.InsertFlavors(tx, d.ID, in.Flavors)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(d.CategoryID)
	return d, nil
}

// Update rewrites the base row and replaces all flavor rows wholesale.
func (s *DishService) Update(id uint, in *DishIn) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		d := &entity.Dish{
			Name:        in.Name,
			Price:       in.Price,
			Image:       in.Image,
			Description: in.Description,
			CategoryID:  in.CategoryID,
		}
		d.ID = id
		if err := s.Repo.Update(tx, d); err != nil {
			return err
		}
		if err := s.Repo.DeleteFlavorsByDishIDs(tx, []uint{id}); err != nil {
			return err
		}
		return s.Repo.InsertFlavors(tx, id, in.Flavors)
	})
	if err != nil {
		return err
	}
	s.invalidate(in.CategoryID)
	return nil
}

// DeleteBatch removes dishes and their flavor rows. An on-sale dish, or a
// dish referenced by any setmeal, blocks the whole batch.
func (s *DishService) DeleteBatch(ids []uint) error {
	var categoryIDs []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		dishes, err := s.Repo.GetByIDs(tx, ids)
		if err != nil {
			return err
		}
		for _, d := range dishes {
			if d.Status == entity.StatusOnSale {
				return ErrDishOnSale
			}
			categoryIDs = append(categoryIDs, d.CategoryID)
		}

		setmealIDs, err := s.SetmealRepo.SetmealIDsByDishIDs(tx, ids)
		if err != nil {
			return err
		}
		if len(setmealIDs) > 0 {
			return ErrDishInSetmeal
		}

		if err := s.Repo.DeleteByIDs(tx, ids); err != nil {
			return err
		}
		return s.Repo.DeleteFlavorsByDishIDs(tx, ids)
	})
	if err != nil {
		return err
	}
	for _, cid := range categoryIDs {
		s.invalidate(cid)
	}
	return nil
}

// StartOrStop changes the dish availability. Taking a dish off sale forces
// every setmeal containing it off sale in the same transaction; enabling a
// dish never re-enables setmeals.
func (s *DishService) StartOrStop(id uint, status int) error {
	var categoryID uint
	cascaded := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		d, err := s.Repo.GetByID(tx, id)
		if err != nil {
			return err
		}
		categoryID = d.CategoryID

		if err := s.Repo.UpdateStatus(tx, id, status); err != nil {
			return err
		}
		if status != entity.StatusOffSale {
			return nil
		}

		// two-phase cascade: collect dependents first, then apply
		setmealIDs, err := s.SetmealRepo.SetmealIDsByDishIDs(tx, []uint{id})
		if err != nil {
			return err
		}
		if len(setmealIDs) > 0 {
			cascaded = true
			s.Log.WithFields(logrus.Fields{
				"dishId":     id,
				"setmealIds": setmealIDs,
			}).Info("cascading off-sale to setmeals")
		}
		return s.SetmealRepo.UpdateStatusByIDs(tx, setmealIDs, entity.StatusOffSale)
	})
	if err != nil {
		return err
	}
	s.invalidate(categoryID)
	if cascaded && s.Cache != nil {
		// setmeal availability changed as a side effect; 0 means whole scope
		s.Cache.Invalidate("setmeal", 0)
	}
	return nil
}

func (s *DishService) Get(id uint) (*entity.Dish, error) {
	return s.Repo.GetByIDWithFlavors(id)
}

func (s *DishService) ListByCategory(categoryID uint, onSaleOnly bool) ([]entity.Dish, error) {
	return s.Repo.ListByCategory(categoryID, onSaleOnly)
}

func (s *DishService) Page(name string, categoryID uint, status *int, page, limit int) ([]entity.Dish, int64, error) {
	return s.Repo.Page(name, categoryID, status, page, limit)
}

func (s *DishService) invalidate(categoryID uint) {
	if s.Cache != nil {
		s.Cache.Invalidate("dish", categoryID)
	}
}
