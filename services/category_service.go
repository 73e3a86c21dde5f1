package services

import (
	"errors"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/repository"
)

var ErrCategoryNotEmpty = errors.New("category still has dishes or setmeals")

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List(categoryType int) ([]entity.Category, error) {
	return s.Repo.List(categoryType)
}

func (s *CategoryService) Create(c *entity.Category) error {
	return s.Repo.Create(c)
}

// Delete refuses to remove a category that still groups catalog entries.
func (s *CategoryService) Delete(id uint) error {
	dishes, err := s.Repo.CountDishes(id)
	if err != nil {
		return err
	}
	setmeals, err := s.Repo.CountSetmeals(id)
	if err != nil {
		return err
	}
	if dishes > 0 || setmeals > 0 {
		return ErrCategoryNotEmpty
	}
	return s.Repo.Delete(id)
}
