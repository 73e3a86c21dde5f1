package services

import (
	"errors"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/repository"
	"gorm.io/gorm"
)

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(repo *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: repo}
}

func (s *AddressService) List(userID uint) ([]entity.AddressBook, error) {
	return s.Repo.ListByUser(userID)
}

func (s *AddressService) Get(userID, id uint) (*entity.AddressBook, error) {
	a, err := s.Repo.GetForUser(s.Repo.DB, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAddressNotFound
	}
	return a, err
}

func (s *AddressService) Create(a *entity.AddressBook) error {
	return s.Repo.Create(a)
}

func (s *AddressService) Update(a *entity.AddressBook) error {
	return s.Repo.Update(a)
}

func (s *AddressService) SetDefault(userID, id uint) error {
	err := s.Repo.SetDefault(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAddressNotFound
	}
	return err
}

func (s *AddressService) Delete(userID, id uint) error {
	return s.Repo.Delete(userID, id)
}
