package services

import (
	"errors"
	"strings"
	"time"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/repository"
	"github.com/2741538125/sky-takeout/utils"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles customer registration/login and the merchant console
// (employee) login, issuing JWTs for both.
type AuthService struct {
	userRepo     *repository.UserRepository
	employeeRepo *repository.EmployeeRepository
	jwtSecret    string
	jwtTTL       time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, employeeRepo *repository.EmployeeRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtSecret:    secret,
		jwtTTL:       ttl,
	}
}

func (s *AuthService) Register(email, password, name, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Phone:    strings.TrimSpace(phone),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, "user", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) EmployeeLogin(username, password string) (string, *entity.Employee, error) {
	emp, err := s.employeeRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(emp.ID, "employee", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, emp, nil
}
