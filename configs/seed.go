package configs

import (
	"log"

	"github.com/2741538125/sky-takeout/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first merchant console account.
func SeedAdmin() error {
	username := getEnv("ADMIN_USERNAME", "admin")
	pass := getEnv("ADMIN_PASSWORD", "")
	if pass == "" {
		log.Println("skip seeding admin: missing ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Employee{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Employee{
		Username: username,
		Name:     "Admin",
		Password: string(hash),
		Status:   1,
	}
	return db.Create(&admin).Error
}

// SeedLookups creates the default catalog categories.
func SeedLookups() error {
	seeds := []entity.Category{
		{Type: entity.CategoryTypeDish, Name: "热菜", Sort: 1, Status: 1},
		{Type: entity.CategoryTypeDish, Name: "凉菜", Sort: 2, Status: 1},
		{Type: entity.CategoryTypeDish, Name: "饮品", Sort: 3, Status: 1},
		{Type: entity.CategoryTypeSetmeal, Name: "商务套餐", Sort: 4, Status: 1},
	}
	for _, c := range seeds {
		if err := db.Where(entity.Category{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}
	return nil
}
