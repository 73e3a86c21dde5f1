package services

import (
	"fmt"
	"io"
	"testing"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Employee{}, &entity.User{},
		&entity.Category{},
		&entity.Dish{}, &entity.DishFlavor{},
		&entity.Setmeal{}, &entity.SetmealDish{},
		&entity.ShoppingCart{},
		&entity.AddressBook{},
		&entity.Order{}, &entity.OrderDetail{},
	))
	return db
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newDishService(t *testing.T, db *gorm.DB) *DishService {
	t.Helper()
	return NewDishService(db,
		repository.NewDishRepository(db),
		repository.NewSetmealRepository(db),
		nil, newTestLogger())
}

func newSetmealService(t *testing.T, db *gorm.DB) *SetmealService {
	t.Helper()
	return NewSetmealService(db,
		repository.NewSetmealRepository(db),
		repository.NewDishRepository(db),
		nil, newTestLogger())
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewDishRepository(db),
		repository.NewSetmealRepository(db))
}

// ----- fixtures -----

func seedDish(t *testing.T, db *gorm.DB, name string, price int64, status int) *entity.Dish {
	t.Helper()
	d := &entity.Dish{Name: name, Price: price, Status: status, CategoryID: 1}
	require.NoError(t, db.Create(d).Error)
	return d
}

func seedDishWithFlavors(t *testing.T, db *gorm.DB, name string, status int, flavors ...string) *entity.Dish {
	t.Helper()
	d := seedDish(t, db, name, 1000, status)
	for _, f := range flavors {
		require.NoError(t, db.Create(&entity.DishFlavor{DishID: d.ID, Name: f, Value: `["a","b"]`}).Error)
	}
	return d
}

func seedSetmeal(t *testing.T, db *gorm.DB, name string, status int, members ...*entity.Dish) *entity.Setmeal {
	t.Helper()
	m := &entity.Setmeal{Name: name, Price: 2500, Status: status, CategoryID: 2}
	require.NoError(t, db.Create(m).Error)
	for _, d := range members {
		require.NoError(t, db.Create(&entity.SetmealDish{
			SetmealID: m.ID, DishID: d.ID, Name: d.Name, Price: d.Price, Copies: 1,
		}).Error)
	}
	return m
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) *entity.AddressBook {
	t.Helper()
	a := &entity.AddressBook{UserID: userID, Consignee: "张三", Phone: "13800000000", Detail: "1 Main St"}
	require.NoError(t, db.Create(a).Error)
	return a
}

func cartLines(t *testing.T, db *gorm.DB, userID uint) []entity.ShoppingCart {
	t.Helper()
	var out []entity.ShoppingCart
	require.NoError(t, db.Where("user_id = ?", userID).Order("id").Find(&out).Error)
	return out
}
