package services

import (
	"testing"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/stretchr/testify/require"
)

func TestSetmealEnableBlockedByOffSaleMember(t *testing.T) {
	db := newTestDB(t)
	svc := newSetmealService(t, db)

	onSale := seedDish(t, db, "白切鸡", 3800, entity.StatusOnSale)
	offSale := seedDish(t, db, "老火汤", 2000, entity.StatusOffSale)
	m := seedSetmeal(t, db, "广式套餐", entity.StatusOffSale, onSale, offSale)

	err := svc.StartOrStop(m.ID, entity.StatusOnSale)
	var blocked *SetmealEnableBlockedError
	require.ErrorAs(t, err, &blocked)
	require.Equal(t, []string{"老火汤"}, blocked.DishNames)

	var got entity.Setmeal
	require.NoError(t, db.First(&got, m.ID).Error)
	require.Equal(t, entity.StatusOffSale, got.Status)
}

func TestSetmealEnableSucceedsWithAllMembersOnSale(t *testing.T) {
	db := newTestDB(t)
	svc := newSetmealService(t, db)

	a := seedDish(t, db, "烧鹅", 4800, entity.StatusOnSale)
	b := seedDish(t, db, "例汤", 800, entity.StatusOnSale)
	m := seedSetmeal(t, db, "烧味套餐", entity.StatusOffSale, a, b)

	require.NoError(t, svc.StartOrStop(m.ID, entity.StatusOnSale))

	var got entity.Setmeal
	require.NoError(t, db.First(&got, m.ID).Error)
	require.Equal(t, entity.StatusOnSale, got.Status)
}

func TestSetmealDeleteRejectsOnSale(t *testing.T) {
	db := newTestDB(t)
	svc := newSetmealService(t, db)

	m := seedSetmeal(t, db, "招牌套餐", entity.StatusOnSale)

	err := svc.DeleteBatch([]uint{m.ID})
	require.ErrorIs(t, err, ErrSetmealOnSale)
}

func TestSetmealDeleteRemovesMembershipRows(t *testing.T) {
	db := newTestDB(t)
	svc := newSetmealService(t, db)

	d := seedDish(t, db, "虾饺", 2200, entity.StatusOffSale)
	m := seedSetmeal(t, db, "点心套餐", entity.StatusOffSale, d)

	require.NoError(t, svc.DeleteBatch([]uint{m.ID}))

	var rows int64
	db.Model(&entity.SetmealDish{}).Where("setmeal_id = ?", m.ID).Count(&rows)
	require.Zero(t, rows)

	// member dish itself is untouched
	var got entity.Dish
	require.NoError(t, db.First(&got, d.ID).Error)
}

func TestSetmealUpdateReplacesMembershipWholesale(t *testing.T) {
	db := newTestDB(t)
	svc := newSetmealService(t, db)

	a := seedDish(t, db, "春卷", 1000, entity.StatusOnSale)
	b := seedDish(t, db, "烧卖", 1600, entity.StatusOnSale)
	m := seedSetmeal(t, db, "早茶套餐", entity.StatusOffSale, a)

	err := svc.Update(m.ID, &SetmealIn{
		Name:       "早茶套餐",
		Price:      2600,
		CategoryID: 2,
		Dishes:     []SetmealDishIn{{DishID: b.ID, Copies: 2}},
	})
	require.NoError(t, err)

	var rows []entity.SetmealDish
	require.NoError(t, db.Where("setmeal_id = ?", m.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, b.ID, rows[0].DishID)
	require.Equal(t, 2, rows[0].Copies)
	require.Equal(t, "烧卖", rows[0].Name)
}
