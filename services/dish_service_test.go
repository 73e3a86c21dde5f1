package services

import (
	"testing"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/stretchr/testify/require"
)

func TestDeleteBatchRejectsOnSaleDish(t *testing.T) {
	db := newTestDB(t)
	svc := newDishService(t, db)

	d := seedDish(t, db, "宫保鸡丁", 2800, entity.StatusOnSale)

	err := svc.DeleteBatch([]uint{d.ID})
	require.ErrorIs(t, err, ErrDishOnSale)

	var count int64
	db.Model(&entity.Dish{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestDeleteBatchRejectsDishReferencedBySetmeal(t *testing.T) {
	db := newTestDB(t)
	svc := newDishService(t, db)

	d := seedDish(t, db, "米饭", 300, entity.StatusOffSale)
	seedSetmeal(t, db, "商务套餐A", entity.StatusOffSale, d)

	// referenced dishes are protected regardless of either status
	err := svc.DeleteBatch([]uint{d.ID})
	require.ErrorIs(t, err, ErrDishInSetmeal)
}

func TestDeleteBatchRemovesDishAndFlavors(t *testing.T) {
	db := newTestDB(t)
	svc := newDishService(t, db)

	d := seedDishWithFlavors(t, db, "麻婆豆腐", entity.StatusOffSale, "辣度", "温度")
	other := seedDishWithFlavors(t, db, "鱼香肉丝", entity.StatusOffSale, "辣度")

	require.NoError(t, svc.DeleteBatch([]uint{d.ID}))

	var dishes int64
	db.Model(&entity.Dish{}).Count(&dishes)
	require.EqualValues(t, 1, dishes)

	var flavors []entity.DishFlavor
	require.NoError(t, db.Find(&flavors).Error)
	require.Len(t, flavors, 1)
	require.Equal(t, other.ID, flavors[0].DishID)
}

func TestDeleteBatchIsAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newDishService(t, db)

	ok := seedDish(t, db, "凉拌黄瓜", 1200, entity.StatusOffSale)
	bad := seedDish(t, db, "北京烤鸭", 9900, entity.StatusOnSale)

	err := svc.DeleteBatch([]uint{ok.ID, bad.ID})
	require.ErrorIs(t, err, ErrDishOnSale)

	// the deletable dish must survive too
	var count int64
	db.Model(&entity.Dish{}).Count(&count)
	require.EqualValues(t, 2, count)
}

func TestStartOrStopCascadesOffSaleToSetmeals(t *testing.T) {
	db := newTestDB(t)
	svc := newDishService(t, db)

	d := seedDish(t, db, "水煮鱼", 5800, entity.StatusOnSale)
	m := seedSetmeal(t, db, "双人套餐", entity.StatusOnSale, d)
	unrelated := seedSetmeal(t, db, "单人套餐", entity.StatusOnSale)

	require.NoError(t, svc.StartOrStop(d.ID, entity.StatusOffSale))

	var got entity.Setmeal
	require.NoError(t, db.First(&got, m.ID).Error)
	require.Equal(t, entity.StatusOffSale, got.Status)

	got = entity.Setmeal{}
	require.NoError(t, db.First(&got, unrelated.ID).Error)
	require.Equal(t, entity.StatusOnSale, got.Status)
}

func TestStartOrStopEnableDoesNotReenableSetmeals(t *testing.T) {
	db := newTestDB(t)
	svc := newDishService(t, db)

	d := seedDish(t, db, "回锅肉", 3200, entity.StatusOffSale)
	m := seedSetmeal(t, db, "川味套餐", entity.StatusOffSale, d)

	require.NoError(t, svc.StartOrStop(d.ID, entity.StatusOnSale))

	var got entity.Setmeal
	require.NoError(t, db.First(&got, m.ID).Error)
	require.Equal(t, entity.StatusOffSale, got.Status)
}

func TestUpdateReplacesFlavorsWholesale(t *testing.T) {
	db := newTestDB(t)
	svc := newDishService(t, db)

	d := seedDishWithFlavors(t, db, "酸辣粉", entity.StatusOffSale, "辣度")

	err := svc.Update(d.ID, &DishIn{
		Name:       "酸辣粉",
		Price:      1500,
		CategoryID: 1,
		Flavors: []entity.DishFlavor{
			{Name: "分量", Value: `["小份","大份"]`},
			{Name: "加醋", Value: `["是","否"]`},
		},
	})
	require.NoError(t, err)

	var flavors []entity.DishFlavor
	require.NoError(t, db.Where("dish_id = ?", d.ID).Order("id").Find(&flavors).Error)
	require.Len(t, flavors, 2)
	require.Equal(t, "分量", flavors[0].Name)
	require.Equal(t, "加醋", flavors[1].Name)
}
