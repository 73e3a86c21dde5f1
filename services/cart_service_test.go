package services

import (
	"testing"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/repository"
	"github.com/stretchr/testify/require"
)

const testUserID uint = 7

func TestAddMergesSameDishIntoOneLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	d := seedDish(t, db, "担担面", 1800, entity.StatusOnSale)

	in := &CartLineIn{DishID: &d.ID}
	require.NoError(t, svc.Add(testUserID, in))
	require.NoError(t, svc.Add(testUserID, in))

	lines := cartLines(t, db, testUserID)
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Number)
	require.Equal(t, "担担面", lines[0].Name)
	require.EqualValues(t, 1800, lines[0].Amount)
}

func TestMergesFromTheSameSnapshotBothCount(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	repo := repository.NewCartRepository(db)

	d := seedDish(t, db, "烧麦", 900, entity.StatusOnSale)
	require.NoError(t, svc.Add(testUserID, &CartLineIn{DishID: &d.ID}))

	// two merges resolved against the same read of the line must both land;
	// the increment is relative, never a write of the value that was read
	line, err := repo.FindLine(db, testUserID, &d.ID, nil)
	require.NoError(t, err)
	require.NoError(t, repo.IncrementNumber(db, line.ID, 1))
	require.NoError(t, repo.IncrementNumber(db, line.ID, 1))

	lines := cartLines(t, db, testUserID)
	require.Len(t, lines, 1)
	require.Equal(t, 3, lines[0].Number)
}

func TestAddMergesIgnoringFlavorChoice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	d := seedDish(t, db, "麻辣烫", 2200, entity.StatusOnSale)

	require.NoError(t, svc.Add(testUserID, &CartLineIn{DishID: &d.ID, DishFlavor: "微辣"}))
	require.NoError(t, svc.Add(testUserID, &CartLineIn{DishID: &d.ID, DishFlavor: "特辣"}))

	// flavor is not part of the line identity
	lines := cartLines(t, db, testUserID)
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Number)
	require.Equal(t, "微辣", lines[0].DishFlavor)
}

func TestAddSnapshotNotRefreshedOnMerge(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	d := seedDish(t, db, "小龙虾", 6800, entity.StatusOnSale)
	in := &CartLineIn{DishID: &d.ID}
	require.NoError(t, svc.Add(testUserID, in))

	// price change after the first insertion must not leak into the line
	require.NoError(t, db.Model(&entity.Dish{}).Where("id = ?", d.ID).Update("price", 8800).Error)
	require.NoError(t, svc.Add(testUserID, in))

	lines := cartLines(t, db, testUserID)
	require.Len(t, lines, 1)
	require.EqualValues(t, 6800, lines[0].Amount)
}

func TestAddKeepsDishAndSetmealLinesSeparate(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	d := seedDish(t, db, "炒河粉", 2000, entity.StatusOnSale)
	m := seedSetmeal(t, db, "夜宵套餐", entity.StatusOnSale, d)

	require.NoError(t, svc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	require.NoError(t, svc.Add(testUserID, &CartLineIn{SetmealID: &m.ID}))

	lines := cartLines(t, db, testUserID)
	require.Len(t, lines, 2)
}

func TestSubDecrementsAndRemoves(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	d := seedDish(t, db, "蛋炒饭", 1500, entity.StatusOnSale)
	in := &CartLineIn{DishID: &d.ID}
	require.NoError(t, svc.Add(testUserID, in))
	require.NoError(t, svc.Add(testUserID, in))

	require.NoError(t, svc.Sub(testUserID, in))
	lines := cartLines(t, db, testUserID)
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Number)

	require.NoError(t, svc.Sub(testUserID, in))
	require.Empty(t, cartLines(t, db, testUserID))
}

func TestSubMissingLineFails(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	d := seedDish(t, db, "扬州炒饭", 1800, entity.StatusOnSale)
	err := svc.Sub(testUserID, &CartLineIn{DishID: &d.ID})
	require.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	d := seedDish(t, db, "煲仔饭", 2600, entity.StatusOnSale)
	require.NoError(t, svc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	require.NoError(t, svc.Add(testUserID+1, &CartLineIn{DishID: &d.ID}))

	require.Len(t, cartLines(t, db, testUserID), 1)
	require.Len(t, cartLines(t, db, testUserID+1), 1)

	require.NoError(t, svc.Clean(testUserID))
	require.Empty(t, cartLines(t, db, testUserID))
	require.Len(t, cartLines(t, db, testUserID+1), 1)
}
