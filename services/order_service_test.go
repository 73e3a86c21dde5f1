package services

import (
	"testing"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/pay"
	"github.com/2741538125/sky-takeout/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordedReminder struct {
	Type    int
	OrderID uint
}

type reminderStub struct {
	got []recordedReminder
}

func (r *reminderStub) Notify(reminderType int, orderID uint, orderNumber string) {
	r.got = append(r.got, recordedReminder{Type: reminderType, OrderID: orderID})
}

func newOrderService(t *testing.T, db *gorm.DB) (*OrderService, *pay.MockGateway, *reminderStub) {
	t.Helper()
	gw := &pay.MockGateway{}
	rem := &reminderStub{}
	cartSvc := newCartService(t, db)
	svc := NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		cartSvc,
		repository.NewAddressRepository(db),
		gw, rem, newTestLogger())
	return svc, gw, rem
}

func submitOrder(t *testing.T, db *gorm.DB, svc *OrderService, userID uint) *SubmitOrderOut {
	t.Helper()
	addr := seedAddress(t, db, userID)
	out, err := svc.Submit(userID, &SubmitOrderIn{AddressBookID: addr.ID})
	require.NoError(t, err)
	return out
}

func TestSubmitSnapshotsCartIntoOrder(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	x := seedDish(t, db, "辣子鸡", 1000, entity.StatusOnSale)
	y := seedDish(t, db, "酸梅汤", 500, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &x.ID}))
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &x.ID}))
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &y.ID}))

	out := submitOrder(t, db, svc, testUserID)
	require.EqualValues(t, 2500, out.OrderAmount)
	require.NotEmpty(t, out.OrderNumber)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.Equal(t, entity.OrderPendingPayment, o.Status)
	require.Equal(t, entity.PayUnPaid, o.PayStatus)
	require.Equal(t, "张三", o.Consignee)

	var details []entity.OrderDetail
	require.NoError(t, db.Where("order_id = ?", o.ID).Find(&details).Error)
	require.Len(t, details, 2)

	require.Empty(t, cartLines(t, db, testUserID))
}

func TestSubmitAmountFixedAgainstLaterPriceChanges(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "糖醋排骨", 3000, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))

	out := submitOrder(t, db, svc, testUserID)
	require.NoError(t, db.Model(&entity.Dish{}).Where("id = ?", d.ID).Update("price", 9000).Error)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.EqualValues(t, 3000, o.Amount)
}

func TestSubmitEmptyCartCreatesNothing(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)

	addr := seedAddress(t, db, testUserID)
	_, err := svc.Submit(testUserID, &SubmitOrderIn{AddressBookID: addr.ID})
	require.ErrorIs(t, err, ErrCartEmpty)

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	require.Zero(t, count)
}

func TestSubmitUnknownAddressFails(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "口水鸡", 2800, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))

	_, err := svc.Submit(testUserID, &SubmitOrderIn{AddressBookID: 999})
	require.ErrorIs(t, err, ErrAddressNotFound)

	// cart must survive the failed submission
	require.Len(t, cartLines(t, db, testUserID), 1)
}

func TestPayRejectsSecondConfirmation(t *testing.T) {
	db := newTestDB(t)
	svc, gw, rem := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "羊肉串", 600, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	out := submitOrder(t, db, svc, testUserID)

	require.NoError(t, svc.Pay(testUserID, out.OrderNumber))
	require.Equal(t, out.OrderNumber, gw.LastOrderNumber)
	require.EqualValues(t, 600, gw.LastAmount)
	require.Len(t, rem.got, 1)
	require.Equal(t, ReminderNewOrder, rem.got[0].Type)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.Equal(t, entity.OrderToBeConfirmed, o.Status)
	require.Equal(t, entity.PayPaid, o.PayStatus)
	require.NotNil(t, o.CheckoutTime)

	err := svc.Pay(testUserID, out.OrderNumber)
	require.ErrorIs(t, err, ErrOrderStatus)

	// the second call must not have touched the order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.Equal(t, entity.PayPaid, o.PayStatus)
	require.Len(t, rem.got, 1)
}

func TestPayUnknownOrderNumber(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)

	err := svc.Pay(testUserID, "no-such-number")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestPayRejectsForeignOrder(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "烤冷面", 1200, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	out := submitOrder(t, db, svc, testUserID)

	err := svc.Pay(testUserID+1, out.OrderNumber)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelBeforePaymentLeavesPayStatusUnpaid(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "肠粉", 1400, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	out := submitOrder(t, db, svc, testUserID)

	require.NoError(t, svc.Cancel(testUserID, out.ID))

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.Equal(t, entity.OrderCancelled, o.Status)
	require.Equal(t, entity.PayUnPaid, o.PayStatus)
	require.Equal(t, "user cancelled", o.CancelReason)
	require.NotNil(t, o.CancelTime)
}

func TestCancelPaidOrderMarksRefunded(t *testing.T) {
	db := newTestDB(t)
	svc, _, rem := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "生煎包", 1600, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	out := submitOrder(t, db, svc, testUserID)
	require.NoError(t, svc.Pay(testUserID, out.OrderNumber))

	require.NoError(t, svc.Cancel(testUserID, out.ID))

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.Equal(t, entity.OrderCancelled, o.Status)
	require.Equal(t, entity.PayRefunded, o.PayStatus)

	require.Len(t, rem.got, 2)
	require.Equal(t, ReminderCancel, rem.got[1].Type)
}

func TestCancelRejectedAfterMerchantConfirm(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "锅贴", 1300, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	out := submitOrder(t, db, svc, testUserID)
	require.NoError(t, svc.Pay(testUserID, out.OrderNumber))
	require.NoError(t, svc.Confirm(out.ID))

	err := svc.Cancel(testUserID, out.ID)
	require.ErrorIs(t, err, ErrOrderStatus)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.Equal(t, entity.OrderConfirmed, o.Status)
}

func TestRepetitionMergesIntoExistingCartLines(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "黄焖鸡", 2400, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	out := submitOrder(t, db, svc, testUserID)

	// cart already holds one copy again before repeating
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))

	require.NoError(t, svc.Repetition(testUserID, out.ID))

	lines := cartLines(t, db, testUserID)
	require.Len(t, lines, 1)
	require.Equal(t, 3, lines[0].Number)
}

func TestRepetitionRollsBackWhenALineIsGone(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	a := seedDish(t, db, "回锅肉", 2200, entity.StatusOnSale)
	b := seedDish(t, db, "蛋花汤", 800, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &a.ID}))
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &b.ID}))
	out := submitOrder(t, db, svc, testUserID)

	// the second dish disappears from the catalog before the reorder
	require.NoError(t, db.Delete(&entity.Dish{}, b.ID).Error)

	err := svc.Repetition(testUserID, out.ID)
	require.Error(t, err)

	// the replay is all or nothing, so the first line must not survive
	require.Empty(t, cartLines(t, db, testUserID))
}

func TestStaleCancelCannotOverwriteConfirmedOrder(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)
	repo := repository.NewOrderRepository(db)

	d := seedDish(t, db, "酸辣粉", 1500, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	out := submitOrder(t, db, svc, testUserID)
	require.NoError(t, svc.Pay(testUserID, out.OrderNumber))

	// a cancellation decided while the order still looked to-be-confirmed
	// arrives after the merchant has accepted it
	require.NoError(t, svc.Confirm(out.ID))
	affected, err := repo.UpdateGuard(db, out.ID, entity.OrderToBeConfirmed, map[string]any{
		"status":     entity.OrderCancelled,
		"pay_status": entity.PayRefunded,
	})
	require.NoError(t, err)
	require.Zero(t, affected)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.Equal(t, entity.OrderConfirmed, o.Status)
	require.Equal(t, entity.PayPaid, o.PayStatus)
}

func TestMerchantProgressionIsMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newOrderService(t, db)
	cartSvc := newCartService(t, db)

	d := seedDish(t, db, "牛肉面", 2600, entity.StatusOnSale)
	require.NoError(t, cartSvc.Add(testUserID, &CartLineIn{DishID: &d.ID}))
	out := submitOrder(t, db, svc, testUserID)

	// cannot confirm an unpaid order
	require.ErrorIs(t, svc.Confirm(out.ID), ErrOrderStatus)

	require.NoError(t, svc.Pay(testUserID, out.OrderNumber))
	require.NoError(t, svc.Confirm(out.ID))
	// skipping delivery is not allowed
	require.ErrorIs(t, svc.Complete(out.ID), ErrOrderStatus)
	require.NoError(t, svc.Delivery(out.ID))
	require.NoError(t, svc.Complete(out.ID))

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.Equal(t, entity.OrderCompleted, o.Status)
}
