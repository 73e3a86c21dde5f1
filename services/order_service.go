package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/pay"
	"github.com/2741538125/sky-takeout/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Reminder receives best-effort merchant notifications after a lifecycle
// transition has committed.
type Reminder interface {
	Notify(reminderType int, orderID uint, orderNumber string)
}

const (
	ReminderNewOrder = 1
	ReminderCancel   = 2
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	CartSvc     *CartService
	AddressRepo *repository.AddressRepository
	Gateway     pay.Gateway
	Reminder    Reminder
	Log         *logrus.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	cartSvc *CartService,
	addressRepo *repository.AddressRepository,
	gateway pay.Gateway,
	reminder Reminder,
	log *logrus.Logger,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, CartSvc: cartSvc,
		AddressRepo: addressRepo, Gateway: gateway, Reminder: reminder, Log: log,
	}
}

type SubmitOrderIn struct {
	AddressBookID uint   `json:"addressBookId" binding:"required"`
	Remark        string `json:"remark"`
}

type SubmitOrderOut struct {
	ID          uint      `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	OrderAmount int64     `json:"orderAmount"`
	OrderTime   time.Time `json:"orderTime"`
}

// Submit turns the user's cart into an order: one transaction creates the
// order row, snapshots every cart line into an order detail, and clears the
// cart. The amount is fixed here and never recomputed from catalog prices.
func (s *OrderService) Submit(userID uint, in *SubmitOrderIn) (*SubmitOrderOut, error) {
	var out SubmitOrderOut
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		addr, err := s.AddressRepo.GetForUser(tx, userID, in.AddressBookID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAddressNotFound
		}
		if err != nil {
			return err
		}

		lines, err := s.CartRepo.ListByUserTx(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		var amount int64
		for _, l := range lines {
			amount += l.Amount * int64(l.Number)
		}

		order := entity.Order{
			Number:        newOrderNumber(),
			Status:        entity.OrderPendingPayment,
			PayStatus:     entity.PayUnPaid,
			UserID:        userID,
			AddressBookID: addr.ID,
			Consignee:     addr.Consignee,
			Phone:         addr.Phone,
			Amount:        amount,
			Remark:        in.Remark,
			OrderTime:     time.Now(),
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		details := make([]entity.OrderDetail, 0, len(lines))
		for _, l := range lines {
			details = append(details, entity.OrderDetail{
				OrderID:    order.ID,
				DishID:     l.DishID,
				SetmealID:  l.SetmealID,
				Name:       l.Name,
				Image:      l.Image,
				DishFlavor: l.DishFlavor,
				Amount:     l.Amount,
				Number:     l.Number,
			})
		}
		if err := s.Repo.InsertDetails(tx, details); err != nil {
			return err
		}

		if err := s.CartRepo.DeleteByUser(tx, userID); err != nil {
			return err
		}

		out = SubmitOrderOut{
			ID:          order.ID,
			OrderNumber: order.Number,
			OrderAmount: order.Amount,
			OrderTime:   order.OrderTime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.WithFields(logrus.Fields{"orderNumber": out.OrderNumber, "amount": out.OrderAmount}).Info("order submitted")
	return &out, nil
}

// Pay confirms payment of the order identified by its number. The number is
// always passed explicitly by the caller; nothing about the pending order is
// kept in process state. A second confirmation fails with ErrOrderStatus.
func (s *OrderService) Pay(userID uint, orderNumber string) error {
	o, err := s.Repo.GetByNumber(s.DB, orderNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return ErrOrderNotFound
	}
	if o.Status != entity.OrderPendingPayment {
		return ErrOrderStatus
	}

	// external authorization happens outside the atomic unit; the engine
	// only records its outcome
	if s.Gateway != nil {
		if err := s.Gateway.Authorize(o.Number, o.Amount, userID); err != nil {
			return err
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderPendingPayment, entity.OrderToBeConfirmed)
		if err != nil {
			return err
		}
		if affected == 0 {
			// a concurrent confirmation won the race
			return ErrOrderStatus
		}
		now := time.Now()
		return s.Repo.Update(tx, o.ID, map[string]any{
			"pay_status":    entity.PayPaid,
			"checkout_time": &now,
		})
	})
	if err != nil {
		return err
	}
	if s.Reminder != nil {
		s.Reminder.Notify(ReminderNewOrder, o.ID, orderNumber)
	}
	return nil
}

// Cancel is the user-side cancellation. It is self-service only while the
// merchant has not accepted the order (status 1 or 2); an order cancelled
// after payment is additionally marked refunded, the refund itself being an
// external side effect this engine only records.
func (s *OrderService) Cancel(userID, orderID uint) error {
	var number string
	var wasPaid bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetByID(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return ErrOrderNotFound
		}

		number = o.Number
		now := time.Now()
		fields := map[string]any{
			"status":        entity.OrderCancelled,
			"cancel_reason": "user cancelled",
			"cancel_time":   &now,
		}

		// the status precondition lives in the UPDATE itself, so a merchant
		// confirmation that raced ahead cannot be overwritten
		paidFields := map[string]any{"pay_status": entity.PayRefunded}
		for k, v := range fields {
			paidFields[k] = v
		}
		affected, err := s.Repo.UpdateGuard(tx, o.ID, entity.OrderToBeConfirmed, paidFields)
		if err != nil {
			return err
		}
		if affected > 0 {
			wasPaid = true
			return nil
		}
		affected, err = s.Repo.UpdateGuard(tx, o.ID, entity.OrderPendingPayment, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStatus
		}
		return nil
	})
	if err != nil {
		return err
	}
	if wasPaid && s.Reminder != nil {
		s.Reminder.Notify(ReminderCancel, orderID, number)
	}
	return nil
}

// Repetition replays a past order's lines into the cart through the regular
// merge semantics, so repeated items increment existing lines. The whole
// replay is one transaction; a line that can no longer be resolved rolls
// back the lines already added.
func (s *OrderService) Repetition(userID, orderID uint) error {
	o, err := s.Repo.GetByID(s.DB, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return ErrOrderNotFound
	}

	details, err := s.Repo.DetailsByOrderID(orderID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, d := range details {
			for i := 0; i < d.Number; i++ {
				in := &CartLineIn{DishID: d.DishID, SetmealID: d.SetmealID, DishFlavor: d.DishFlavor}
				if err := s.CartSvc.add(tx, userID, in); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ----- merchant-side progression (2 -> 3 -> 4 -> 5) -----

func (s *OrderService) Confirm(orderID uint) error {
	return s.advance(orderID, entity.OrderToBeConfirmed, entity.OrderConfirmed)
}

func (s *OrderService) Delivery(orderID uint) error {
	return s.advance(orderID, entity.OrderConfirmed, entity.OrderDelivering)
}

func (s *OrderService) Complete(orderID uint) error {
	return s.advance(orderID, entity.OrderDelivering, entity.OrderCompleted)
}

func (s *OrderService) advance(orderID uint, from, to entity.OrderStatus) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.GetByID(tx, orderID); errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		} else if err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStatus
		}
		return nil
	})
}

// ----- queries -----

type OrderDetailOut struct {
	Order   entity.Order         `json:"order"`
	Details []entity.OrderDetail `json:"details"`
}

func (s *OrderService) Detail(userID, orderID uint) (*OrderDetailOut, error) {
	o, err := s.Repo.GetByID(s.DB, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if userID != 0 && o.UserID != userID {
		return nil, ErrOrderNotFound
	}
	details, err := s.Repo.DetailsByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetailOut{Order: *o, Details: details}, nil
}

type OrderPageOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) Page(userID uint, status *entity.OrderStatus, page, limit int) (*OrderPageOut, error) {
	items, total, err := s.Repo.Page(userID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderPageOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// newOrderNumber derives a process-unique order number from the clock, the
// same scheme the payment side keys on.
func newOrderNumber() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
