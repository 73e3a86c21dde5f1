package controllers

import (
	"errors"
	"strconv"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/resp"
	"github.com/2741538125/sky-takeout/services"
	"github.com/2741538125/sky-takeout/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

func orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAddressNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCartEmpty):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderStatus):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /user/order/submit
func (h *OrderController) Submit(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.SubmitOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Submit(uid, &req)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /user/order/payment
func (h *OrderController) Payment(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req struct {
		OrderNumber string `json:"orderNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Pay(uid, req.OrderNumber); err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, nil)
}

// PUT /user/order/cancel/:id
func (h *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Cancel(uid, id); err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, nil)
}

// POST /user/order/repetition/:id
func (h *OrderController) Repetition(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Repetition(uid, id); err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /user/order/historyOrders?page=&pageSize=&status=
func (h *OrderController) History(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid status")
			return
		}
		st := entity.OrderStatus(n)
		status = &st
	}
	out, err := h.Svc.Page(uid, status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /user/order/orderDetail/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	out, err := h.Svc.Detail(uid, id)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, out)
}

// ----- merchant console -----

// GET /admin/order/page?page=&pageSize=&status=
func (h *OrderController) AdminPage(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid status")
			return
		}
		st := entity.OrderStatus(n)
		status = &st
	}
	out, err := h.Svc.Page(0, status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/order/:id
func (h *OrderController) AdminDetail(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	out, err := h.Svc.Detail(0, id)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /admin/order/confirm/:id
func (h *OrderController) Confirm(c *gin.Context) {
	h.advance(c, h.Svc.Confirm)
}

// PUT /admin/order/delivery/:id
func (h *OrderController) Delivery(c *gin.Context) {
	h.advance(c, h.Svc.Delivery)
}

// PUT /admin/order/complete/:id
func (h *OrderController) Complete(c *gin.Context) {
	h.advance(c, h.Svc.Complete)
}

func (h *OrderController) advance(c *gin.Context, fn func(uint) error) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := fn(id); err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, nil)
}
