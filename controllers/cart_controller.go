package controllers

import (
	"errors"

	"github.com/2741538125/sky-takeout/pkg/resp"
	"github.com/2741538125/sky-takeout/services"
	"github.com/2741538125/sky-takeout/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /user/shoppingCart/add
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.CartLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish or setmeal not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, nil)
}

// POST /user/shoppingCart/sub
func (h *CartController) Sub(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.CartLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Sub(uid, &req); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, nil)
}

// GET /user/shoppingCart/list
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	lines, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, lines)
}

// DELETE /user/shoppingCart/clean
func (h *CartController) Clean(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.Clean(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}
