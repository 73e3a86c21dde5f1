package controllers

import (
	"errors"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/resp"
	"github.com/2741538125/sky-takeout/services"
	"github.com/2741538125/sky-takeout/utils"
	"github.com/gin-gonic/gin"
)

type AddressController struct{ Svc *services.AddressService }

func NewAddressController(s *services.AddressService) *AddressController {
	return &AddressController{Svc: s}
}

type addressIn struct {
	Consignee string `json:"consignee" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Detail    string `json:"detail" binding:"required"`
}

// GET /user/addressBook/list
func (h *AddressController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	items, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /user/addressBook
func (h *AddressController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req addressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := &entity.AddressBook{
		UserID:    uid,
		Consignee: req.Consignee,
		Phone:     req.Phone,
		Detail:    req.Detail,
	}
	if err := h.Svc.Create(a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// PUT /user/addressBook/:id
func (h *AddressController) Update(c *gin.Context) {
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
	var req addressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := &entity.AddressBook{
		UserID:    uid,
		Consignee: req.Consignee,
		Phone:     req.Phone,
		Detail:    req.Detail,
	}
	a.ID = id
	if err := h.Svc.Update(a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}

// PUT /user/addressBook/default/:id
func (h *AddressController) SetDefault(c *gin.Context) {
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
	if err := h.Svc.SetDefault(uid, id); err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /user/addressBook/:id
func (h *AddressController) Delete(c *gin.Context) {
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
	if err := h.Svc.Delete(uid, id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}
