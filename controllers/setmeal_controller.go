package controllers

import (
	"errors"
	"strconv"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/resp"
	"github.com/2741538125/sky-takeout/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SetmealController struct{ Svc *services.SetmealService }

func NewSetmealController(s *services.SetmealService) *SetmealController {
	return &SetmealController{Svc: s}
}

// POST /admin/setmeal
func (h *SetmealController) Create(c *gin.Context) {
	var req services.SetmealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.Create(&req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "member dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /admin/setmeal/:id
func (h *SetmealController) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.SetmealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(id, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "setmeal not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /admin/setmeal?ids=1,2,3
func (h *SetmealController) Delete(c *gin.Context) {
	ids, err := queryIDs(c, "ids")
	if err != nil {
		resp.BadRequest(c, "invalid ids")
		return
	}
	if err := h.Svc.DeleteBatch(ids); err != nil {
		switch {
		case errors.Is(err, services.ErrSetmealOnSale):
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "setmeal not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, nil)
}

// POST /admin/setmeal/status/:status?id=
func (h *SetmealController) StartOrStop(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil || (status != entity.StatusOnSale && status != entity.StatusOffSale) {
		resp.BadRequest(c, "invalid status")
		return
	}
	id, err := queryID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.StartOrStop(id, status); err != nil {
		var blocked *services.SetmealEnableBlockedError
		switch {
		case errors.As(err, &blocked):
			resp.Conflict(c, blocked.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "setmeal not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, nil)
}

// GET /admin/setmeal/:id
func (h *SetmealController) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	m, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "setmeal not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /admin/setmeal/page?name=&categoryId=&status=&page=&pageSize=
func (h *SetmealController) Page(c *gin.Context) {
	name := c.Query("name")
	categoryID, _ := queryID(c, "categoryId")
	var status *int
	if v := c.Query("status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid status")
			return
		}
		status = &n
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	items, total, err := h.Svc.Page(name, categoryID, status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "pageSize": limit})
}

// GET /user/setmeal/list?categoryId=  (on-sale only)
func (h *SetmealController) ListForUser(c *gin.Context) {
	categoryID, err := queryID(c, "categoryId")
	if err != nil {
		resp.BadRequest(c, "invalid categoryId")
		return
	}
	items, err := h.Svc.ListByCategory(categoryID, true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
