package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/resp"
	"github.com/2741538125/sky-takeout/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishController struct{ Svc *services.DishService }

func NewDishController(s *services.DishService) *DishController { return &DishController{Svc: s} }

// POST /admin/dish
func (h *DishController) Create(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, d)
}

// PUT /admin/dish/:id
func (h *DishController) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(id, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /admin/dish?ids=1,2,3
func (h *DishController) Delete(c *gin.Context) {
	ids, err := queryIDs(c, "ids")
	if err != nil {
		resp.BadRequest(c, "invalid ids")
		return
	}
	if err := h.Svc.DeleteBatch(ids); err != nil {
		switch {
		case errors.Is(err, services.ErrDishOnSale), errors.Is(err, services.ErrDishInSetmeal):
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "dish not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, nil)
}

// POST /admin/dish/status/:status?id=
func (h *DishController) StartOrStop(c *gin.Context) {
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
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /admin/dish/:id
func (h *DishController) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	d, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /admin/dish/page?name=&categoryId=&status=&page=&pageSize=
func (h *DishController) Page(c *gin.Context) {
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

// GET /user/dish/list?categoryId=  (on-sale only)
func (h *DishController) ListForUser(c *gin.Context) {
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

// ----- shared param helpers -----

func paramID(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(n), err
}

func queryID(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Query(name), 10, 64)
	return uint(n), err
}

func queryIDs(c *gin.Context, name string) ([]uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, errors.New("missing ids")
	}
	parts := strings.Split(raw, ",")
	out := make([]uint, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, uint(n))
	}
	return out, nil
}
