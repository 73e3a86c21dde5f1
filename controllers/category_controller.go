package controllers

import (
	"errors"
	"strconv"

	"github.com/2741538125/sky-takeout/entity"
	"github.com/2741538125/sky-takeout/pkg/resp"
	"github.com/2741538125/sky-takeout/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /user/category/list?type=   (also mounted under /admin)
func (h *CategoryController) List(c *gin.Context) {
	t, _ := strconv.Atoi(c.Query("type"))
	items, err := h.Svc.List(t)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/category
func (h *CategoryController) Create(c *gin.Context) {
	var req struct {
		Type int    `json:"type" binding:"required,oneof=1 2"`
		Name string `json:"name" binding:"required"`
		Sort int    `json:"sort"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := &entity.Category{Type: req.Type, Name: req.Name, Sort: req.Sort, Status: 1}
	if err := h.Svc.Create(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// DELETE /admin/category/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrCategoryNotEmpty) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}
