package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jesh-analyst/campus-eats-hub/entity"
	"github.com/jesh-analyst/campus-eats-hub/pkg/resp"
	"github.com/jesh-analyst/campus-eats-hub/repository"
	"github.com/jesh-analyst/campus-eats-hub/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu?category=&type=&q=&available=
func (h *MenuController) List(c *gin.Context) {
	f := repository.MenuFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Search:   c.Query("q"),
	}
	if c.Query("available") == "true" {
		f.OnlyAvailable = true
	}
	items, err := h.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

type menuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	Category    string `json:"category" binding:"required,oneof=daily special"`
	Type        string `json:"type"`
	Available   *bool  `json:"available"`
	PrepTime    int    `json:"preparationTime" binding:"min=1"`
}

// POST /canteen/menu
func (h *MenuController) Create(c *gin.Context) {
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := &entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Type:        req.Type,
		Available:   available,
		PrepTime:    req.PrepTime,
	}
	if err := h.Svc.Create(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /canteen/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.Type = req.Type
	item.PrepTime = req.PrepTime
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := h.Svc.Update(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /canteen/menu/:id/availability
func (h *MenuController) SetAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetAvailability(uint(id), *body.Available); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "available": *body.Available})
}

// DELETE /canteen/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
